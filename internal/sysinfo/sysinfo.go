// Package sysinfo detects the host descriptors substituted into the
// built-in role templates. The role core only consumes the resulting
// strings; nothing here is load-bearing for identification.
package sysinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// OSDescriptor returns a human-readable operating system descriptor,
// e.g. "Linux/Ubuntu 24.04.1 LTS" or "Darwin/MacOS".
func OSDescriptor() string {
	switch runtime.GOOS {
	case "linux":
		if pretty := distroName(); pretty != "" {
			return "Linux/" + pretty
		}
		return "Linux"
	case "windows":
		return "Windows"
	case "darwin":
		return "Darwin/MacOS"
	default:
		return runtime.GOOS
	}
}

// ShellName returns the name of the user's shell, e.g. "zsh" or
// "powershell.exe".
func ShellName() string {
	if runtime.GOOS == "windows" {
		// Three or more PSModulePath entries means the process was
		// started from PowerShell rather than cmd.
		entries := strings.Split(os.Getenv("PSModulePath"), string(os.PathListSeparator))
		if len(entries) >= 3 {
			return "powershell.exe"
		}
		return "cmd.exe"
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return filepath.Base(shell)
}

// distroName reads PRETTY_NAME from /etc/os-release.
func distroName() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if val, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(val, `"`)
		}
	}
	return ""
}
