package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "roles_dir: /srv/roles\nos_descriptor: Linux/Test\nshell_descriptor: fish\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RolesDir != "/srv/roles" {
		t.Errorf("expected roles_dir, got %q", cfg.RolesDir)
	}
	if cfg.OSDescriptor != "Linux/Test" {
		t.Errorf("expected os_descriptor, got %q", cfg.OSDescriptor)
	}
	if cfg.ShellDescriptor != "fish" {
		t.Errorf("expected shell_descriptor, got %q", cfg.ShellDescriptor)
	}
}

func TestLoadEnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "from-env.yaml")
	if err := os.WriteFile(path, []byte("roles_dir: /env/roles\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ROLECALL_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RolesDir != "/env/roles" {
		t.Errorf("expected roles_dir from env config, got %q", cfg.RolesDir)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("ROLECALL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected missing config to load as zero value, got %v", err)
	}
	if cfg.RolesDir != "" {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("roles_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}
