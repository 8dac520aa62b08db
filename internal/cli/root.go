package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/config"
	"github.com/ppiankov/rolecall/internal/role"
	"github.com/ppiankov/rolecall/internal/sysinfo"
)

var (
	flagConfig   string
	flagRolesDir string
)

var rootCmd = &cobra.Command{
	Use:   "rolecall",
	Short: "Reusable role templates for AI assistants",
	Long:  "Stores named system-instruction templates, renders them with host variables, and re-identifies which role produced a previously sent instruction.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default ~/.rolecall/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRolesDir, "roles-dir", "", "Role storage directory (default ~/.rolecall/roles)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config, resolves the storage directory, and seeds the
// built-in roles. Every command goes through here so the defaults
// exist before any read.
func setup() (*role.Store, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	store := role.NewStore(resolveDir(cfg))

	osDescriptor, shellDescriptor := descriptors(cfg)
	if _, err := role.Bootstrap(store, osDescriptor, shellDescriptor); err != nil {
		return nil, nil, fmt.Errorf("seed default roles: %w", err)
	}
	return store, cfg, nil
}

func resolveDir(cfg *config.Config) string {
	if flagRolesDir != "" {
		return flagRolesDir
	}
	if cfg.RolesDir != "" {
		return cfg.RolesDir
	}
	return role.DefaultDir()
}

// descriptors returns the OS and shell strings substituted into the
// built-in role templates, preferring config overrides over detection.
func descriptors(cfg *config.Config) (string, string) {
	osDescriptor := cfg.OSDescriptor
	if osDescriptor == "" {
		osDescriptor = sysinfo.OSDescriptor()
	}
	shellDescriptor := cfg.ShellDescriptor
	if shellDescriptor == "" {
		shellDescriptor = sysinfo.ShellName()
	}
	return osDescriptor, shellDescriptor
}
