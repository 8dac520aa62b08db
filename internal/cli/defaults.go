package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/config"
	"github.com/ppiankov/rolecall/internal/role"
)

func init() {
	rootCmd.AddCommand(defaultsCmd)
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Seed the built-in roles",
	Long:  "Seeds ShellGPT, Shell Command Generator, Shell Command Descriptor, and Code Generator\nwith the host OS and shell substituted in. Roles already on disk are left untouched.",
	RunE:  runDefaults,
}

func runDefaults(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store := role.NewStore(resolveDir(cfg))

	osDescriptor, shellDescriptor := descriptors(cfg)
	seeded, err := role.Bootstrap(store, osDescriptor, shellDescriptor)
	if err != nil {
		return err
	}

	if len(seeded) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All default roles already present.")
		return nil
	}
	for _, name := range seeded {
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %q\n", name)
	}
	return nil
}
