package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/confirm"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a role after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, _, err := setup()
	if err != nil {
		return err
	}

	if store.Exists(name) {
		confirmer := confirm.Terminal{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
		prompt := fmt.Sprintf("Role %q exists, delete it?", name)
		if confirmer.Confirm(prompt) == confirm.Cancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := store.Delete(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted role %q.\n", name)
	return nil
}
