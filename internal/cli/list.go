package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List role files, oldest first",
	Long:  "Prints the path of every stored role, ordered by ascending last-modification time.",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := setup()
	if err != nil {
		return err
	}

	paths, err := store.List()
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
