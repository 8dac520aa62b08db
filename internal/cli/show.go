package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/role"
)

var (
	showShell         bool
	showDescribeShell bool
	showCode          bool
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showShell, "shell", false, "Show the shell command generator role")
	showCmd.Flags().BoolVar(&showDescribeShell, "describe-shell", false, "Show the shell command descriptor role")
	showCmd.Flags().BoolVar(&showCode, "code", false, "Show the code generator role")
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a role's rendered instruction text",
	Long:  "Prints the instruction text of a role by name, or of a built-in role\nselected by mode flag (--shell wins over --describe-shell wins over --code).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store, _, err := setup()
	if err != nil {
		return err
	}

	name := role.PickDefault(showShell, showDescribeShell, showCode).Name()
	if len(args) == 1 {
		name = args[0]
	}

	rec, err := store.Get(name)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rec.Body)
	return nil
}
