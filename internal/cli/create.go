package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/confirm"
	"github.com/ppiankov/rolecall/internal/role"
)

var (
	createDescription string
	createPersona     bool
)

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Role description (prompted for when omitted)")
	createCmd.Flags().BoolVar(&createPersona, "persona", false, "Render with a \"You are <name>\" header instead of storing the description verbatim")
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a role from a description",
	Long:  "Renders the description, derives its identification key, and persists the role.\nCreating over an existing name asks for confirmation first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, _, err := setup()
	if err != nil {
		return err
	}

	description := createDescription
	if description == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter role description: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read role description: %w", err)
		}
		description = strings.TrimRight(line, "\r\n")
	}

	if store.Exists(name) {
		confirmer := confirm.Terminal{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
		prompt := fmt.Sprintf("Role %q already exists, overwrite it?", name)
		if confirmer.Confirm(prompt) == confirm.Cancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	rec, err := role.New(name, description, nil, createPersona)
	if err != nil {
		return err
	}
	if err := store.Save(rec); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created role %q.\n", name)
	return nil
}
