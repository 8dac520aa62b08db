package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/identify"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [message]",
	Short: "Recover the role name behind a rendered instruction",
	Long:  "Maps a previously rendered instruction message back to the role that produced it.\nReads the message from stdin when no argument is given.\nAn unrecognized message prints \"no role identified\" and exits 0.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	store, _, err := setup()
	if err != nil {
		return err
	}

	var message string
	if len(args) == 1 {
		message = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		message = string(data)
	}

	registry, err := identify.Build(store)
	if err != nil {
		return err
	}

	name, ok := registry.Resolve(message)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no role identified")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}
