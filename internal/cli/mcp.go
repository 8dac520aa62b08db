package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rolecall/internal/config"
	rolemcp "github.com/ppiankov/rolecall/internal/mcp"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP role server for agent integration",
	Long:  "Runs rolecall as an MCP (Model Context Protocol) server over stdio.\nExposes each stored role as a prompt, plus resolve/get/list tools.",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cliCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	osDescriptor, shellDescriptor := descriptors(cliCfg)
	srv, err := rolemcp.New(rolemcp.Config{
		RolesDir:        resolveDir(cliCfg),
		OSDescriptor:    osDescriptor,
		ShellDescriptor: shellDescriptor,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down MCP server...")
		cancel()
	}()

	fmt.Fprintln(os.Stderr, "rolecall MCP server running on stdio")
	fmt.Fprintf(os.Stderr, "%d identification keys loaded\n", srv.RegistrySize())

	return srv.Run(ctx)
}
