// Package mcp serves stored roles over the Model Context Protocol.
// Each role is exposed as an MCP prompt, and a resolve tool maps a
// rendered instruction back to its role name. The server process is
// long-lived, so a directory watcher rebuilds the identification
// registry whenever role files change.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/rolecall/internal/identify"
	"github.com/ppiankov/rolecall/internal/role"
)

// Config holds MCP server configuration.
type Config struct {
	RolesDir        string
	OSDescriptor    string
	ShellDescriptor string
}

// Server wraps the MCP SDK server around a role store.
type Server struct {
	mcpServer *mcpsdk.Server
	store     *role.Store

	mu       sync.Mutex
	registry *identify.Registry
	prompts  map[string]bool
}

// New creates an MCP server with the built-in roles seeded and the
// identification registry built.
func New(cfg Config) (*Server, error) {
	store := role.NewStore(cfg.RolesDir)
	if _, err := role.Bootstrap(store, cfg.OSDescriptor, cfg.ShellDescriptor); err != nil {
		return nil, fmt.Errorf("seed default roles: %w", err)
	}

	s := &Server{
		store:   store,
		prompts: make(map[string]bool),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "rolecall",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	if err := s.rebuild(); err != nil {
		return nil, fmt.Errorf("build role registry: %w", err)
	}
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is
// cancelled. Role file changes made while running trigger a full
// registry rebuild.
func (s *Server) Run(ctx context.Context) error {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher := identify.NewWatcher(s.store.Dir(), func() {
		_ = s.rebuild()
	})
	go func() { _ = watcher.Run(wctx) }()

	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// RegistrySize returns the number of mapped identification keys.
func (s *Server) RegistrySize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Len()
}

// rebuild rescans the store, swaps in a fresh registry, and syncs the
// prompt list with the records on disk.
func (s *Server) rebuild() error {
	records, err := s.store.Scan()
	if err != nil {
		return err
	}

	registry := identify.FromRecords(records)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = registry

	current := make(map[string]bool, len(records))
	for _, rec := range records {
		current[rec.Name] = true
		s.mcpServer.AddPrompt(&mcpsdk.Prompt{
			Name:        rec.Name,
			Description: "System instruction for role " + rec.Name,
		}, s.handlePrompt)
	}

	var stale []string
	for name := range s.prompts {
		if !current[name] {
			stale = append(stale, name)
		}
	}
	if len(stale) > 0 {
		s.mcpServer.RemovePrompts(stale...)
	}
	s.prompts = current

	return nil
}

func (s *Server) resolve(message string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Resolve(message)
}
