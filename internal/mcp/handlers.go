package mcp

import (
	"context"
	"path/filepath"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- Input/Output types ---

// ResolveInput defines parameters for the rolecall_resolve tool.
type ResolveInput struct {
	Message string `json:"message" jsonschema:"rendered instruction message to identify"`
}

// ResolveOutput contains the identification result.
type ResolveOutput struct {
	Name       string `json:"name,omitempty"`
	Identified bool   `json:"identified"`
}

// GetInput defines parameters for the rolecall_get tool.
type GetInput struct {
	Name string `json:"name" jsonschema:"role name"`
}

// GetOutput contains a role's rendered instruction text.
type GetOutput struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ListInput defines parameters for the rolecall_list tool.
type ListInput struct{}

// ListOutput contains stored role names, oldest first.
type ListOutput struct {
	Roles []string `json:"roles"`
}

// --- Handlers ---

func (s *Server) handleResolve(ctx context.Context, req *mcpsdk.CallToolRequest, input ResolveInput) (*mcpsdk.CallToolResult, ResolveOutput, error) {
	name, ok := s.resolve(input.Message)
	return nil, ResolveOutput{Name: name, Identified: ok}, nil
}

func (s *Server) handleGet(ctx context.Context, req *mcpsdk.CallToolRequest, input GetInput) (*mcpsdk.CallToolResult, GetOutput, error) {
	rec, err := s.store.Get(input.Name)
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, GetOutput{}, err
	}
	return nil, GetOutput{Name: rec.Name, Role: rec.Body}, nil
}

func (s *Server) handleList(ctx context.Context, req *mcpsdk.CallToolRequest, input ListInput) (*mcpsdk.CallToolResult, ListOutput, error) {
	paths, err := s.store.List()
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, ListOutput{}, err
	}

	names := make([]string, 0, len(paths))
	for _, path := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".json"))
	}
	return nil, ListOutput{Roles: names}, nil
}

func (s *Server) handlePrompt(ctx context.Context, req *mcpsdk.GetPromptRequest) (*mcpsdk.GetPromptResult, error) {
	rec, err := s.store.Get(req.Params.Name)
	if err != nil {
		return nil, err
	}

	return &mcpsdk.GetPromptResult{
		Description: "System instruction for role " + rec.Name,
		Messages: []*mcpsdk.PromptMessage{
			{
				Role:    "user",
				Content: &mcpsdk.TextContent{Text: rec.Body},
			},
		},
	}, nil
}

// registerTools adds the rolecall tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "rolecall_resolve",
		Description: "Identify which stored role produced a rendered instruction message. Returns identified=false for unrecognized messages.",
	}, s.handleResolve)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "rolecall_get",
		Description: "Fetch the rendered instruction text of a stored role by name.",
	}, s.handleGet)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "rolecall_list",
		Description: "List stored role names, oldest first.",
	}, s.handleList)
}
