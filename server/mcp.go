// Package server exposes the scaffolding pipeline over the Model Context
// Protocol so editors and agents can request artifacts without shelling out
// to the CLI.
package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexus4812/php-class-gen/config"
	"github.com/nexus4812/php-class-gen/gen"
	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/writer"
)

// MCPServer wraps the generation pipeline and exposes it via MCP tools.
type MCPServer struct {
	cfg    *config.Config
	writer *writer.Writer
	server *server.MCPServer
}

// NewMCPServer builds the pipeline from configuration and registers the
// scaffolding tools. Configuration problems surface here, before any tool
// call is served.
func NewMCPServer(cfg *config.Config) (*MCPServer, error) {
	resolver, err := cfg.BuildResolver()
	if err != nil {
		return nil, err
	}

	s := &MCPServer{
		cfg:    cfg,
		writer: writer.New(resolver).WithBaseDir(cfg.Output.BaseDir),
	}

	s.server = server.NewMCPServer(
		"phpgen",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s, nil
}

// Serve runs the MCP server on stdio until the client disconnects.
func (s *MCPServer) Serve() error {
	return server.ServeStdio(s.server)
}

func (s *MCPServer) registerTools() {
	scaffoldTool := mcp.NewTool("phpgen_scaffold",
		mcp.WithDescription("Generate a PHP class, interface, trait, or enum and write it to the project source tree"),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Artifact kind: class, interface, trait, or enum"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description(`Fully qualified name, e.g. App\Models\User`),
		),
		mcp.WithString("fields",
			mcp.Description("Compact field list, e.g. id:int,items:array<Item>"),
		),
		mcp.WithString("extends",
			mcp.Description("Fully qualified base type"),
		),
		mcp.WithString("implements",
			mcp.Description("Comma-separated fully qualified interface names"),
		),
		mcp.WithString("cases",
			mcp.Description("Enum cases as name:literal pairs, e.g. Active:'active'"),
		),
		mcp.WithString("backing",
			mcp.Description("Enum backing type: int or string"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report the target path without writing (default: false)"),
		),
	)
	s.server.AddTool(scaffoldTool, s.handleScaffold)

	previewTool := mcp.NewTool("phpgen_preview",
		mcp.WithDescription("Render a PHP artifact and return its content and target path without writing anything"),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Artifact kind: class, interface, trait, or enum"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description(`Fully qualified name, e.g. App\Models\User`),
		),
		mcp.WithString("fields",
			mcp.Description("Compact field list, e.g. id:int,items:array<Item>"),
		),
		mcp.WithString("extends",
			mcp.Description("Fully qualified base type"),
		),
		mcp.WithString("implements",
			mcp.Description("Comma-separated fully qualified interface names"),
		),
		mcp.WithString("cases",
			mcp.Description("Enum cases as name:literal pairs"),
		),
		mcp.WithString("backing",
			mcp.Description("Enum backing type: int or string"),
		),
	)
	s.server.AddTool(previewTool, s.handlePreview)
}

// specFromRequest translates tool arguments into a ScaffoldSpec.
func specFromRequest(request mcp.CallToolRequest) (gen.ScaffoldSpec, error) {
	kind, err := request.RequireString("kind")
	if err != nil {
		return gen.ScaffoldSpec{}, err
	}
	name, err := request.RequireString("name")
	if err != nil {
		return gen.ScaffoldSpec{}, err
	}

	spec := gen.ScaffoldSpec{
		Kind:      php.Kind(strings.ToLower(strings.TrimSpace(kind))),
		Name:      name,
		Fields:    gen.ParseFieldList(request.GetString("fields", "")),
		Extends:   request.GetString("extends", ""),
		Cases:     gen.ParseFieldList(request.GetString("cases", "")),
		Backing:   request.GetString("backing", ""),
		Construct: true,
		Getters:   true,
	}
	if implements := request.GetString("implements", ""); implements != "" {
		for _, name := range strings.Split(implements, ",") {
			if name = strings.TrimSpace(name); name != "" {
				spec.Implements = append(spec.Implements, name)
			}
		}
	}

	return spec, spec.Validate()
}

func (s *MCPServer) assemble(spec gen.ScaffoldSpec) (*writer.FileArtifact, error) {
	assembler := gen.NewAssembler(s.cfg.Php.StrictTypes).SetHeader(s.cfg.Php.Header)
	artifacts, err := gen.NewProject().Add(spec.Builder()).Build(assembler)
	if err != nil {
		return nil, err
	}
	return artifacts[0].File, nil
}

// handleScaffold handles phpgen_scaffold tool calls.
func (s *MCPServer) handleScaffold(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, err := specFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifact, err := s.assemble(spec)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to assemble %s: %v", spec.Name, err)), nil
	}

	dryRun := request.GetBool("dry_run", false) || s.cfg.Output.DryRun
	path, err := s.writer.Write(artifact, dryRun)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to write %s: %v", spec.Name, err)), nil
	}

	if dryRun {
		return mcp.NewToolResultText(fmt.Sprintf("Dry run: %s %s would be written to %s", spec.Kind, spec.Name, path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Generated %s %s at %s", spec.Kind, spec.Name, path)), nil
}

// handlePreview handles phpgen_preview tool calls.
func (s *MCPServer) handlePreview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, err := specFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifact, err := s.assemble(spec)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to assemble %s: %v", spec.Name, err)), nil
	}

	preview := s.writer.Preview(artifact)
	result := fmt.Sprintf("// %s\n// namespace %s, primary type %s\n\n%s",
		preview.FilePath, preview.Namespace, preview.PrimaryType, preview.Content)
	return mcp.NewToolResultText(result), nil
}
