// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the notes root and task file over stdio.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/writedown/internal/noteservice"
)

const taskFormatURI = "writedown://todo-format"

// Server wraps the MCP server with writedown tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all tools registered.
func New(svc *noteservice.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"writedown",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("resolve_note",
		mcp.WithDescription("Return the absolute path of the note to edit for a context. "+
			"Without a context, today's note in the default context. Creates the context directory."),
		mcp.WithString("context", mcp.Description("Context relative to the notes root, e.g. work/projects")),
	), s.resolveNote)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a file under the notes root."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path relative to the notes root (e.g. daily/2024-01-02.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("show_context",
		mcp.WithDescription("Render every note under a context directory as one Markdown document."),
		mcp.WithString("context", mcp.Required(), mcp.Description("Context directory relative to the notes root")),
	), s.showContext)

	s.mcp.AddTool(mcp.NewTool("list_contexts",
		mcp.WithDescription("List every context directory under the notes root."),
	), s.listContexts)

	s.mcp.AddTool(mcp.NewTool("show_tasks",
		mcp.WithDescription("Return the whole task file."),
	), s.showTasks)

	s.mcp.AddTool(mcp.NewTool("query_tasks",
		mcp.WithDescription("Query the task file. Read the "+taskFormatURI+" resource for the token rules."),
		mcp.WithString("tokens", mcp.Required(), mcp.Description("Space-separated tokens, e.g. \"p +work @phone\"")),
	), s.queryTasks)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through note titles, bodies, and tags."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithString("context", mcp.Description("Only search notes in this context and below, e.g. work")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 20)")),
	), s.searchNotes)

	s.mcp.AddResource(
		mcp.NewResource(taskFormatURI, "Task Format",
			mcp.WithResourceDescription("The todo.txt line format and query rules."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readTaskFormatResource,
	)

	return s
}

// Listen serves MCP over the given streams until in is exhausted or ctx
// is done.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) resolveNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.svc.ResolveNote(ctx, req.GetString("context", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(path), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := s.svc.ReadNote(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) showContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("context")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var buf bytes.Buffer
	if err := s.svc.RenderContext(ctx, &buf, dir); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) listContexts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dirs, err := s.svc.Contexts(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(dirs, "\n")), nil
}

func (s *Server) showTasks(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lines, err := s.svc.TaskLines(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) queryTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("tokens")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return mcp.NewToolResultError("tokens must not be empty"), nil
	}
	lines, err := s.svc.QueryTasks(ctx, tokens)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(lines) == 0 {
		return mcp.NewToolResultText("no matching tasks"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, req.GetString("context", ""), req.GetInt("limit", noteservice.DefaultSearchLimit))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readTaskFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      taskFormatURI,
			MIMEType: "text/markdown",
			Text:     TaskFormatContract,
		},
	}, nil
}
