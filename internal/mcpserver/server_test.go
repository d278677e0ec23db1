package mcpserver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/writedown/internal/index"
	"github.com/starford/writedown/internal/storage"
	"github.com/starford/writedown/internal/testutil"
)

func testServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()
	svc, store, db := testutil.TestService(t, true)
	testutil.WriteFiles(t, store, map[string]string{
		"todo.txt":                 "(B) book dentist @phone\nx (A) file taxes +finance\n(A) review PR +work\nbuy bread\n",
		"daily/2024-03-08.md":      "# Friday\nshipped the +release\n",
		"work/retro/2024-03-01.md": "went fine\n",
	})
	if err := index.Sync(db, store, testutil.Logger()); err != nil {
		t.Fatal(err)
	}
	return New(svc, "test"), store
}

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func callTool(t *testing.T, h handler, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Arguments = args

	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("tool error: %v", err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestQueryTasks(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv.queryTasks, map[string]interface{}{"tokens": "p"})
	if got := resultText(r); got != "(A) review PR +work\n(B) book dentist @phone" {
		t.Errorf("priority query = %q", got)
	}

	r = callTool(t, srv.queryTasks, map[string]interface{}{"tokens": "@phone +work"})
	if got := resultText(r); got != "(B) book dentist @phone\n(A) review PR +work" {
		t.Errorf("sigil query = %q", got)
	}

	r = callTool(t, srv.queryTasks, map[string]interface{}{"tokens": "done +nothing"})
	if got := resultText(r); got != "no matching tasks" {
		t.Errorf("empty query = %q", got)
	}

	r = callTool(t, srv.queryTasks, map[string]interface{}{"tokens": "   "})
	if !r.IsError {
		t.Error("expected error for blank tokens")
	}
}

func TestShowTasks(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv.showTasks, map[string]interface{}{})
	if got := resultText(r); !strings.HasPrefix(got, "(B) book dentist @phone\nx (A) file taxes") {
		t.Errorf("show tasks = %q", got)
	}
}

func TestResolveAndReadNote(t *testing.T) {
	srv, store := testServer(t)

	r := callTool(t, srv.resolveNote, map[string]interface{}{"context": "work/retro"})
	want := filepath.Join(store.Root(), "work", "retro", "2024-03-09.md")
	if got := resultText(r); got != want {
		t.Errorf("resolve = %q, want %q", got, want)
	}

	r = callTool(t, srv.readNote, map[string]interface{}{"path": "daily/2024-03-08.md"})
	if got := resultText(r); got != "# Friday\nshipped the +release\n" {
		t.Errorf("read = %q", got)
	}

	r = callTool(t, srv.readNote, map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}

func TestShowContext(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv.showContext, map[string]interface{}{"context": "work"})
	if got := resultText(r); !strings.Contains(got, "## 2024-03-01 /retro\n\nwent fine\n") {
		t.Errorf("show context = %q", got)
	}

	r = callTool(t, srv.showContext, map[string]interface{}{"context": "daily/2024-03-08.md"})
	if !r.IsError {
		t.Error("expected error when context is a file")
	}
}

func TestListContexts(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv.listContexts, map[string]interface{}{})
	if got := resultText(r); got != "daily\nwork\nwork/retro" {
		t.Errorf("contexts = %q", got)
	}
}

func TestSearchNotes(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv.searchNotes, map[string]interface{}{"query": "release"})
	if got := resultText(r); !strings.Contains(got, `"path": "daily/2024-03-08.md"`) {
		t.Errorf("search = %q", got)
	}

	r = callTool(t, srv.searchNotes, map[string]interface{}{"query": "release", "context": "work"})
	if got := resultText(r); strings.TrimSpace(got) != "[]" {
		t.Errorf("scoped search = %q, want no hits", got)
	}
}

func TestTaskFormatResource(t *testing.T) {
	srv, _ := testServer(t)
	contents, err := srv.readTaskFormatResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	if tc, ok := contents[0].(mcp.TextResourceContents); !ok || tc.URI != taskFormatURI {
		t.Errorf("unexpected resource %+v", contents[0])
	}
}
