package noteservice_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/index"
	"github.com/starford/writedown/internal/testutil"
)

func TestResolveNote_DefaultContext(t *testing.T) {
	svc, store, _ := testutil.TestService(t, false)

	path, err := svc.ResolveNote(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveNote: %v", err)
	}
	want := filepath.Join(store.Root(), "daily", "2024-03-09.md")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("context dir not created: %v", err)
	}
}

func TestQueryTasks(t *testing.T) {
	svc, store, _ := testutil.TestService(t, false)
	testutil.WriteFiles(t, store, map[string]string{
		"todo.txt": "(B) pay rent +home\nx (A) old +work\ncall mum @phone\n(A) ship release +work\n",
	})

	got, err := svc.QueryTasks(context.Background(), []string{"p", "+work", "+home"})
	if err != nil {
		t.Fatalf("QueryTasks: %v", err)
	}
	want := []string{"(A) ship release +work", "(B) pay rent +home"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got, _ = svc.QueryTasks(context.Background(), []string{"done"})
	if !reflect.DeepEqual(got, []string{"x (A) old +work"}) {
		t.Errorf("done = %q", got)
	}
}

func TestQueryTasks_MissingFileFails(t *testing.T) {
	svc, _, _ := testutil.TestService(t, false)
	if _, err := svc.QueryTasks(context.Background(), []string{"p"}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestTaskLines(t *testing.T) {
	svc, store, _ := testutil.TestService(t, false)
	testutil.WriteFiles(t, store, map[string]string{"todo.txt": "x done  \nopen\t\n"})

	got, err := svc.TaskLines(context.Background())
	if err != nil {
		t.Fatalf("TaskLines: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"x done", "open"}) {
		t.Errorf("got %q", got)
	}
}

func TestRenderContext(t *testing.T) {
	svc, store, _ := testutil.TestService(t, false)
	testutil.WriteFiles(t, store, map[string]string{"daily/2024-03-08.md": "rained\n"})

	var buf bytes.Buffer
	if err := svc.RenderContext(context.Background(), &buf, "daily"); err != nil {
		t.Fatalf("RenderContext: %v", err)
	}
	if !strings.Contains(buf.String(), "## 2024-03-08\n\nrained\n") {
		t.Errorf("render = %q", buf.String())
	}
}

func TestReadNote_NotFound(t *testing.T) {
	svc, _, _ := testutil.TestService(t, false)
	if _, err := svc.ReadNote(context.Background(), "nope.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestContexts(t *testing.T) {
	svc, store, _ := testutil.TestService(t, false)
	testutil.WriteFiles(t, store, map[string]string{
		"daily/a.md":         "",
		"work/projects/b.md": "",
	})
	got, err := svc.Contexts(context.Background())
	if err != nil {
		t.Fatalf("Contexts: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"daily", "work", "work/projects"}) {
		t.Errorf("got %q", got)
	}
}

func TestSearch(t *testing.T) {
	svc, _, _ := testutil.TestService(t, false)
	if _, err := svc.Search(context.Background(), "x", "", 0); !errors.Is(err, apperr.ErrIndexUnavailable) {
		t.Errorf("err = %v, want ErrIndexUnavailable", err)
	}

	svc, store, db := testutil.TestService(t, true)
	testutil.WriteFiles(t, store, map[string]string{
		"work/2024-03-01.md":  "# Retro\nlaunch went well +release\n",
		"daily/2024-03-02.md": "read about the +release\n",
	})
	if err := index.Sync(db, store, testutil.Logger()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	results, err := svc.Search(context.Background(), "+release", "work", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "work/2024-03-01.md" || results[0].Title != "Retro" {
		t.Errorf("results = %+v", results)
	}

	results, err = svc.Search(context.Background(), "+release", "", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("unscoped results = %+v, want 2", results)
	}
}
