package internal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/testutil"
)

type call struct {
	name string
	args []string
}

type recordingRunner struct {
	calls []call
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, call{name: name, args: args})
	return nil
}

type env struct {
	root   string
	cfg    *Config
	runner *recordingRunner
	out    *bytes.Buffer
}

func newEnv(t *testing.T, files map[string]string) *env {
	t.Helper()
	store := testutil.TestRoot(t)
	testutil.WriteFiles(t, store, files)

	cfg := NewDefaultConfig()
	cfg.Root = store.Root()
	cfg.DefaultContext = "daily"
	cfg.IndexPath = filepath.Join(t.TempDir(), "index.db")
	require.NoError(t, cfg.Validate())

	return &env{root: store.Root(), cfg: cfg, runner: &recordingRunner{}, out: &bytes.Buffer{}}
}

func (e *env) run(t *testing.T, cmd Command) error {
	t.Helper()
	return Run(context.Background(), cmd,
		WithConfig(e.cfg),
		WithIO(nil, e.out, &bytes.Buffer{}),
		WithRunner(e.runner),
		WithClock(func() time.Time { return testutil.Day }),
	)
}

const todoFile = "(B) call bank @phone\nx done thing +home\n(A) write report +work\nbuy milk @errands\n"

func TestRun_RequiresConfig(t *testing.T) {
	err := Run(context.Background(), Command{})
	assert.Error(t, err)
}

func TestRun_EditDefaultContext(t *testing.T) {
	e := newEnv(t, nil)
	require.NoError(t, e.run(t, Command{Mode: ModeEdit}))

	want := filepath.Join(e.root, "daily", "2024-03-09.md")
	require.Len(t, e.runner.calls, 1)
	assert.Equal(t, "vim", e.runner.calls[0].name)
	assert.Equal(t, []string{"+normal G$", "+startinsert", want}, e.runner.calls[0].args)

	info, err := os.Stat(filepath.Join(e.root, "daily"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRun_EditExistingFileContext(t *testing.T) {
	e := newEnv(t, map[string]string{"ideas.md": "# Ideas\n"})
	e.cfg.DefaultEditor = "nano"
	require.NoError(t, e.run(t, Command{Mode: ModeEdit, Target: "ideas"}))

	require.Len(t, e.runner.calls, 1)
	assert.Equal(t, "nano", e.runner.calls[0].name)
	assert.Equal(t, []string{filepath.Join(e.root, "ideas.md")}, e.runner.calls[0].args)
}

func TestRun_EditWithDateOverride(t *testing.T) {
	e := newEnv(t, nil)
	require.NoError(t, e.run(t, Command{Mode: ModeEdit, Target: "work", Date: "2024-01-02"}))

	require.Len(t, e.runner.calls, 1)
	args := e.runner.calls[0].args
	assert.Equal(t, filepath.Join(e.root, "work", "2024-01-02.md"), args[len(args)-1])
}

func TestRun_BadDateIsUsageError(t *testing.T) {
	e := newEnv(t, nil)
	err := e.run(t, Command{Mode: ModeEdit, Date: "qwertyuiop"})
	assert.ErrorIs(t, err, apperr.ErrUsage)
	assert.Empty(t, e.runner.calls)
}

func TestRun_MissingDefaultContext(t *testing.T) {
	e := newEnv(t, nil)
	e.cfg.DefaultContext = ""
	err := e.run(t, Command{Mode: ModeEdit})
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
	assert.Empty(t, e.runner.calls)
}

func TestRun_Show(t *testing.T) {
	e := newEnv(t, map[string]string{
		"daily/2024-03-08.md":      "first   \nsecond\n",
		"daily/week/2024-03-09.md": "nested\n",
	})
	require.NoError(t, e.run(t, Command{Mode: ModeShow, Target: "daily"}))

	want := "# " + filepath.Join(e.root, "daily") + "\n\n" +
		"## 2024-03-08\n\nfirst\nsecond\n\n" +
		"## 2024-03-09 /week\n\nnested\n\n"
	assert.Equal(t, want, e.out.String())
}

func TestRun_ShowPrettyWithoutTerminalIsRaw(t *testing.T) {
	e := newEnv(t, map[string]string{"daily/a.md": "text\n"})
	require.NoError(t, e.run(t, Command{Mode: ModeShow, Target: "daily", Pretty: true}))
	assert.Contains(t, e.out.String(), "## a\n\ntext\n")
}

func TestRun_ShowFileIsNotADirectory(t *testing.T) {
	e := newEnv(t, map[string]string{"notes.md": "x\n"})
	err := e.run(t, Command{Mode: ModeShow, Target: "notes.md"})
	assert.ErrorIs(t, err, apperr.ErrNotADirectory)
	assert.Empty(t, e.out.String())
}

func TestRun_ShowTodo(t *testing.T) {
	e := newEnv(t, map[string]string{"todo.txt": todoFile})
	require.NoError(t, e.run(t, Command{Mode: ModeShowTodo}))
	assert.Equal(t, todoFile, e.out.String())
}

func TestRun_Query(t *testing.T) {
	e := newEnv(t, map[string]string{"todo.txt": todoFile})
	require.NoError(t, e.run(t, Command{Mode: ModeQuery, Tokens: []string{"p"}}))
	assert.Equal(t, "(A) write report +work\n(B) call bank @phone\n", e.out.String())

	e.out.Reset()
	require.NoError(t, e.run(t, Command{Mode: ModeQuery, Tokens: []string{"done"}}))
	assert.Equal(t, "x done thing +home\n", e.out.String())

	e.out.Reset()
	require.NoError(t, e.run(t, Command{Mode: ModeQuery, Tokens: []string{"pending", "@phone", "@errands"}}))
	assert.Equal(t, "(B) call bank @phone\nbuy milk @errands\n", e.out.String())
}

func TestRun_QueryMissingTodoFile(t *testing.T) {
	e := newEnv(t, nil)
	err := e.run(t, Command{Mode: ModeQuery, Tokens: []string{"p"}})
	assert.Error(t, err)
	assert.Empty(t, e.out.String())
}

func TestRun_Dirs(t *testing.T) {
	e := newEnv(t, nil)
	require.NoError(t, e.run(t, Command{Mode: ModeDirs}))

	require.Len(t, e.runner.calls, 1)
	assert.Equal(t, "tree", e.runner.calls[0].name)
	assert.Equal(t, []string{"-I", "*.md", e.root}, e.runner.calls[0].args)
}

func TestRun_FileAndTodo(t *testing.T) {
	e := newEnv(t, map[string]string{"readme.md": "hi\n"})
	require.NoError(t, e.run(t, Command{Mode: ModeFile, Target: "readme"}))
	require.NoError(t, e.run(t, Command{Mode: ModeFile, Target: "scratch.txt"}))
	require.NoError(t, e.run(t, Command{Mode: ModeTodo}))

	require.Len(t, e.runner.calls, 3)
	last := func(c call) string { return c.args[len(c.args)-1] }
	assert.Equal(t, filepath.Join(e.root, "readme.md"), last(e.runner.calls[0]))
	assert.Equal(t, filepath.Join(e.root, "scratch.txt"), last(e.runner.calls[1]))
	assert.Equal(t, filepath.Join(e.root, "todo.txt"), last(e.runner.calls[2]))
}

func TestRun_Search(t *testing.T) {
	e := newEnv(t, map[string]string{
		"work/2024-03-08.md":  "# Standup\n\nDiscussed the release plan\n",
		"daily/2024-03-08.md": "nothing relevant\n",
	})
	require.NoError(t, e.run(t, Command{Mode: ModeSearch, Target: "release"}))
	assert.Contains(t, e.out.String(), "work/2024-03-08.md: Standup\n")
	assert.NotContains(t, e.out.String(), "daily/")

	e.out.Reset()
	require.NoError(t, e.run(t, Command{Mode: ModeSearch, Target: "release", Scope: "daily"}))
	assert.Empty(t, e.out.String())
}
