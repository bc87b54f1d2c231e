package launch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/arcade-menu/internal/catalog"
)

func TestNewSelectsLauncher(t *testing.T) {
	for kind, want := range map[string]string{"": KindExec, "exec": KindExec, "TMUX": KindTmux, "none": KindNone} {
		l, err := New(kind, "")
		require.NoError(t, err)
		assert.Equal(t, want, l.Name(), "kind %q", kind)
	}
	_, err := New("telnet", "")
	require.ErrorIs(t, err, ErrUnknownLauncher)
}

func TestRunRejectsEmptyCommand(t *testing.T) {
	rec := NewRecorder()
	err := Run(context.Background(), rec, Request{Entry: catalog.Entry{ID: "hidden"}})
	require.ErrorIs(t, err, ErrNoCommand)
	assert.Empty(t, rec.Requests())
}

func TestRunRecordsRequest(t *testing.T) {
	rec := NewRecorder()
	req := Request{Viewer: "alice", Entry: catalog.Entry{ID: "snake", Command: []string{"snake"}}}
	require.NoError(t, Run(context.Background(), rec, req))
	got := rec.Requests()
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Viewer)
	assert.Equal(t, "snake", got[0].Entry.ID)
}

func TestRecorderKeepsMostRecentRequests(t *testing.T) {
	rec := NewRecorderWithLimit(3)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, rec.Launch(context.Background(), Request{Entry: catalog.Entry{ID: id}}))
	}
	got := rec.Requests()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "d", "e"}, []string{got[0].Entry.ID, got[1].Entry.ID, got[2].Entry.ID})

	var zero Recorder
	for i := 0; i < DefaultHistory+5; i++ {
		require.NoError(t, zero.Launch(context.Background(), Request{}))
	}
	assert.Len(t, zero.Requests(), DefaultHistory)
}

func TestExecAttachesStreamsAndEnv(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	var out bytes.Buffer
	dir := t.TempDir()
	req := Request{
		Viewer: "bob",
		Entry: catalog.Entry{
			ID:      "pong",
			Dir:     dir,
			Command: []string{"sh", "-c", `read line; printf '%s|%s|%s|%s' "$ARCADE_MENU_VIEWER" "$ARCADE_MENU_ENTRY" "$line" "$(pwd)"`},
		},
		Stdin:  strings.NewReader("ping\n"),
		Stdout: &out,
	}
	require.NoError(t, Run(context.Background(), NewExec(), req))
	parts := strings.Split(out.String(), "|")
	require.Len(t, parts, 4)
	assert.Equal(t, []string{"bob", "pong", "ping"}, parts[:3])
	resolved, _ := filepath.EvalSymlinks(dir)
	assert.Contains(t, []string{dir, resolved}, parts[3])
}

func TestExecReportsExitStatus(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	req := Request{Entry: catalog.Entry{ID: "crash", Command: []string{"sh", "-c", "exit 3"}}}
	err := Run(context.Background(), NewExec(), req)
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestTmuxBuildsNewWindowCommand(t *testing.T) {
	var captured *exec.Cmd
	l := NewTmux("/tmp/tmux-1000/arcade")
	l.run = func(cmd *exec.Cmd) error {
		captured = cmd
		return nil
	}
	req := Request{
		Viewer: "carol",
		Entry:  catalog.Entry{ID: "tetris", DisplayName: "Tetris", Dir: "/srv/games", Command: []string{"tetris", "--fast"}},
	}
	require.NoError(t, Run(context.Background(), l, req))
	require.NotNil(t, captured)
	assert.Equal(t, []string{
		"tmux", "-S", "/tmp/tmux-1000/arcade",
		"new-window", "-n", "Tetris", "-c", "/srv/games",
		"-e", "ARCADE_MENU_VIEWER=carol", "-e", "ARCADE_MENU_ENTRY=tetris",
		"--", "tetris", "--fast",
	}, captured.Args)
	assert.Contains(t, captured.Env, "TMUX_TMPDIR=/tmp/tmux-1000")
}

func TestTmuxWithoutSocketKeepsEnvironment(t *testing.T) {
	cmd := tmuxCmd(context.Background(), "", "list-sessions")
	assert.Equal(t, []string{"tmux", "list-sessions"}, cmd.Args)
	assert.Nil(t, cmd.Env)
}

func TestResolveSocketPath(t *testing.T) {
	got, err := ResolveSocketPath("/explicit")
	require.NoError(t, err)
	assert.Equal(t, "/explicit", got)

	t.Setenv("ARCADE_MENU_SOCKET", "/from-env")
	got, err = ResolveSocketPath("")
	require.NoError(t, err)
	assert.Equal(t, "/from-env", got)

	t.Setenv("ARCADE_MENU_SOCKET", "")
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	got, err = ResolveSocketPath("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tmux-1000/default", got)

	t.Setenv("TMUX", "")
	t.Setenv("TMUX_TMPDIR", "/var/run")
	got, err = ResolveSocketPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "/var/run/tmux-"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "/default"), "got %q", got)
}
