package launch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

// Tmux opens the entry in a new window of a running tmux server instead of
// taking over the viewer's terminal.
type Tmux struct {
	Socket string

	run func(*exec.Cmd) error
}

func NewTmux(socket string) *Tmux {
	return &Tmux{Socket: socket, run: runCombined}
}

func (*Tmux) Name() string { return KindTmux }

func (t *Tmux) Launch(ctx context.Context, req Request) error {
	if len(req.Entry.Command) == 0 {
		return ErrNoCommand
	}
	cmd := tmuxCmd(ctx, t.Socket, newWindowArgs(req)...)
	return t.run(cmd)
}

func newWindowArgs(req Request) []string {
	args := []string{"new-window", "-n", req.Entry.Name()}
	if dir := strings.TrimSpace(req.Entry.Dir); dir != "" {
		args = append(args, "-c", dir)
	}
	for _, kv := range entryEnv(req) {
		args = append(args, "-e", kv)
	}
	args = append(args, "--")
	return append(args, req.Entry.Command...)
}

func tmuxArgs(socket string, extra ...string) []string {
	args := make([]string, 0, len(extra)+2)
	if trimmed := strings.TrimSpace(socket); trimmed != "" {
		args = append(args, "-S", trimmed)
	}
	return append(args, extra...)
}

func tmuxCmd(ctx context.Context, socket string, extra ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "tmux", tmuxArgs(socket, extra...)...)
	if dir := socketDir(socket); dir != "" {
		cmd.Env = append(os.Environ(), "TMUX_TMPDIR="+dir)
	}
	return cmd
}

func runCombined(cmd *exec.Cmd) error {
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func socketDir(socket string) string {
	trimmed := strings.TrimSpace(socket)
	if trimmed == "" {
		return ""
	}
	return filepath.Dir(trimmed)
}

// ResolveSocketPath picks the tmux socket: the flag value, then
// ARCADE_MENU_SOCKET, then the server of the enclosing tmux client, then the
// per-user default socket.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("ARCADE_MENU_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		if socket, _, _ := strings.Cut(tmuxEnv, ","); socket != "" {
			return socket, nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
