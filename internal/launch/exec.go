package launch

import (
	"context"
	"os"
	"os/exec"
)

// Exec runs the entry's command attached to the viewer's terminal and waits
// for it to exit.
type Exec struct {
	// Env is appended to the process environment.
	Env []string
}

func NewExec() *Exec {
	return &Exec{}
}

func (*Exec) Name() string { return KindExec }

func (e *Exec) Launch(ctx context.Context, req Request) error {
	argv := req.Entry.Command
	if len(argv) == 0 {
		return ErrNoCommand
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = req.Entry.Dir
	cmd.Env = append(append(os.Environ(), e.Env...), entryEnv(req)...)
	cmd.Stdin = req.Stdin
	cmd.Stdout = req.Stdout
	cmd.Stderr = req.Stderr
	return cmd.Run()
}
