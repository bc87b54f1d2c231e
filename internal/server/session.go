package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gliderlabs/ssh"
	"github.com/muesli/termenv"

	"github.com/atomicstack/arcade-menu/internal/app"
	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
	"github.com/atomicstack/arcade-menu/internal/state"
)

func (s *Server) handle(sess ssh.Session) {
	viewer := sess.User()
	remote := sess.RemoteAddr().String()
	pty, winCh, ok := sess.Pty()
	if !ok {
		events.Server.Reject(viewer, remote, "no pty")
		fmt.Fprintln(sess.Stderr(), "an interactive terminal is required (try ssh -t)")
		_ = sess.Exit(1)
		return
	}

	session := state.NewSession(viewer, remote)
	s.env.Sessions.Add(session)
	events.Server.Connect(session.ID, viewer, remote, s.env.Sessions.Len())
	defer func() {
		s.env.Sessions.Remove(session.ID)
		events.Server.Disconnect(session.ID, viewer, s.env.Sessions.Len())
	}()

	renderer := lipgloss.NewRenderer(sess)
	renderer.SetColorProfile(colorProfile(pty.Term, sess.Environ()))

	opts := append(s.env.ProgramOptions(),
		tea.WithContext(sess.Context()),
		tea.WithInput(sess),
		tea.WithOutput(sess),
	)
	program := tea.NewProgram(s.env.NewModel(session, renderer), opts...)

	go func() {
		for w := range winCh {
			program.Send(tea.WindowSizeMsg{Width: w.Width, Height: w.Height})
		}
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error(fmt.Errorf("session %s: %w", session.ID, err))
		_ = sess.Exit(1)
		return
	}

	streams := app.Streams{In: sess, Out: sess, Err: sess.Stderr()}
	if err := s.settle(sess.Context(), session, streams); err != nil {
		logging.Error(err)
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		_ = sess.Exit(1)
		return
	}
	_ = sess.Exit(0)
}

// settle applies the outcome of a finished menu. A viewer who already hung up
// gets nothing launched on the dead connection.
func (s *Server) settle(ctx context.Context, session *state.Session, streams app.Streams) error {
	if ctx.Err() != nil {
		events.Session.End(session.ID, session.Viewer, "disconnected", session.Elapsed())
		return nil
	}
	return s.env.Finish(ctx, session, streams)
}

// colorProfile picks the richest palette the remote terminal advertises.
func colorProfile(term string, environ []string) termenv.Profile {
	for _, kv := range environ {
		if k, v, _ := strings.Cut(kv, "="); k == "COLORTERM" && (v == "truecolor" || v == "24bit") {
			return termenv.TrueColor
		}
	}
	term = strings.ToLower(term)
	switch {
	case term == "" || term == "dumb":
		return termenv.Ascii
	case strings.Contains(term, "direct") || strings.Contains(term, "truecolor"):
		return termenv.TrueColor
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}
