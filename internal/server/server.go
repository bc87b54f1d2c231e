// Package server serves the menu to many viewers over SSH. Every connection
// gets its own session, selection and Bubble Tea program; the catalog and
// the header image are shared.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gliderlabs/ssh"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/arcade-menu/internal/app"
	"github.com/atomicstack/arcade-menu/internal/backend"
	"github.com/atomicstack/arcade-menu/internal/data/dispatcher"
	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
)

// DefaultListen is the address used when none is configured.
const DefaultListen = ":2222"

const shutdownGrace = 5 * time.Second

// Config describes the SSH front end.
type Config struct {
	Listen  string
	HostKey string
	Reload  time.Duration
}

// Server accepts SSH connections and runs one menu per connection.
type Server struct {
	cfg Config
	env *app.Environment
	ssh *ssh.Server

	mu       sync.Mutex
	listener net.Listener
}

// New prepares a server. Without a host key file an ephemeral key is
// generated on start.
func New(cfg Config, env *app.Environment) (*Server, error) {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	s := &Server{cfg: cfg, env: env}
	s.ssh = &ssh.Server{
		Addr:    cfg.Listen,
		Handler: s.handle,
	}
	if key := strings.TrimSpace(cfg.HostKey); key != "" {
		if err := s.ssh.SetOption(ssh.HostKeyFile(key)); err != nil {
			return nil, fmt.Errorf("load host key: %w", err)
		}
	}
	return s, nil
}

// Listen binds the configured address. Run calls it when needed.
func (s *Server) Listen() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr(), nil
	}
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
	}
	s.listener = ln
	return ln.Addr(), nil
}

// Run serves until ctx is cancelled, reloading the catalog in the
// background when one is configured.
func (s *Server) Run(ctx context.Context) error {
	addr, err := s.Listen()
	if err != nil {
		return err
	}
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	events.Server.Listen(addr.String())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.ssh.Serve(ln)
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	})

	if path := s.env.Config.CatalogPath; path != "" {
		watcher := backend.NewWatcher(gctx, path, s.cfg.Reload)
		d := dispatcher.New(s.env.Catalogs)
		g.Go(func() error {
			defer watcher.Stop()
			return d.Run(gctx, watcher.Events())
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		events.Server.Stop(context.Cause(gctx).Error(), s.liveSessions())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.ssh.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Error(fmt.Errorf("shutdown: %w", err))
			return s.ssh.Close()
		}
		return nil
	})

	return g.Wait()
}

// liveSessions describes the connected sessions, oldest first.
func (s *Server) liveSessions() []string {
	infos := s.env.Sessions.Entries()
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = fmt.Sprintf("%s@%s %s", info.Viewer, info.Remote, info.ID)
	}
	return out
}
