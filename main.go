package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/arcade-menu/internal/app"
	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/config"
	"github.com/atomicstack/arcade-menu/internal/format/table"
	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
	"github.com/atomicstack/arcade-menu/internal/server"
	"github.com/atomicstack/arcade-menu/internal/theme"
	"github.com/atomicstack/arcade-menu/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Args[1:], os.Environ()).ExecuteContext(ctx); err != nil {
		logging.Error(err)
		fmt.Fprintln(os.Stderr, theme.Default().Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(argv, environ []string) *cobra.Command {
	var cfg config.Config
	root := &cobra.Command{
		Use:           "arcade-menu",
		Short:         "Pick something to play from a scrolling menu",
		Long:          "Pick something to play from a scrolling menu.\n\n" + keysUsage(ui.DefaultKeymap()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Complete(cmd.Root().PersistentFlags(), &cfg, argv); err != nil {
				return err
			}
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			traceStartup(cmd.CommandPath(), cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), cfg.App)
		},
	}
	config.Bind(root.PersistentFlags(), &cfg, environ)
	root.AddCommand(newServeCmd(&cfg), newListCmd(&cfg), newPlayCmd(&cfg))
	root.SetArgs(argv)
	return root
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the menu to many viewers over SSH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.NewEnvironment(cfg.App)
			if err != nil {
				return err
			}
			srv, err := server.New(cfg.Server, env)
			if err != nil {
				return err
			}
			addr, err := srv.Listen()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), theme.Default().Info.Render("listening on "+addr.String()))
			return srv.Run(cmd.Context())
		},
	}
}

func newListCmd(cfg *config.Config) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the entries the viewer would be offered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(cfg.App.CatalogPath)
			if err != nil {
				return err
			}
			for _, line := range listLines(cat, cfg.App.Viewer, all) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include entries the viewer is not offered")
	return cmd
}

func listLines(cat *catalog.Catalog, viewer string, all bool) []string {
	styles := theme.Default()
	offered := make(map[string]bool)
	for _, e := range cat.Available(viewer) {
		offered[e.ID] = true
	}
	rows := [][]string{{"ID", "NAME", "COMMAND"}}
	if all {
		rows[0] = append(rows[0], "OFFERED")
	}
	for _, e := range cat.Entries() {
		if !all && !offered[e.ID] {
			continue
		}
		row := []string{e.ID, e.Name(), strings.Join(e.Command, " ")}
		if all {
			row = append(row, fmt.Sprintf("%t", offered[e.ID]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 1 {
		return []string{styles.Info.Render("no entries for " + viewer)}
	}
	return table.Styled(rows, nil, styles.TableHeader, styles.TableRow)
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play <query>",
		Short: "Start an entry directly, matching its id or name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.NewEnvironment(cfg.App)
			if err != nil {
				return err
			}
			streams := app.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
			return env.Play(cmd.Context(), cfg.App.Viewer, strings.Join(args, " "), streams)
		},
	}
}

// keysUsage renders the primary menu bindings as an aligned block.
func keysUsage(k ui.Keymap) string {
	rows := make([][]string, 0, len(k.ShortHelp()))
	for _, b := range k.ShortHelp() {
		help := b.Help()
		rows = append(rows, []string{"  " + help.Key, help.Desc})
	}
	return "Keys:\n" + strings.Join(table.Format(rows, nil), "\n")
}

func traceStartup(command string, cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	payload := startupTracePayload(cfg)
	payload["command"] = command
	events.App.Start(payload)
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]any {
	flags := make(map[string]any, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["log-file"] = cfg.Logging.FilePath
	payload := map[string]any{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["logFile"] = logging.Path()
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
