package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/arcade-menu/internal/app"
	"github.com/atomicstack/arcade-menu/internal/backend"
	"github.com/atomicstack/arcade-menu/internal/launch"
	"github.com/atomicstack/arcade-menu/internal/server"
	"github.com/atomicstack/arcade-menu/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Server  server.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalog  = "ARCADE_MENU_CATALOG"
	envViewer   = "ARCADE_MENU_VIEWER"
	envLogo     = "ARCADE_MENU_LOGO"
	envTPS      = "ARCADE_MENU_TPS"
	envLauncher = "ARCADE_MENU_LAUNCHER"
	envSocket   = "ARCADE_MENU_SOCKET"
	envListen   = "ARCADE_MENU_LISTEN"
	envHostKey  = "ARCADE_MENU_HOST_KEY"
	envReload   = "ARCADE_MENU_RELOAD"
	envMouse    = "ARCADE_MENU_MOUSE"
	envTrace    = "ARCADE_MENU_TRACE"
	envLogFile  = "ARCADE_MENU_LOG_FILE"
)

const (
	minTPS = 1
	maxTPS = 60
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("arcade-menu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	var cfg Config
	Bind(fs, &cfg, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := Complete(fs, &cfg, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bind registers every flag on fs. Environment variables provide the
// defaults so explicit flags always win.
func Bind(fs *pflag.FlagSet, cfg *Config, environ []string) {
	env := parseEnv(environ)
	viewer := envOrDefault(env, envViewer, envOrDefault(env, "USER", "viewer"))

	fs.StringVar(&cfg.App.CatalogPath, "catalog", envOrDefault(env, envCatalog, ""), "path to the YAML catalog of entries")
	fs.StringVar(&cfg.App.Viewer, "viewer", viewer, "viewer name used for permission checks in local sessions")
	fs.StringVar(&cfg.App.LogoPath, "logo", envOrDefault(env, envLogo, ""), "header image (png, jpeg, webp or bmp); empty uses the built-in logo")
	fs.IntVar(&cfg.App.TPS, "tps", envOrInt(env, envTPS, ui.DefaultTPS), "frames painted per second")
	fs.StringVar(&cfg.App.Launcher, "launcher", envOrDefault(env, envLauncher, launch.KindExec), "how entries are started: "+strings.Join(launch.Kinds(), ", "))
	fs.StringVar(&cfg.App.SocketPath, "socket", envOrDefault(env, envSocket, ""), "tmux socket for the tmux launcher (overrides environment detection)")
	fs.BoolVar(&cfg.App.Mouse, "mouse", envOrBool(env, envMouse, true), "scroll the menu with the mouse wheel")
	fs.StringVar(&cfg.Server.Listen, "listen", envOrDefault(env, envListen, server.DefaultListen), "SSH listen address for serve")
	fs.StringVar(&cfg.Server.HostKey, "host-key", envOrDefault(env, envHostKey, ""), "SSH host key file for serve; empty generates one")
	fs.DurationVar(&cfg.Server.Reload, "reload", envOrDuration(env, envReload, backend.DefaultInterval), "catalog reload poll interval for serve")
	fs.BoolVar(&cfg.Logging.Trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
}

// Complete records the parsed flag values for tracing and validates them.
func Complete(fs *pflag.FlagSet, cfg *Config, args []string) error {
	cfg.Flags = make(map[string]string)
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	cfg.Args = append([]string(nil), args...)
	cfg.App.Launcher = strings.ToLower(strings.TrimSpace(cfg.App.Launcher))
	return Validate(*cfg)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks value ranges.
func Validate(cfg Config) error {
	if cfg.App.TPS < minTPS || cfg.App.TPS > maxTPS {
		return fmt.Errorf("tps must be between %d and %d (got %d)", minTPS, maxTPS, cfg.App.TPS)
	}
	valid := false
	for _, kind := range launch.Kinds() {
		if cfg.App.Launcher == kind {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("launcher must be one of %s (got %q)", strings.Join(launch.Kinds(), ", "), cfg.App.Launcher)
	}
	if cfg.Server.Reload <= 0 {
		return fmt.Errorf("reload must be > 0 (got %s)", cfg.Server.Reload)
	}
	if strings.TrimSpace(cfg.App.Viewer) == "" {
		return fmt.Errorf("viewer must not be empty")
	}
	return nil
}
