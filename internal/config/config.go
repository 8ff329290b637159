package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/livery-popup-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWorldPath  = "LIVERY_POPUP_CONTROL_WORLD"
	envCompany    = "LIVERY_POPUP_CONTROL_COMPANY"
	envGroup      = "LIVERY_POPUP_CONTROL_GROUP"
	envWidth      = "LIVERY_POPUP_CONTROL_WIDTH"
	envHeight     = "LIVERY_POPUP_CONTROL_HEIGHT"
	envShowFooter = "LIVERY_POPUP_CONTROL_FOOTER"
	envVerbose    = "LIVERY_POPUP_CONTROL_VERBOSE"
	envTrace      = "LIVERY_POPUP_CONTROL_TRACE"
	envLogFile    = "LIVERY_POPUP_CONTROL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("livery-popup-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	world := fs.String("world", envOrDefault(env, envWorldPath, ""), "path to the world snapshot file (required)")
	company := fs.Int("company", envOrInt(env, envCompany, -1), "company id to edit (-1 edits the local company)")
	group := fs.Int("group", envOrInt(env, envGroup, -1), "group id to open at startup (-1 opens the general class)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *company < -1 {
		return Config{}, fmt.Errorf("company must be >= -1 (got %d)", *company)
	}
	if *group < -1 {
		return Config{}, fmt.Errorf("group must be >= -1 (got %d)", *group)
	}

	cfg := Config{
		App: app.Config{
			WorldPath:  *world,
			Company:    *company,
			Group:      *group,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"world":   *world,
			"company": strconv.Itoa(*company),
			"group":   strconv.Itoa(*group),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
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
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.WorldPath == "" {
		return fmt.Errorf("a world snapshot path is required (-world or %s)", envWorldPath)
	}
	return nil
}
