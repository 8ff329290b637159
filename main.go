package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/livery-popup-control/internal/app"
	"github.com/atomicstack/livery-popup-control/internal/config"
	"github.com/atomicstack/livery-popup-control/internal/logging"
	"github.com/atomicstack/livery-popup-control/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
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
	info := ttyDetails{
		Probes: []ttyProbeResult{
			probeTTY("stdin", int(os.Stdin.Fd())),
			probeTTY("stdout", int(os.Stdout.Fd())),
			probeTTY("stderr", int(os.Stderr.Fd())),
		},
	}
	for _, probe := range info.Probes {
		if probe.IsTerminal && probe.Error == "" {
			info.Detected = &ttyDetected{Source: probe.Name, Width: probe.Width, Height: probe.Height}
			break
		}
	}
	return info
}

func probeTTY(name string, fd int) ttyProbeResult {
	entry := ttyProbeResult{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return entry
	}
	entry.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Width = width
	entry.Height = height
	return entry
}
