package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/term"

	"github.com/germanamz/caesar/cmd/caesar/internal/display"
	"github.com/germanamz/caesar/cmd/caesar/internal/form"
	"github.com/germanamz/caesar/cmd/caesar/internal/styles"
	"github.com/germanamz/caesar/pkg/config"
	"github.com/germanamz/caesar/pkg/session"
)

// loadConfig resolves the configuration file and applies flag overrides.
func loadConfig(f cliFlags) (config.Config, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (f cliFlags) apply(cfg *config.Config) {
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if f.color != "" {
		cfg.Color = f.color
	}
	if f.accessible {
		cfg.Accessible = true
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
}

// run wires the frontend selected by cfg and runs one session to completion.
func run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("caesar: panicked: %v", r)
		}
	}()

	logger := newLogger(errOut, cfg.Log)
	theme := styles.New(out, cfg.Color)

	mode := selectMode(cfg.Mode, in)
	logger.Debug("starting", "mode", mode, "color", cfg.Color, "accessible", cfg.Accessible)

	var d session.Display = display.New(out, theme, display.Options{
		Banner: cfg.Banner,
		Width:  cfg.Width,
	})
	if mode == config.ModeLine && plainTranscript(cfg) {
		d = session.NewPlainDisplay(out)
	}

	var p session.Prompter
	switch mode {
	case config.ModeForm:
		p = form.New(form.Options{
			Accessible: cfg.Accessible,
			AltScreen:  cfg.AltScreen,
			Input:      in,
			Output:     out,
			Renderer:   theme.Renderer,
		})
	default:
		p = session.NewLinePrompter(in, d)
	}

	return session.New(p, d, session.WithLogger(logger)).Run(ctx)
}

// plainTranscript reports whether cfg asks for none of the terminal styling,
// in which case the line frontend writes the bare transcript.
func plainTranscript(cfg config.Config) bool {
	return cfg.Color == config.ColorNever && !cfg.Banner && cfg.Width == 0
}

// selectMode resolves ModeAuto: forms need a terminal on the input side.
func selectMode(mode string, in io.Reader) string {
	if mode != config.ModeAuto {
		return mode
	}
	if f, ok := in.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		return config.ModeForm
	}
	return config.ModeLine
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
