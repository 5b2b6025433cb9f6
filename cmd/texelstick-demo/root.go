// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelstick-demo/root.go
// Summary: Cobra commands for the demo: run (default) and config helpers.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/framegrace/texelstick/config"
	"github.com/framegrace/texelstick/internal/demo"
	"github.com/framegrace/texelstick/internal/logging"
	"github.com/framegrace/texelstick/internal/theming"
	"github.com/framegrace/texelstick/stick"
	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RootOptions holds the flags shared by all commands.
type RootOptions struct {
	ConfigPath  string
	Speed       float64
	FPS         int
	LogFile     string
	LogLevel    string
	MetricsAddr string
}

// runSettings is the configuration after flags are applied.
type runSettings struct {
	Stick   config.StickSettings
	Demo    config.DemoSettings
	Logging config.LogSettings
}

// NewRootCommand creates the texelstick-demo command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "texelstick-demo",
		Short: "Stick-to-bottom chat transcript demo",
		Long: "Streams fake chat messages into a transcript that follows new content " +
			"until you scroll away. Scroll back down or press End to re-attach.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.ConfigPath != "" {
				config.SetPath(opts.ConfigPath)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/texelstick/config.yaml)")
	cmd.Flags().Float64Var(&opts.Speed, "speed", 0.5, "message speed between 0 and 1")
	cmd.Flags().IntVar(&opts.FPS, "fps", 60, "frames per second")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file (logs are discarded otherwise)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	cmd.AddCommand(newConfigCommand())
	return cmd
}

// resolveSettings reads the config store and overlays explicitly set flags.
func resolveSettings(cmd *cobra.Command, opts *RootOptions, cfg config.Config) runSettings {
	s := runSettings{
		Stick:   cfg.Stick(),
		Demo:    cfg.Demo(),
		Logging: cfg.Logging(),
	}
	flags := cmd.Flags()
	if flags.Changed("speed") {
		s.Demo.Speed = min(max(opts.Speed, 0), 1)
	}
	if flags.Changed("fps") && opts.FPS > 0 {
		s.Demo.FPS = opts.FPS
	}
	if flags.Changed("log-file") {
		s.Logging.File = opts.LogFile
	}
	if flags.Changed("log-level") {
		s.Logging.Level = opts.LogLevel
	}
	return s
}

func runDemo(cmd *cobra.Command, opts *RootOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("texelstick-demo must run in a terminal")
	}

	cfg := config.Get()
	s := resolveSettings(cmd, opts, cfg)

	logOut, err := logging.OpenFile(s.Logging.File)
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := logging.InitLogger(s.Logging.Level, s.Logging.Format, logOut)
	logConfigStatus(logger, config.Status())

	reg := prometheus.NewRegistry()
	metrics := stick.NewMetrics(reg)
	if opts.MetricsAddr != "" {
		stop := serveMetrics(opts.MetricsAddr, reg, logger)
		defer stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	loop := stick.NewLoop(nil, s.Demo.FPS)
	feed := demo.NewFeed(nil, nil)
	feed.SetSpeed(s.Demo.Speed)
	feed.SetLargeRatio(s.Demo.LargeRatio)

	theme := theming.ForApp(cfg)
	engineOpts := append(s.Stick.Options(), stick.WithLogger(logger), stick.WithMetrics(metrics))
	app := demo.NewApp(screen, loop, feed, demo.Options{
		InitialMessages: s.Demo.InitialMessages,
		CellHeight:      s.Stick.CellHeight,
		PageEasing:      s.Demo.PageEasing,
		Engine:          engineOpts,
		Theme:           &theme,
		Logger:          logger,
	})

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// logConfigStatus reports the config load once the demo's logger exists,
// so nothing reaches stderr under the terminal UI.
func logConfigStatus(logger *slog.Logger, st config.LoadStatus) {
	switch {
	case st.Err != nil:
		logger.Warn("using default configuration", "path", st.Path, "error", st.Err)
	case st.Created:
		logger.Info("wrote default config", "path", st.Path)
	default:
		logger.Info("config loaded", "path", st.Path)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			return initConfigFile(path, force, cmd)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			out := cmd.OutOrStdout()
			st, d, l := cfg.Stick(), cfg.Demo(), cfg.Logging()
			fmt.Fprintf(out, "stick.damping: %g\nstick.stiffness: %g\nstick.mass: %g\nstick.cell_height: %g\n",
				st.Spring.Damping, st.Spring.Stiffness, st.Spring.Mass, st.CellHeight)
			fmt.Fprintf(out, "demo.speed: %g\ndemo.fps: %d\ndemo.initial_messages: %d\ndemo.large_ratio: %g\ndemo.page_easing: %s\n",
				d.Speed, d.FPS, d.InitialMessages, d.LargeRatio, d.PageEasing)
			fmt.Fprintf(out, "logging.level: %s\nlogging.format: %s\nlogging.file: %q\n", l.Level, l.Format, l.File)
			return config.Err()
		},
	})
	return cmd
}

func initConfigFile(path string, force bool, cmd *cobra.Command) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
