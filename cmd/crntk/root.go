// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/internal/cache"
	"github.com/katalvlaran/crntk/internal/config"
	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/internal/metrics"
	"github.com/katalvlaran/crntk/internal/render"
	"github.com/katalvlaran/crntk/network"
)

type rootOptions struct {
	configPath string
	logLevel   string
	output     string
	color      string
}

// app carries what every subcommand needs.
type app struct {
	cfg *config.Config
	log logging.Logger
}

type appKey struct{}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "crntk",
		Short:         "Chemical reaction network toolkit",
		Long:          "crntk parses reaction networks and reports linkage classes, deficiency,\nflux relations and the semi-positive conservation laws.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a, err := appFrom(cmd); err == nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (YAML); CRNTK_* variables override it")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVarP(&opts.output, "output", "o", "", "output format: text, json, yaml")
	pf.StringVar(&opts.color, "color", "", "colour text output: auto, always, never")

	cmd.AddCommand(newAnalyzeCommand(), newClawsCommand(), newGenerateCommand(), newServeCommand())

	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = opts.output
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)
	cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{cfg: cfg, log: log}))

	return nil
}

func appFrom(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok {
		return nil, errors.New("crntk: command not initialised")
	}

	return a, nil
}

// service builds the analysis service and, for the Redis backend, a
// health check for its connection.
func (a *app) service(rec metrics.Recorder) (*analysis.Service, func(context.Context) error) {
	opts := []analysis.ServiceOption{analysis.WithLogger(a.log), analysis.WithRecorder(rec)}

	var ping func(context.Context) error
	switch a.cfg.Cache.Backend {
	case config.CacheMemory:
		opts = append(opts, analysis.WithCache(analysis.NewMemoryCache(a.cfg.Cache.Size)))
	case config.CacheRedis:
		rc := cache.New(cache.NewClient(a.cfg.Cache.Redis),
			cache.WithPrefix(a.cfg.Cache.Redis.Prefix),
			cache.WithTTL(a.cfg.Cache.TTL))
		opts = append(opts, analysis.WithCache(rc))
		ping = rc.Ping
	}

	return analysis.NewService(opts...), ping
}

func (a *app) renderer(w io.Writer) (*render.Renderer, error) {
	return render.New(w, a.cfg.Output.Format, a.cfg.Output.Color)
}

// readInput reads the named file, or stdin when args is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func parseInput(cmd *cobra.Command, args []string) (*network.Network, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	return network.ParseString(text)
}
