package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dotfile"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var errNoMap = errors.New("no map file: set map_file in the config or pass --map")

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	mapPath    string
	logLevel   string
}

// app is everything a subcommand needs once flags are resolved.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *query.Metrics
	svc     *query.Service
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "lvroute",
		Short:        "Shortest paths and nearest destinations over a location map",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.mapPath, "map", "", "map file (overrides map_file)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides log.level)")

	root.AddCommand(
		newPathCmd(flags),
		newNearestCmd(flags),
		newLocationsCmd(flags),
		newServeCmd(flags),
	)

	return root
}

// setup loads the configuration, builds the logger and service, and
// publishes the initial graph.
func setup(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return nil, err
		}
	}
	if flags.mapPath != "" {
		cfg.MapFile = flags.mapPath
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MapFile == "" {
		return nil, errNoMap
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	reg := prometheus.NewRegistry()
	metrics := query.NewMetrics(reg)
	svc := query.NewService(
		query.WithLogger(logger),
		query.WithMetrics(metrics),
		query.WithNearestLimit(cfg.NearestLimit),
		query.WithSearchTimeout(cfg.SearchTimeout),
	)

	g, err := dotfile.LoadFile(cmd.Context(), cfg.MapFile, graphOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	svc.Publish(g)

	return &app{cfg: cfg, logger: logger, reg: reg, metrics: metrics, svc: svc}, nil
}

func graphOptions(cfg config.Config) []core.GraphOption {
	opts := []core.GraphOption{core.WithCapacity(cfg.InitialCapacity)}
	if cfg.StrictEdges {
		opts = append(opts, core.WithStrictEdges())
	}

	return opts
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
