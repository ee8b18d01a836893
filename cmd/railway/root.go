package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/builder"
	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/guide"
	"github.com/katalvlaran/railway/internal/config"
	"github.com/katalvlaran/railway/internal/logging"
)

// session is the state shared by every command of one invocation.
type session struct {
	cfg    config.Config
	log    *slog.Logger
	name   string
	graph  *core.Graph
	guide  *guide.Guide
	styles styles
	cancel context.CancelFunc
}

var sess *session

var (
	flagRoutes    string
	flagNetwork   string
	flagStrict    bool
	flagTimeout   time.Duration
	flagLogLevel  string
	flagLogFormat string
	flagVerbose   bool
	flagNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "railway",
	Short: "Railway answers travel questions about a one-way rail network",
	Long: `Railway loads a network of cities joined by one-way routes and answers
questions about it: the distance of an exact path, how many trips exist within
a number of stops or a distance, and the shortest route between two cities.

Without --routes or --network the Kiwiland sample network is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args)
		if err != nil {
			return err
		}
		sess = s
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describe(err, nil))
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRoutes, "routes", "", `route list, e.g. "AB5, BC4, Alpha-Beta:12" (env RAILWAY_ROUTES)`)
	pf.StringVar(&flagNetwork, "network", "", "YAML network document (env RAILWAY_NETWORK)")
	pf.BoolVar(&flagStrict, "strict", false, "reject duplicate routes (env RAILWAY_STRICT)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "deadline for trip enumeration, 0 for none (env RAILWAY_QUERY_TIMEOUT)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error (env RAILWAY_LOG_LEVEL)")
	pf.StringVar(&flagLogFormat, "log-format", "", "text|json (env RAILWAY_LOG_FORMAT)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "print every trip, not only counts")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// newSession resolves configuration (defaults < file < env < flags), builds
// the logger and loads the network. Route tokens given as arguments to report
// replace any configured network.
func newSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)
	if cmd == reportCmd && len(args) > 0 {
		cfg.Network.File = ""
		cfg.Network.Routes = strings.Join(args, ",")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.Logging)
	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	start := time.Now()
	g, name, err := loadNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}
	log.Debug("network loaded",
		"name", name,
		"cities", g.CityCount(),
		"routes", g.RouteCount(),
		"elapsed", time.Since(start))

	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if cfg.Query.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Query.Timeout)
	}

	return &session{
		cfg:    cfg,
		log:    log,
		name:   name,
		graph:  g,
		guide:  guide.New(g, guide.WithContext(ctx)),
		styles: newStyles(),
		cancel: cancel,
	}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("routes") {
		cfg.Network.Routes = flagRoutes
	}
	if flags.Changed("network") {
		cfg.Network.File = flagNetwork
	}
	if flags.Changed("strict") {
		cfg.Network.Strict = flagStrict
	}
	if flags.Changed("timeout") {
		cfg.Query.Timeout = flagTimeout
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = flagLogFormat
	}
}

// loadNetwork picks the network source: a YAML file, then a route list,
// then the sample network.
func loadNetwork(nc config.NetworkConfig) (*core.Graph, string, error) {
	var opts []builder.BuilderOption
	if nc.Strict {
		opts = append(opts, builder.WithStrict())
	}

	switch {
	case nc.File != "":
		g, name, err := builder.LoadFile(nc.File, opts...)
		if err != nil {
			return nil, "", err
		}
		if name == "" {
			name = nc.File
		}
		return g, name, nil
	case nc.Routes != "":
		routes, err := builder.ParseRoutes(nc.Routes)
		if err != nil {
			return nil, "", err
		}
		if len(routes) == 0 {
			return nil, "", builder.ErrNoRoutes
		}
		g, err := builder.FromRoutes(routes, opts...)
		if err != nil {
			return nil, "", err
		}
		return g, "custom", nil
	default:
		return builder.Kiwiland(), builder.KiwilandName, nil
	}
}

// timed logs how long a command body took and releases the session deadline,
// whether or not fn fails.
func timed(cmd *cobra.Command, fn func() error) error {
	if sess.cancel != nil {
		defer sess.cancel()
	}
	start := time.Now()
	err := fn()
	sess.log.Debug("query", "command", cmd.Name(), "elapsed", time.Since(start), "error", err)

	return err
}
