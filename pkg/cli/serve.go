package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/synthd/pkg/config"
	"github.com/getmockd/synthd/pkg/engine"
	"github.com/getmockd/synthd/pkg/logging"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 15 * time.Second

// serveFlags holds the flag values bound to the serve command. Zero values
// mean "not set"; only set flags override the resolved configuration.
type serveFlags struct {
	configFile string
	port       int
	maxCount   int
	logLevel   string
	logFormat  string
	rateLimit  bool
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fake-data server (foreground)",
	Example: `  # Start with defaults on :8080
  synthd serve

  # Custom port and record cap
  synthd serve --port 3000 --max-count 500

  # From a config file, with env overrides still applied
  SYNTHD_LOG_LEVEL=debug synthd serve --config synthd.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, &serveFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to a YAML config file")
	serveCmd.Flags().IntVarP(&f.port, "port", "p", 0, "HTTP listen port (overrides config)")
	serveCmd.Flags().IntVar(&f.maxCount, "max-count", 0, "Maximum records per request (overrides config)")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: text, json")
	serveCmd.Flags().BoolVar(&f.rateLimit, "rate-limit", false, "Enable per-IP rate limiting")
}

func runServe(cmd *cobra.Command, f *serveFlags) error {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}

	// Explicit flags win over file and environment.
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("max-count") {
		cfg.MaxCount = f.maxCount
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit.Enabled = f.rateLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv := engine.New(cfg, log, buildInfo.Version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
