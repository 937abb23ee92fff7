package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/cmd/add"
	"github.com/leefowlercu/ci-demo/cmd/config"
	"github.com/leefowlercu/ci-demo/cmd/greet"
	"github.com/leefowlercu/ci-demo/cmd/multiply"
	"github.com/leefowlercu/ci-demo/cmd/run"
	"github.com/leefowlercu/ci-demo/cmd/version"
	internalconfig "github.com/leefowlercu/ci-demo/internal/config"
	"github.com/leefowlercu/ci-demo/internal/logging"
	"github.com/leefowlercu/ci-demo/internal/metrics"
	"github.com/leefowlercu/ci-demo/internal/styles"
	internalversion "github.com/leefowlercu/ci-demo/internal/version"
)

// logManager is the global logging manager, created in init() and upgraded after config loads
var logManager *logging.Manager

// startedAt is set when a command begins; it feeds the command duration metric
var startedAt time.Time

var rootCmd = &cobra.Command{
	Use:   "cidemo",
	Short: "Demo application for exercising a CI pipeline",
	Long: "cidemo is a small demonstration application used to exercise a CI pipeline.\n\n" +
		"Run without a subcommand it prints a banner, a greeting, and the results of " +
		"an addition and a multiplication. The greet, add, and multiply subcommands " +
		"expose each operation individually for smoke tests.",
	Version:           internalversion.Version(),
	Args:              cobra.NoArgs,
	PersistentPreRunE: runInitialize,
	PreRunE:           run.RunCmd.PreRunE,
	RunE:              run.RunCmd.RunE,
}

func init() {
	logManager = logging.NewManager()
	slog.SetDefault(logManager.Logger())

	rootCmd.AddCommand(run.RunCmd)
	rootCmd.AddCommand(greet.GreetCmd)
	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(multiply.MultiplyCmd)
	rootCmd.AddCommand(config.ConfigCmd)
	rootCmd.AddCommand(version.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	startedAt = time.Now()
	logger := logManager.Logger()

	if err := internalconfig.Init(); err != nil {
		return err
	}

	levelStr := internalconfig.GetString("log_level")
	level, ok := logging.ParseLevel(levelStr)
	if !ok {
		logger.Warn("invalid log level configured, using default", "configured", levelStr, "default", "info")
	}

	cfg := internalconfig.Get()
	rotation := logging.Rotation{
		MaxSizeMB:  cfg.LogRotation.MaxSizeMB,
		MaxBackups: cfg.LogRotation.MaxBackups,
		MaxAgeDays: cfg.LogRotation.MaxAgeDays,
		Compress:   cfg.LogRotation.Compress,
	}

	if err := logManager.Upgrade(internalconfig.GetPath("log_file"), level, rotation); err != nil {
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
		logManager.SetLevel(level)
	}

	slog.SetDefault(logger.With("run_id", uuid.NewString()))
	slog.Debug("command started", "command", cmd.CommandPath(), "config", internalconfig.ConfigFilePath())

	return nil
}

// Execute runs the root command and reports any error on stdout.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	err := rootCmd.Execute()

	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd == nil {
		cmd = rootCmd
	}
	flushMetrics(cmd)

	if err != nil {
		slog.Debug("command failed", "command", cmd.CommandPath(), "error", err)
		reportError(os.Stdout, cmd, err)
		return err
	}

	return nil
}

// flushMetrics writes the operation metrics when metrics_file is configured.
// Failures are logged and never change the command result.
func flushMetrics(cmd *cobra.Command) {
	path := internalconfig.GetPath("metrics_file")
	if path == "" {
		return
	}

	if !startedAt.IsZero() {
		metrics.Default.ObserveCommand(cmd.CommandPath(), time.Since(startedAt))
	}
	metrics.Default.SetBuildInfo(internalversion.Version())

	if err := metrics.Default.WriteFile(path); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("metrics written", "path", path)
}

// reportError writes the error line to w, followed by usage for argument and
// flag errors.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	out := styles.NewPrinter(w, internalconfig.GetBool("output.color"))
	_ = out.Failure(fmt.Sprintf("Error: %v", err))

	if !cmd.SilenceUsage {
		fmt.Fprintln(w)
		cmd.SetOut(w)
		_ = cmd.Usage()
	}
}
