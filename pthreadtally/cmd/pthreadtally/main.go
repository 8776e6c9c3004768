//go:build !solution

// Command pthreadtally prints pthread symbols grouped by how many platform lists mention them.
//
// Input lists are read from the working directory. Command line arguments are ignored;
// PTHREADTALLY_CONFIG may point to a YAML file overriding the lists, and
// PTHREADTALLY_LOG_LEVEL sets the stderr log level (warn by default).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/slon/pthreadtally/pthreadtally"
)

const (
	configEnv   = "PTHREADTALLY_CONFIG"
	logLevelEnv = "PTHREADTALLY_LOG_LEVEL"
)

// newLogger пишет JSON в stderr, чтобы stdout оставался только под отчёт
func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logLevelEnv, err)
		}
		lvl = parsed
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

func loadConfig(fs afero.Fs, path string) (pthreadtally.Config, error) {
	if path == "" {
		return pthreadtally.DefaultConfig(), nil
	}
	return pthreadtally.LoadConfig(fs, path)
}

func newRootCmd(fs afero.Fs, getenv func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   "pthreadtally",
		Short: "Group pthread symbols by the number of platform lists they appear in",
		// Аргументы и флаги не влияют на поведение
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(getenv(logLevelEnv))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			configPath := getenv(configEnv)
			config, err := loadConfig(fs, configPath)
			if err != nil {
				logger.Error("failed to load config", zap.String("path", configPath), zap.Error(err))
				return err
			}

			return pthreadtally.NewReporter(fs, config, logger).Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(afero.NewOsFs(), os.Getenv)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
