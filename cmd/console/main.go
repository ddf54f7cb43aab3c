package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-console/internal/config"
	"github.com/rxtech-lab/argo-console/internal/console"
	"github.com/rxtech-lab/argo-console/internal/feed"
	applog "github.com/rxtech-lab/argo-console/internal/log"
	"github.com/rxtech-lab/argo-console/internal/logger"
	"github.com/rxtech-lab/argo-console/internal/version"
	"github.com/rxtech-lab/argo-console/pkg/errors"
)

// consoleAction wires the coordinator, the simulated feed and the shell.
func consoleAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.IsSet("prompt") {
		cfg.Prompt = cmd.String("prompt")
	}

	consoleConfig, err := cfg.ConsoleConfig(os.Stdout)
	if err != nil {
		return err
	}

	coordinator := console.NewCoordinator(consoleConfig)
	coordinator.SetPrompt(cfg.Prompt)

	applog.SetBackend(coordinator)
	defer applog.ResetBackend()

	diagnostics, err := logger.NewConsoleLogger(coordinator, cfg.DiagnosticsLevel)
	if err != nil {
		return err
	}
	defer diagnostics.Sync()

	symbols := cmd.StringSlice("symbols")
	if len(symbols) == 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "at least one symbol is required")
	}

	interval := cmd.Duration("interval")
	if err := feed.CheckInterval(interval); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := feed.New(time.Now().UnixNano(), symbols, feed.DefaultConfig())
	sh := newShell(coordinator, os.Stdout, f, cmd.String("account"), diagnostics.Named("console"))

	diagnostics.Named("console").Info("streaming started",
		zap.Strings("symbols", symbols),
		zap.Duration("interval", interval),
		zap.String("log_dir", coordinator.LogDir()),
		zap.String("version", version.GetVersion()),
		zap.Bool(console.FieldLogToFile, true),
	)

	return sh.stream(ctx, interval, os.Stdin)
}

// schemaAction prints the JSON schema of the config file.
func schemaAction(_ context.Context, _ *cli.Command) error {
	schema, err := config.Schema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to generate config schema", err)
	}

	_, err = fmt.Fprintln(os.Stdout, schema)

	return err
}

func main() {
	cmd := &cli.Command{
		Name:    "argo-console",
		Usage:   "Stream simulated quotes above an interactive prompt and persist them per symbol",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringSliceFlag{
				Name:    "symbols",
				Aliases: []string{"s"},
				Usage:   "Symbols to stream",
				Value:   []string{"AAPL", "MSFT"},
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Time between quote ticks",
				Value:   2 * time.Second,
			},
			&cli.StringFlag{
				Name:    "account",
				Aliases: []string{"a"},
				Usage:   "Account tag rendered on every quote line",
				Value:   "paper",
			},
			&cli.StringFlag{
				Name:  "prompt",
				Usage: "Prompt text, overrides the config file",
			},
		},
		Action: consoleAction,
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the config file",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
