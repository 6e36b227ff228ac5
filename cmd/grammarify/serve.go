//nolint:wrapcheck
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/grammarify"
	"github.com/farcloser/grammarify/internal/bot"
	"github.com/farcloser/grammarify/internal/config"
	"github.com/farcloser/grammarify/internal/integration/grammarly"
	"github.com/farcloser/grammarify/internal/integration/telegram"
	"github.com/farcloser/grammarify/internal/types"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the Telegram bot (requires " + config.TokenEnv + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional YAML configuration file",
				Value:   "grammarify.yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			// Both were validated by config.Load.
			level, _ := config.ParseLogLevel(cfg.LogLevel)
			dialect, _ := types.ParseDialect(cfg.Dialect)

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			checker := grammarify.NewChecker(
				grammarly.New(grammarlyOptions(cfg, dialect)...),
				grammarify.Options{
					IgnoredTitlePrefixes: cfg.Filter.IgnoredTitlePrefixes,
					ReportedImpact:       cfg.Filter.ReportedImpact,
					ExcludedGroups:       cfg.Filter.ExcludedGroups,
				},
			)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var handler *bot.Handler

			client, err := telegram.New(ctx, cfg.Token, func(ctx context.Context, msg *bot.Message) {
				handler.Handle(ctx, msg)
			})
			if err != nil {
				return err
			}

			handler = bot.NewHandler(checker, client,
				bot.WithLogger(logger),
				bot.WithUsername(client.Username()),
				bot.WithMaxConcurrent(int64(cfg.MaxConcurrent)),
			)

			logger.Info("bot started", "username", client.Username(), "dialect", dialect.String())

			client.Start(ctx)

			logger.Info("bot stopped")

			return nil
		},
	}
}

func grammarlyOptions(cfg *config.Config, dialect types.Dialect) []grammarly.Option {
	opts := []grammarly.Option{grammarly.WithDialect(dialect)}

	if cfg.Grammarly.BaseURL != "" {
		opts = append(opts, grammarly.WithBaseURL(cfg.Grammarly.BaseURL))
	}

	if cfg.Grammarly.SocketURL != "" {
		opts = append(opts, grammarly.WithSocketURL(cfg.Grammarly.SocketURL))
	}

	return opts
}
