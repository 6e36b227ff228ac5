//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/grammarify"
	"github.com/farcloser/grammarify/internal/integration/grammarly"
	"github.com/farcloser/grammarify/internal/types"
)

var (
	errCheckArgs = errors.New("expected exactly one argument: text or \"-\" for stdin")
	errEmptyText = errors.New("nothing to check")
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check a piece of text and print the suggestions",
		ArgsUsage: "<text | ->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dialect",
				Aliases: []string{"d"},
				Usage:   "English variant: american, british, canadian, australian",
				Value:   "american",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Print the Telegram HTML report instead of structured output",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Include every raw alert in output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errCheckArgs, cmd.NArg())
			}

			dialect, err := types.ParseDialect(cmd.String("dialect"))
			if err != nil {
				return err
			}

			// Reject an unknown printer before talking to the service.
			if !cmd.Bool("html") {
				if _, err = format.GetFormatter(cmd.String("format")); err != nil {
					return err
				}
			}

			text, err := readText(cmd.Args().First())
			if err != nil {
				return err
			}

			checker := grammarify.NewChecker(grammarly.New(grammarly.WithDialect(dialect)), grammarify.DefaultOptions())

			outcome, err := checker.Inspect(ctx, text)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if cmd.Bool("html") {
				return printHTML(os.Stdout, outcome)
			}

			return outputOutcome(cmd.String("format"), os.Stdout, text, outcome, cmd.Bool("debug"))
		},
	}
}

func readText(arg string) (string, error) {
	text := arg

	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyText
	}

	return text, nil
}
