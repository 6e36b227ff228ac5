//nolint:wrapcheck
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/grammarify/internal/output"
	"github.com/farcloser/grammarify/internal/types"
)

// Longest input excerpt used as the output object label.
const labelRunes = 40

func outputOutcome(formatName string, out io.Writer, text string, outcome *types.Outcome, debug bool) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	var meta map[string]any
	if debug {
		meta = output.OutcomeToMap(outcome)
	} else {
		meta = buildFriendlyOutput(outcome)
	}

	data := &format.Data{
		Object: label(text),
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, out)
}

// buildFriendlyOutput creates a user-friendly summary of the check.
func buildFriendlyOutput(outcome *types.Outcome) map[string]any {
	meta := map[string]any{
		"summary": fmt.Sprintf(
			"%d issues found (%d alerts, %d ignored)",
			len(outcome.Issues),
			len(outcome.Result.Alerts),
			len(outcome.Result.Alerts)-len(outcome.Kept),
		),
	}

	if len(outcome.Issues) > 0 {
		issues := make([]any, 0, len(outcome.Issues))

		for _, issue := range outcome.Issues {
			line := fmt.Sprintf("%s: %q", issue.Title, issue.HighlightText)
			if len(issue.Replacements) > 0 {
				line += " -> " + strings.Join(issue.Replacements, " | ")
			}

			issues = append(issues, line)
		}

		meta["issues"] = issues
	}

	// Reported alerts are a subset; the rest still shape the correction.
	if others := len(outcome.Kept) - len(outcome.Issues); others > 0 {
		meta["other_suggestions"] = others
	}

	if outcome.Corrected != outcome.Result.Original {
		meta["corrected"] = outcome.Corrected
	}

	return meta
}

func printHTML(out io.Writer, outcome *types.Outcome) error {
	if outcome.Report == "" {
		fmt.Fprintln(os.Stderr, "no issues found")

		return nil
	}

	_, err := fmt.Fprintln(out, outcome.Report)

	return err
}

func label(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= labelRunes {
		return text
	}

	return string([]rune(text)[:labelRunes]) + "…"
}
