package grammarify

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/farcloser/grammarify/internal/types"
)

/*
Usage:

checker := grammarify.NewChecker(grammarly.New(), grammarify.DefaultOptions())
report, found, err := checker.Check(ctx, "This is very unique.")
if found {
    fmt.Println(report)
}

// Full pipeline state
outcome, err := checker.Inspect(ctx, text)
for _, issue := range outcome.Issues {
    fmt.Println(issue.Title, issue.HighlightText)
}
*/

// ErrNoResult is returned when the analyzer reports success without a result.
var ErrNoResult = errors.New("analyzer returned no result")

// Options configures which alerts are reported.
type Options struct {
	// Alerts whose title starts with any of these are dropped entirely,
	// before issue selection and before correction.
	IgnoredTitlePrefixes []string

	// Only alerts with this impact are reported.
	ReportedImpact string

	// Alerts in these groups are never reported (they still feed the correction).
	ExcludedGroups []string
}

// DefaultOptions returns the stock reporting rules.
func DefaultOptions() Options {
	return Options{
		IgnoredTitlePrefixes: []string{"Capitalization"},
		ReportedImpact:       "critical",
		ExcludedGroups:       []string{"Style", "Punctuation"},
	}
}

func applyDefaults(opts *Options) {
	defaults := DefaultOptions()

	if opts.IgnoredTitlePrefixes == nil {
		opts.IgnoredTitlePrefixes = defaults.IgnoredTitlePrefixes
	}

	if opts.ReportedImpact == "" {
		opts.ReportedImpact = defaults.ReportedImpact
	}

	if opts.ExcludedGroups == nil {
		opts.ExcludedGroups = defaults.ExcludedGroups
	}
}

// Filter returns a new slice without the alerts whose title carries an ignored prefix.
// The input is left untouched.
func Filter(alerts []types.Alert, opts Options) []types.Alert {
	applyDefaults(&opts)

	kept := make([]types.Alert, 0, len(alerts))

	for _, alert := range alerts {
		if hasAnyPrefix(alert.Title, opts.IgnoredTitlePrefixes) {
			continue
		}

		kept = append(kept, alert)
	}

	return kept
}

// Issues selects the reportable alerts: matching impact, outside the excluded groups.
func Issues(alerts []types.Alert, opts Options) []types.Alert {
	applyDefaults(&opts)

	issues := make([]types.Alert, 0, len(alerts))

	for _, alert := range alerts {
		if alert.Impact != opts.ReportedImpact {
			continue
		}

		if slices.Contains(opts.ExcludedGroups, alert.Group) {
			continue
		}

		issues = append(issues, alert)
	}

	return issues
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

// Checker runs text through an analyzer and turns the result into a report.
type Checker struct {
	analyzer types.Analyzer
	opts     Options
}

// NewChecker returns a Checker. Zero option fields take their defaults.
func NewChecker(analyzer types.Analyzer, opts Options) *Checker {
	applyDefaults(&opts)

	return &Checker{
		analyzer: analyzer,
		opts:     opts,
	}
}

// Inspect analyses text and returns every stage of the pipeline.
// Analyzer failures are returned as is, wrapped.
func (c *Checker) Inspect(ctx context.Context, text string) (*types.Outcome, error) {
	result, err := c.analyzer.Analyse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analysing text: %w", err)
	}

	if result == nil {
		return nil, fmt.Errorf("analysing text: %w", ErrNoResult)
	}

	outcome := &types.Outcome{
		Result: result,
		Kept:   Filter(result.Alerts, c.opts),
	}

	outcome.Issues = Issues(outcome.Kept, c.opts)
	original := result.Original
	if original == "" {
		original = text
	}

	outcome.Corrected = Correct(original, outcome.Kept)

	if len(outcome.Issues) > 0 {
		outcome.Report = FormatReport(outcome.Issues, outcome.Corrected)
	}

	return outcome, nil
}

// Check analyses text and returns the formatted report.
// found is false when nothing is worth reporting.
func (c *Checker) Check(ctx context.Context, text string) (report string, found bool, err error) {
	outcome, err := c.Inspect(ctx, text)
	if err != nil {
		return "", false, err
	}

	return outcome.Report, outcome.Report != "", nil
}
