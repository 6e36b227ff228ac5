package grammarify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/grammarify"
	"github.com/farcloser/grammarify/internal/types"
)

type fakeAnalyzer struct {
	result *types.Result
	err    error
	texts  []string
}

func (f *fakeAnalyzer) Analyse(_ context.Context, text string) (*types.Result, error) {
	f.texts = append(f.texts, text)

	if f.err != nil {
		return nil, f.err
	}

	return f.result, nil
}

func critical(title, group, highlight string, begin int, replacements ...string) types.Alert {
	return types.Alert{
		Title:         title,
		Group:         group,
		Impact:        "critical",
		HighlightText: highlight,
		Replacements:  replacements,
		Begin:         begin,
		End:           begin + len(highlight),
	}
}

func TestCheckNoAlerts(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &types.Result{Original: "All good here."}}
	checker := grammarify.NewChecker(analyzer, grammarify.DefaultOptions())

	report, found, err := checker.Check(context.Background(), "All good here.")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, report)
	assert.Equal(t, []string{"All good here."}, analyzer.texts)
}

func TestCheckOnlyCapitalizationAlerts(t *testing.T) {
	text := "i went home."
	analyzer := &fakeAnalyzer{result: &types.Result{
		Original: text,
		Alerts: []types.Alert{
			critical("Capitalization", "Grammar", "i", 0, "I"),
			critical("Capitalization at sentence start", "Grammar", "i", 0, "I"),
		},
	}}

	outcome, err := grammarify.NewChecker(analyzer, grammarify.Options{}).Inspect(context.Background(), text)
	require.NoError(t, err)
	assert.Empty(t, outcome.Report)
	assert.Empty(t, outcome.Kept)
	assert.Empty(t, outcome.Issues)
	// Ignored alerts never feed the correction either.
	assert.Equal(t, text, outcome.Corrected)
}

func TestCheckExcludesNonCriticalImpact(t *testing.T) {
	alert := critical("Misspelled word", "Grammar", "teh", 0, "the")
	alert.Impact = "advanced"

	analyzer := &fakeAnalyzer{result: &types.Result{Original: "teh cat", Alerts: []types.Alert{alert}}}

	report, found, err := grammarify.NewChecker(analyzer, grammarify.DefaultOptions()).
		Check(context.Background(), "teh cat")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, report)
}

func TestCheckExcludesStyleAndPunctuation(t *testing.T) {
	for _, group := range []string{"Style", "Punctuation"} {
		t.Run(group, func(t *testing.T) {
			analyzer := &fakeAnalyzer{result: &types.Result{
				Original: "hello , world",
				Alerts:   []types.Alert{critical("Something", group, " ,", 5, ",")},
			}}

			_, found, err := grammarify.NewChecker(analyzer, grammarify.DefaultOptions()).
				Check(context.Background(), "hello , world")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestCheckReport(t *testing.T) {
	text := "This is very unique & so on."
	analyzer := &fakeAnalyzer{result: &types.Result{
		Original: text,
		Alerts: []types.Alert{
			critical("Wordiness", "Clarity", "very unique", 8, "unique"),
			// Style alerts are not listed, but still applied to the corrected text.
			critical("Informal phrase", "Style", "so on", 22, "so forth"),
		},
	}}

	report, found, err := grammarify.NewChecker(analyzer, grammarify.DefaultOptions()).
		Check(context.Background(), text)
	require.NoError(t, err)
	require.True(t, found)

	expected := "• Wordiness: <b>very unique</b> -> <b>unique</b>\n" +
		"\n<i>Fixed (I hope)</i>:\n" +
		"<blockquote expandable>This is unique &amp; so forth.</blockquote>"
	assert.Equal(t, expected, report)
}

func TestCheckPropagatesAnalyzerFailure(t *testing.T) {
	boom := errors.New("connection reset")
	analyzer := &fakeAnalyzer{err: boom}

	report, found, err := grammarify.NewChecker(analyzer, grammarify.DefaultOptions()).
		Check(context.Background(), "anything")
	require.ErrorIs(t, err, boom)
	assert.False(t, found)
	assert.Empty(t, report)
}

func TestCheckMissingResult(t *testing.T) {
	analyzer := &fakeAnalyzer{}

	outcome, err := grammarify.NewChecker(analyzer, grammarify.DefaultOptions()).
		Inspect(context.Background(), "anything")
	require.ErrorIs(t, err, grammarify.ErrNoResult)
	assert.Nil(t, outcome)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	alerts := []types.Alert{
		critical("Capitalization", "Grammar", "i", 0, "I"),
		critical("Wordiness", "Clarity", "very unique", 2, "unique"),
	}
	original := append([]types.Alert(nil), alerts...)

	kept := grammarify.Filter(alerts, grammarify.DefaultOptions())

	if diff := cmp.Diff(original, alerts); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(alerts[1:], kept); diff != "" {
		t.Errorf("unexpected kept alerts (-want +got):\n%s", diff)
	}
}

func TestIssuesCustomOptions(t *testing.T) {
	alerts := []types.Alert{
		critical("Wordiness", "Clarity", "very unique", 0, "unique"),
		critical("Comma", "Punctuation", ",", 12),
	}

	// An explicit empty exclusion list reports every group.
	issues := grammarify.Issues(alerts, grammarify.Options{ExcludedGroups: []string{}})
	assert.Len(t, issues, 2)

	issues = grammarify.Issues(alerts, grammarify.Options{ReportedImpact: "advanced"})
	assert.Empty(t, issues)
}
