// Package output provides shared outcome serialization for grammarify structured output.
package output

import (
	"github.com/farcloser/grammarify/internal/types"
)

// OutcomeToMap converts a check outcome into the canonical map structure
// used for JSON and debug serialization.
func OutcomeToMap(outcome *types.Outcome) map[string]any {
	meta := map[string]any{
		"summary": map[string]any{
			"alert_count":    len(outcome.Result.Alerts),
			"kept_count":     len(outcome.Kept),
			"issue_count":    len(outcome.Issues),
			"score":          outcome.Result.Score,
			"general_score":  outcome.Result.GeneralScore,
			"report_created": outcome.Report != "",
		},
		"original":  outcome.Result.Original,
		"corrected": outcome.Corrected,
	}

	meta["alerts"] = AlertsToList(outcome.Result.Alerts)
	meta["issues"] = AlertsToList(outcome.Issues)

	return meta
}

// AlertsToList converts alerts to a list of maps.
func AlertsToList(alerts []types.Alert) []any {
	list := make([]any, 0, len(alerts))
	for _, alert := range alerts {
		list = append(list, AlertToMap(alert))
	}

	return list
}

// AlertToMap converts a single alert to a map.
func AlertToMap(alert types.Alert) map[string]any {
	replacements := make([]any, 0, len(alert.Replacements))
	for _, r := range alert.Replacements {
		replacements = append(replacements, r)
	}

	meta := map[string]any{
		"id":             alert.ID,
		"title":          alert.Title,
		"group":          alert.Group,
		"impact":         alert.Impact,
		"highlight_text": alert.HighlightText,
		"replacements":   replacements,
		"begin":          alert.Begin,
		"end":            alert.End,
	}

	if alert.Category != "" {
		meta["category"] = alert.Category
	}

	if alert.Point != "" {
		meta["point"] = alert.Point
	}

	if alert.Hidden {
		meta["hidden"] = true
	}

	return meta
}
