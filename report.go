package grammarify

import (
	"html"
	"strings"

	"github.com/farcloser/grammarify/internal/types"
)

const (
	bullet         = "• "
	replacementSep = "</b> or <b>"
	fixedHeader    = "\n<i>Fixed (I hope)</i>:\n"
	quoteOpen      = "<blockquote expandable>"
	quoteClose     = "</blockquote>"
)

// FormatIssue renders one alert as a Telegram HTML bullet line.
func FormatIssue(alert types.Alert) string {
	var line strings.Builder

	line.WriteString(bullet)
	line.WriteString(html.EscapeString(alert.Title))
	line.WriteString(": <b>")
	line.WriteString(html.EscapeString(alert.HighlightText))
	line.WriteString("</b>")

	if len(alert.Replacements) > 0 {
		escaped := make([]string, 0, len(alert.Replacements))
		for _, replacement := range alert.Replacements {
			escaped = append(escaped, html.EscapeString(replacement))
		}

		line.WriteString(" -> <b>")
		line.WriteString(strings.Join(escaped, replacementSep))
		line.WriteString("</b>")
	}

	return line.String()
}

// FormatReport renders the issue list followed by the corrected text in an expandable quote.
func FormatReport(issues []types.Alert, corrected string) string {
	lines := make([]string, 0, len(issues)+1)

	for _, issue := range issues {
		lines = append(lines, FormatIssue(issue))
	}

	lines = append(lines, fixedHeader+quoteOpen+html.EscapeString(corrected)+quoteClose)

	return strings.Join(lines, "\n")
}
