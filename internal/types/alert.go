package types

import "context"

// Alert is a single issue flagged by the grammar service.
type Alert struct {
	ID            int
	Title         string   // free text label, e.g. "Wordiness"
	Group         string   // e.g. "Style", "Punctuation", "Grammar"
	Impact        string   // e.g. "critical", "advanced"
	Category      string   // machine category, e.g. "Misspelled"
	Point         string   // rule identifier
	Explanation   string   // may contain service markup, not displayed
	HighlightText string   // the flagged substring
	Replacements  []string // ordered suggestions, possibly empty
	Hidden        bool

	// Offsets into the original text, in UTF-16 code units as reported by the service.
	Begin int
	End   int
}

// Result is the outcome of one analysis session.
type Result struct {
	Original string
	Alerts   []Alert

	// Summary figures from the closing frame, zero if the service did not send them.
	Score        int
	GeneralScore float64
}

// Outcome holds every intermediate value of a check.
type Outcome struct {
	Result    *Result
	Kept      []Alert // alerts surviving the title-prefix filter
	Issues    []Alert // reportable subset of Kept
	Corrected string
	Report    string // empty when there is nothing to report
}

// Analyzer submits text to a grammar service.
type Analyzer interface {
	Analyse(ctx context.Context, text string) (*Result, error)
}
