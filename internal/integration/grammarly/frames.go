//nolint:tagliatelle
package grammarly

import "github.com/farcloser/grammarify/internal/types"

const (
	actionStart    = "start"
	actionSubmitOT = "submit_ot"
	actionAlert    = "alert"
	actionRemove   = "remove"
	actionFinished = "finished"
	actionError    = "error"
)

// startFrame opens a checking session.
type startFrame struct {
	Type            string   `json:"type"`  // initial
	Token           *string  `json:"token"` // always null for anonymous sessions
	DocID           string   `json:"docid"`
	Client          string   `json:"client"`
	ProtocolVersion string   `json:"protocolVersion"`
	ClientSupports  []string `json:"clientSupports"`
	Dialect         string   `json:"dialect"`
	ClientVersion   string   `json:"clientVersion"`
	ExtDomain       string   `json:"extDomain"`
	Action          string   `json:"action"`
	ID              int      `json:"id"`
}

// submitFrame carries the document as a single operational-transform insert.
type submitFrame struct {
	Ch     []string `json:"ch"` // "+0:0:<text>:0"
	Rev    int      `json:"rev"`
	Action string   `json:"action"`
	ID     int      `json:"id"`
}

// inboundFrame is the union of the frames the service sends back.
// Only the fields we consume are decoded.
type inboundFrame struct {
	Action string `json:"action"`
	ID     int    `json:"id"`

	// alert
	Title         string   `json:"title"`
	Group         string   `json:"group"`
	Impact        string   `json:"impact"`
	Category      string   `json:"category"`
	Point         string   `json:"point"`
	Explanation   string   `json:"explanation"`
	HighlightText string   `json:"highlightText"`
	Replacements  []string `json:"replacements"`
	Begin         int      `json:"begin"`
	End           int      `json:"end"`
	Hidden        bool     `json:"hidden"`

	// finished
	Score        int     `json:"score"`
	GeneralScore float64 `json:"generalScore"`

	// error
	Error    string `json:"error"`
	Severity string `json:"severity"`
}

func (f *inboundFrame) toAlert() types.Alert {
	return types.Alert{
		ID:            f.ID,
		Title:         f.Title,
		Group:         f.Group,
		Impact:        f.Impact,
		Category:      f.Category,
		Point:         f.Point,
		Explanation:   f.Explanation,
		HighlightText: f.HighlightText,
		Replacements:  f.Replacements,
		Hidden:        f.Hidden,
		Begin:         f.Begin,
		End:           f.End,
	}
}
