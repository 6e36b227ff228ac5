package grammarify

import (
	"cmp"
	"slices"
	"unicode/utf16"

	"github.com/farcloser/grammarify/internal/types"
)

// Correct applies the first replacement of every alert to the original text.
// Offsets are UTF-16 code units. Alerts are applied right to left so earlier offsets stay valid;
// alerts without replacements, with a range outside the text, or overlapping an already applied
// range are skipped. An insertion at the left edge of an applied range lands before it; a second
// insertion at the same point is skipped.
func Correct(original string, alerts []types.Alert) string {
	if len(alerts) == 0 {
		return original
	}

	ordered := slices.Clone(alerts)
	slices.SortStableFunc(ordered, func(a, b types.Alert) int {
		if c := cmp.Compare(b.Begin, a.Begin); c != 0 {
			return c
		}

		return cmp.Compare(b.End, a.End)
	})

	units := utf16.Encode([]rune(original))
	// Left boundary of the leftmost applied edit.
	floor := len(units) + 1
	// Whether an insertion already sits at floor.
	inserted := false

	for _, alert := range ordered {
		if len(alert.Replacements) == 0 {
			continue
		}

		if alert.Begin < 0 || alert.End < alert.Begin || alert.End > len(units) {
			continue
		}

		insertion := alert.Begin == alert.End
		if alert.End > floor || (insertion && alert.Begin == floor && inserted) {
			continue
		}

		replacement := utf16.Encode([]rune(alert.Replacements[0]))
		units = slices.Concat(units[:alert.Begin], replacement, units[alert.End:])
		floor = alert.Begin
		inserted = insertion
	}

	return string(utf16.Decode(units))
}
