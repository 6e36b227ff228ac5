package grammarify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farcloser/grammarify"
	"github.com/farcloser/grammarify/internal/types"
)

func span(begin, end int, replacements ...string) types.Alert {
	return types.Alert{Begin: begin, End: end, Replacements: replacements}
}

func TestCorrect(t *testing.T) {
	cases := []struct {
		name     string
		original string
		alerts   []types.Alert
		want     string
	}{
		{
			name:     "no alerts",
			original: "Fine text.",
			want:     "Fine text.",
		},
		{
			name:     "applied regardless of order",
			original: "Their is a apple.",
			alerts:   []types.Alert{span(0, 5, "There"), span(9, 10, "an")},
			want:     "There is an apple.",
		},
		{
			name:     "unordered input",
			original: "Their is a apple.",
			alerts:   []types.Alert{span(9, 10, "an"), span(0, 5, "There")},
			want:     "There is an apple.",
		},
		{
			name:     "first replacement wins",
			original: "I has cats.",
			alerts:   []types.Alert{span(2, 5, "have", "had")},
			want:     "I have cats.",
		},
		{
			name:     "alert without replacement is skipped",
			original: "Because.",
			alerts:   []types.Alert{span(0, 8)},
			want:     "Because.",
		},
		{
			name:     "overlapping alert is skipped",
			original: "very very unique",
			alerts:   []types.Alert{span(5, 16, "unique"), span(0, 9, "really")},
			want:     "very unique",
		},
		{
			name:     "out of range alert is skipped",
			original: "short",
			alerts:   []types.Alert{span(3, 40, "x"), span(-1, 2, "y")},
			want:     "short",
		},
		{
			name:     "deletion",
			original: "the the cat",
			alerts:   []types.Alert{span(3, 7, "")},
			want:     "the cat",
		},
		{
			name:     "insertion at end",
			original: "No full stop",
			alerts:   []types.Alert{span(12, 12, ".")},
			want:     "No full stop.",
		},
		{
			name:     "insertion before a replacement at the same offset",
			original: "ab cd",
			alerts:   []types.Alert{span(2, 2, ","), span(2, 3, "X")},
			want:     "ab,Xcd",
		},
		{
			name:     "second insertion at the same offset is skipped",
			original: "ab cd",
			alerts:   []types.Alert{span(2, 2, ","), span(2, 2, ";")},
			want:     "ab, cd",
		},
		{
			name:     "adjacent replacements",
			original: "abcd",
			alerts:   []types.Alert{span(0, 2, "X"), span(2, 4, "Y")},
			want:     "XY",
		},
		{
			// 🙂 is two UTF-16 code units; offsets after it are shifted accordingly.
			name:     "utf-16 offsets",
			original: "🙂 teh café",
			alerts:   []types.Alert{span(3, 6, "the")},
			want:     "🙂 the café",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, grammarify.Correct(tc.original, tc.alerts))
		})
	}
}

func TestCorrectDoesNotReorderInput(t *testing.T) {
	alerts := []types.Alert{span(0, 1, "A"), span(2, 3, "B")}

	grammarify.Correct("a b", alerts)

	assert.Equal(t, 0, alerts[0].Begin)
	assert.Equal(t, 2, alerts[1].Begin)
}
