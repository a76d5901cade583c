package responder

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
)

// Build composes a reply for message from the locations found by Locate. The
// text before each match is echoed through the Swapper and followed by a
// random response for the matched keyword; whatever follows the last match is
// echoed at the end. The first character is not capitalized.
//
// Offsets are relative to shrinking windows, so they are reconciled here by
// treating each one as an end position in the original message: the preamble
// runs from the cursor up to the offset (empty when the cursor is already
// past it) and the cursor then jumps to offset+len(keyword), which may move it
// backwards.
func (r *Responder) Build(message string, locations []Location) string {
	sorted := slices.Clone(locations)
	slices.SortStableFunc(sorted, func(a, b Location) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	var b strings.Builder
	cursor := 0
	for _, loc := range sorted {
		kw := r.cfg.Keywords[loc.Keyword]
		end := min(loc.Offset, len(message))

		var preamble string
		if end > cursor {
			preamble = message[cursor:end]
		}

		b.WriteString(r.swapper.Swap(preamble))
		b.WriteString(pick(kw.Responses, r.rng))
		b.WriteByte(' ')

		cursor = min(end+len(kw.Word), len(message))
	}
	b.WriteString(r.swapper.Swap(message[cursor:]))

	slog.Debug("built keyword reply", slog.Int("matches", len(sorted)), slog.Int("len", b.Len()))
	return b.String()
}
