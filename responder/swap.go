package responder

import (
	"github.com/zeozeozeo/nikos/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Swapper rewrites echoed text: it upper-cases it, substitutes swap-table
// words and toggles sentence terminators.
type Swapper struct {
	swaps   []config.Swap
	locator *Locator
	upper   cases.Caser
}

// NewSwapper builds a Swapper over swaps, applied in slice order.
func NewSwapper(swaps []config.Swap) *Swapper {
	keys := make([]string, len(swaps))
	for i, s := range swaps {
		keys[i] = s.From
	}
	return &Swapper{
		swaps:   swaps,
		locator: NewLocator(keys),
		upper:   cases.Upper(language.Und),
	}
}

// Swap transforms text. Only keys present in the original text are applied,
// each once and in table order, against the progressively rewritten text, so a
// later key can rewrite the output of an earlier one. Replacement values are
// inserted verbatim.
func (s *Swapper) Swap(text string) string {
	present := make([]bool, len(s.swaps))
	for _, loc := range s.locator.Locate(text) {
		present[loc.Keyword] = true
	}

	out := s.upper.String(text)
	for i, ok := range present {
		if !ok {
			continue
		}
		out = s.locator.patterns[i].ReplaceAllLiteralString(out, s.swaps[i].To)
	}
	return swapTerminators(out)
}
