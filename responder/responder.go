// Package responder implements a keyword-driven conversational responder.
//
// A message is scanned for configured keywords. When any are found the reply
// interleaves the echoed, pronoun-swapped text around each keyword with a
// canned response for it; otherwise a generic reply is chosen.
package responder

import (
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/zeozeozeo/nikos/config"
)

// Responder answers messages using a loaded configuration. It is not safe for
// concurrent use.
type Responder struct {
	cfg     *config.Config
	locator *Locator
	swapper *Swapper
	rng     RNG
}

// New creates a Responder over cfg. A nil rng selects the time-seeded process
// default.
func New(cfg *config.Config, rng RNG) *Responder {
	if rng == nil {
		rng = defaultRng
	}
	return &Responder{
		cfg:     cfg,
		locator: NewLocator(cfg.Words()),
		swapper: NewSwapper(cfg.Swaps),
		rng:     rng,
	}
}

// Locate finds the configured keywords in message.
func (r *Responder) Locate(message string) []Location {
	return r.locator.Locate(message)
}

// Generic answers message with the configured generic responses.
func (r *Responder) Generic(message string) string {
	return Generic(r.cfg.GenericResponses, message, r.rng)
}

// Respond builds the reply for one user message. The reply is not
// capitalized; see Capitalize.
func (r *Responder) Respond(message string) string {
	locations := r.Locate(message)
	if len(locations) == 0 {
		slog.Debug("no keyword matched, using generic reply")
		return r.Generic(message)
	}
	slog.Debug("keywords matched", slog.Int("count", len(locations)))
	return r.Build(message, locations)
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
