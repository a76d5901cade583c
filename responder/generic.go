package responder

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Fixed replies of the generic responder.
const (
	GreetingReply        = "Hello!! :-)"
	AcknowledgementReply = "Great!"
	ShortReply           = "Ok"
)

// substring match, not whole-word: "yesterday" and "know" both count
var yesNoMatcher = ahocorasick.NewStringMatcher([]string{"YES", "NO"})

// Generic answers a message that matched no keyword. Greetings, "ok" and
// yes/no messages get fixed replies; anything else gets a random entry of
// responses with its first character capitalized.
func Generic(responses []string, message string, rng RNG) string {
	upper := strings.ToUpper(message)
	switch {
	case strings.HasPrefix(upper, "HELLO"), strings.HasPrefix(upper, "HI"):
		return GreetingReply
	case strings.HasPrefix(upper, "OK"):
		return AcknowledgementReply
	case yesNoMatcher.Contains([]byte(upper)):
		return ShortReply
	}
	return Capitalize(pick(responses, rng))
}
