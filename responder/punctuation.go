package responder

import (
	"fmt"
	"regexp"
)

var terminatorPattern = regexp.MustCompile(`[.?]`)

// SwapPunctuation toggles a sentence terminator: '.' becomes '?' and '?'
// becomes '.'. Passing any other byte is a caller bug.
func SwapPunctuation(c byte) byte {
	switch c {
	case '.':
		return '?'
	case '?':
		return '.'
	}
	panic(fmt.Sprintf("responder: cannot swap punctuation %q", c))
}

// swapTerminators toggles every '.' and '?' in s in a single pass.
func swapTerminators(s string) string {
	return terminatorPattern.ReplaceAllStringFunc(s, func(m string) string {
		return string(SwapPunctuation(m[0]))
	})
}
