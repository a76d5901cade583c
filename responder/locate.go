package responder

import (
	"regexp"
	"strings"
)

// Location is one keyword occurrence.
//
// Offset is relative to the window the match was found in. The first match of
// a keyword is searched in the whole message; every further match of the same
// keyword is searched in the suffix that follows the previous match, and its
// offset counts from the start of that suffix.
type Location struct {
	Keyword int
	Offset  int
}

// Locator finds whole-word, case-insensitive keyword occurrences.
type Locator struct {
	patterns []*regexp.Regexp
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// NewLocator compiles a pattern per keyword. Index i of the result of Locate
// refers to keywords[i]. Blank keywords never match.
func NewLocator(keywords []string) *Locator {
	l := &Locator{patterns: make([]*regexp.Regexp, len(keywords))}
	for i, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		l.patterns[i] = wordPattern(kw)
	}
	return l
}

// Locate returns every occurrence of every keyword in message, grouped by
// keyword in list order.
func (l *Locator) Locate(message string) []Location {
	var locations []Location
	for i, re := range l.patterns {
		if re == nil {
			continue
		}
		window := message
		for {
			m := re.FindStringIndex(window)
			if m == nil {
				break
			}
			locations = append(locations, Location{Keyword: i, Offset: m[0]})
			window = window[m[1]:]
		}
	}
	return locations
}

// Locate is a one-shot Locator.
func Locate(message string, keywords []string) []Location {
	return NewLocator(keywords).Locate(message)
}
