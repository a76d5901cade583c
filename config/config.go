// Package config loads the keyword/swap/generic-response tables that drive the
// responder.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hjson/hjson-go/v4"
)

var (
	// ErrMalformed is returned when the configuration document does not parse.
	ErrMalformed = errors.New("malformed configuration")

	// ErrInvalid is returned when the document parses but its tables are
	// missing, empty or inconsistent.
	ErrInvalid = errors.New("invalid configuration")
)

// Keyword is a trigger word and the candidate responses it may produce.
type Keyword struct {
	Word      string
	Responses []string
}

// Swap is a whole-word substitution applied to echoed user text.
type Swap struct {
	From string
	To   string
}

// Config holds the loaded tables. Slices keep document order; the position of
// a keyword in Keywords is its index everywhere else.
type Config struct {
	Keywords         []Keyword
	Swaps            []Swap
	GenericResponses []string
}

// Words returns the keyword list in index order.
func (c *Config) Words() []string {
	words := make([]string, len(c.Keywords))
	for i, kw := range c.Keywords {
		words[i] = kw.Word
	}
	return words
}

// document mirrors the on-disk layout. Objects are decoded into ordered maps
// because keyword order is significant.
type document struct {
	KeywordResponses    *hjson.OrderedMap `json:"keyword-responses"`
	ResponsesPerKeyword []int             `json:"responsesPerKeyword"`
	Swaps               *hjson.OrderedMap `json:"swaps"`
	GenericResponses    []string          `json:"generic-responses"`
}

// Load reads and validates the configuration document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info(
		"config loaded",
		slog.String("path", path),
		slog.Int("keywords", len(cfg.Keywords)),
		slog.Int("swaps", len(cfg.Swaps)),
		slog.Int("generic", len(cfg.GenericResponses)),
	)
	return cfg, nil
}

// Parse decodes a configuration document. JSON is accepted as is; Hjson
// extensions such as comments are allowed too.
func Parse(data []byte) (*Config, error) {
	var doc document
	if err := hjson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc.config()
}

func (d *document) config() (*Config, error) {
	switch {
	case d.KeywordResponses == nil:
		return nil, invalid("keyword-responses is missing")
	case d.KeywordResponses.Len() == 0:
		return nil, invalid("keyword-responses is empty")
	case d.ResponsesPerKeyword == nil:
		return nil, invalid("responsesPerKeyword is missing")
	case d.Swaps == nil:
		return nil, invalid("swaps is missing")
	case len(d.GenericResponses) == 0:
		return nil, invalid("generic-responses is missing or empty")
	}

	if len(d.ResponsesPerKeyword) != d.KeywordResponses.Len() {
		return nil, invalid("responsesPerKeyword has %d entries for %d keywords",
			len(d.ResponsesPerKeyword), d.KeywordResponses.Len())
	}

	cfg := &Config{
		Keywords:         make([]Keyword, 0, d.KeywordResponses.Len()),
		Swaps:            make([]Swap, 0, d.Swaps.Len()),
		GenericResponses: d.GenericResponses,
	}

	for i, word := range d.KeywordResponses.Keys {
		if strings.TrimSpace(word) == "" {
			return nil, invalid("keyword %d is blank", i)
		}
		responses, err := stringList(d.KeywordResponses.Map[word])
		if err != nil {
			return nil, invalid("keyword %q: %v", word, err)
		}
		if len(responses) == 0 {
			return nil, invalid("keyword %q has no responses", word)
		}
		if n := d.ResponsesPerKeyword[i]; n != len(responses) {
			return nil, invalid("keyword %q declares %d responses but lists %d", word, n, len(responses))
		}
		cfg.Keywords = append(cfg.Keywords, Keyword{Word: word, Responses: responses})
	}

	for _, from := range d.Swaps.Keys {
		if strings.TrimSpace(from) == "" {
			return nil, invalid("swap key is blank")
		}
		to, ok := d.Swaps.Map[from].(string)
		if !ok {
			return nil, invalid("swap %q does not map to a string", from)
		}
		cfg.Swaps = append(cfg.Swaps, Swap{From: from, To: to})
	}

	return cfg, nil
}

func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("responses must be a list, got %T", v)
	}
	list := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("response %d is %T, not a string", i, item)
		}
		list = append(list, s)
	}
	return list, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
