// Package chat runs the interactive conversation loop around a responder.
package chat

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudflare/ahocorasick"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zeozeozeo/nikos/responder"
)

// Prompt is printed before every user line.
const Prompt = "You: "

const (
	greetingFormat = "Hello, I am %s, an AI chatbot. How can I help you today?"
	instructions   = "(Type bye to finish conversation)"
	farewell       = "Have a nice day!!! :-)"
)

var farewellMatcher = ahocorasick.NewStringMatcher([]string{"BYE"})

// IsFarewell reports whether line ends the conversation: "bye" anywhere, in
// any case, including inside other words.
func IsFarewell(line string) bool {
	return farewellMatcher.Contains([]byte(strings.ToUpper(line)))
}

// Session is one conversation between a user and the responder.
type Session struct {
	name      string
	responder *responder.Responder
	console   Console
	width     int
	turns     int
	logger    *slog.Logger
}

// NewSession creates a session that speaks as name.
func NewSession(name string, r *responder.Responder, console Console) *Session {
	return &Session{
		name:      name,
		responder: r,
		console:   console,
		logger:    slog.With(slog.String("session", uuid.NewString())),
	}
}

// SetWidth wraps replies at w columns. 0 disables wrapping.
func (s *Session) SetWidth(w int) {
	s.width = w
}

// Run greets the user and answers lines until a farewell or the end of input.
func (s *Session) Run() error {
	started := time.Now()
	s.logger.Info("session started")
	defer func() {
		s.logger.Info(
			"session ended",
			slog.Int("turns", s.turns),
			slog.String("duration", strings.TrimSpace(humanize.RelTime(started, time.Now(), "", ""))),
		)
	}()

	if err := s.say(fmt.Sprintf(greetingFormat, s.name)); err != nil {
		return err
	}
	if _, err := io.WriteString(s.console, instructions+"\n"); err != nil {
		return fmt.Errorf("failed to write instructions: %w", err)
	}

	for {
		line, err := s.console.ReadLine()
		if err != nil {
			// io.EOF when the user presses ctrl+d or the input pipe closes
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read user line: %w", err)
			}
			break
		}
		if IsFarewell(line) {
			break
		}

		s.turns++
		reply := responder.Capitalize(s.responder.Respond(line))
		s.logger.Debug("turn", slog.Int("turn", s.turns), slog.String("input", line), slog.String("reply", reply))
		if err := s.say(reply); err != nil {
			return err
		}
	}

	return s.say(farewell)
}

func (s *Session) say(text string) error {
	line := s.name + ": " + text
	if s.width > 0 {
		line = wordwrap.String(line, s.width)
	}
	if _, err := io.WriteString(s.console, line+"\n"); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
