package chat_test

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/zeozeozeo/nikos/chat"
	"github.com/zeozeozeo/nikos/config"
	"github.com/zeozeozeo/nikos/responder"
)

type mockRNG struct {
	values []int
	index  int
}

func (m *mockRNG) Intn(n int) int {
	if m.index >= len(m.values) {
		panic(fmt.Sprintf("mockRNG exhausted, needed value for n=%d", n))
	}
	val := m.values[m.index]
	m.index++
	return val % n
}

func testResponder(rng responder.RNG) *responder.Responder {
	cfg := &config.Config{
		Keywords: []config.Keyword{
			{Word: "HELLO", Responses: []string{"hi there"}},
			{Word: "mother", Responses: []string{"tell me more about your family."}},
		},
		Swaps:            []config.Swap{{From: "MY", To: "YOUR"}},
		GenericResponses: []string{"tell me more about how that makes you feel"},
	}
	return responder.New(cfg, rng)
}

func runSession(t *testing.T, input string, rng *mockRNG, width int) string {
	t.Helper()
	var out bytes.Buffer
	s := chat.NewSession("NikosGPT", testResponder(rng), chat.NewScannerConsole(strings.NewReader(input), &out, chat.Prompt))
	s.SetWidth(width)
	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestSessionTranscript(t *testing.T) {
	t.Parallel()
	got := runSession(t, "hello friend\nbye\n", &mockRNG{values: []int{0}}, 0)
	want := "NikosGPT: Hello, I am NikosGPT, an AI chatbot. How can I help you today?\n" +
		"(Type bye to finish conversation)\n" +
		"You: NikosGPT: Hi there  FRIEND\n" +
		"You: NikosGPT: Have a nice day!!! :-)\n"
	if got != want {
		t.Errorf("transcript =\n%q\nwant\n%q", got, want)
	}
}

func TestSessionByeEndsWithoutReply(t *testing.T) {
	t.Parallel()
	got := runSession(t, "hello, goodBYE\nmy mother\n", &mockRNG{}, 0)
	if strings.Contains(got, responder.GreetingReply) || strings.Contains(got, "hi there") {
		t.Errorf("farewell line produced a reply:\n%s", got)
	}
	if strings.Contains(got, "family") {
		t.Errorf("session kept reading after the farewell:\n%s", got)
	}
	if !strings.HasSuffix(got, "NikosGPT: Have a nice day!!! :-)\n") {
		t.Errorf("missing farewell:\n%s", got)
	}
}

func TestSessionEndOfInput(t *testing.T) {
	t.Parallel()
	got := runSession(t, "my mother\nwhat a lovely day", &mockRNG{values: []int{0, 0}}, 0)
	for _, want := range []string{
		"NikosGPT: YOUR tell me more about your family. \n",
		"NikosGPT: Tell me more about how that makes you feel\n",
		"NikosGPT: Have a nice day!!! :-)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("transcript is missing %q:\n%s", want, got)
		}
	}
}

func TestSessionWrapsReplies(t *testing.T) {
	t.Parallel()
	input := "what a lovely day\n"
	plain := runSession(t, input, &mockRNG{values: []int{0}}, 0)
	wrapped := runSession(t, input, &mockRNG{values: []int{0}}, 20)
	if plain == wrapped {
		t.Fatal("expected wrapping to change the transcript")
	}
	if !reflect.DeepEqual(strings.Fields(plain), strings.Fields(wrapped)) {
		t.Errorf("wrapping changed the words:\n%s\nvs\n%s", plain, wrapped)
	}
}

type failingConsole struct {
	bytes.Buffer
}

var errBroken = errors.New("broken pipe")

func (c *failingConsole) ReadLine() (string, error) {
	return "", errBroken
}

func TestSessionReadError(t *testing.T) {
	t.Parallel()
	s := chat.NewSession("NikosGPT", testResponder(&mockRNG{}), &failingConsole{})
	if err := s.Run(); !errors.Is(err, errBroken) {
		t.Errorf("expected read error to propagate, got %v", err)
	}
}

func TestIsFarewell(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line string
		want bool
	}{
		{"bye", true},
		{"ok BYE then", true},
		{"goodbye", true},
		{"Byelorussia", true},
		{"by the way", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := chat.IsFarewell(tt.line); got != tt.want {
			t.Errorf("IsFarewell(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
