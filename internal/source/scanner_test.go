package source

import (
	"errors"
	"strings"
	"testing"
)

func collect(s *Scanner) []string {
	var tokens []string
	for s.HasNext() {
		tokens = append(tokens, s.Next())
	}
	return tokens
}

func TestScanner_Words(t *testing.T) {
	s := NewScanner(strings.NewReader("  a b\tc\n\nd  "), Words)

	got := collect(s)
	expected := []string{"a", "b", "c", "d"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestScanner_Lines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty input", "", nil},
		{"Single newline", "\n", []string{""}},
		{"No trailing newline", "a b\nc", []string{"a b", "c"}},
		{"Trailing newline", "a b\nc\n", []string{"a b", "c"}},
		{"CRLF", "x\r\ny\r\n", []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewScanner(strings.NewReader(tt.input), Lines))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %q, got %q", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Token %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestScanner_HasNextDoesNotConsume(t *testing.T) {
	s := NewScanner(strings.NewReader("one two"), Words)

	for i := 0; i < 3; i++ {
		if !s.HasNext() {
			t.Fatal("Expected a token")
		}
	}
	if got := s.Next(); got != "one" {
		t.Errorf("Expected one, got %q", got)
	}
	if got := s.Next(); got != "two" {
		t.Errorf("Expected two, got %q", got)
	}
	if s.HasNext() {
		t.Error("Expected input to be exhausted")
	}
	if got := s.Next(); got != "" {
		t.Errorf("Expected empty token after end, got %q", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestScanner_ReadError(t *testing.T) {
	s := NewScanner(failingReader{}, Words)
	if s.HasNext() {
		t.Fatal("Expected no token from failing reader")
	}
	if s.Err() == nil {
		t.Error("Expected read error to be reported")
	}
}
