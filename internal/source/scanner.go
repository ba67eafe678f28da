package source

import (
	"bufio"
	"io"
)

// MaxTokenSize bounds a single line or word
const MaxTokenSize = 1024 * 1024

// Split selects how the input is cut into tokens
type Split int

const (
	// Words splits on Unicode whitespace
	Words Split = iota
	// Lines splits on newlines, dropping a trailing \r
	Lines
)

// Scanner yields tokens with one token of lookahead so callers can ask
// whether input remains before consuming it
type Scanner struct {
	sc     *bufio.Scanner
	token  string
	peeked bool
	done   bool
}

// NewScanner creates a Scanner over r
func NewScanner(r io.Reader, split Split) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	if split == Lines {
		sc.Split(bufio.ScanLines)
	} else {
		sc.Split(bufio.ScanWords)
	}
	return &Scanner{sc: sc}
}

// HasNext reports whether another token is available, blocking on the reader if needed
func (s *Scanner) HasNext() bool {
	if s.peeked {
		return true
	}
	if s.done {
		return false
	}
	if !s.sc.Scan() {
		s.done = true
		return false
	}
	s.token = s.sc.Text()
	s.peeked = true
	return true
}

// Next consumes and returns the next token, or "" when the input is exhausted
func (s *Scanner) Next() string {
	if !s.HasNext() {
		return ""
	}
	s.peeked = false
	return s.token
}

// Err returns the first non-EOF read error
func (s *Scanner) Err() error {
	return s.sc.Err()
}
