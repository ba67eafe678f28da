package stats

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned by ParseKind for anything but long, word or line
	ErrUnknownKind = errors.New("unknown data type")

	// ErrUnknownMode is returned by ParseMode for anything but natural or bycount
	ErrUnknownMode = errors.New("unknown sorting type")
)

// Kind selects how raw tokens are parsed, compared and measured
type Kind int

const (
	Word Kind = iota
	Line
	Long
)

// String returns the command line spelling of the kind
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Line:
		return "line"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive name onto a Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "word":
		return Word, nil
	case "line":
		return Line, nil
	case "long":
		return Long, nil
	}
	return Word, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Mode selects the ordering used by the sorted report
type Mode int

const (
	// Natural orders numbers ascending and text by code point
	Natural Mode = iota
	// ByCount orders distinct values by ascending frequency, ties in natural order
	ByCount
)

func (m Mode) String() string {
	switch m {
	case Natural:
		return "natural"
	case ByCount:
		return "bycount"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive name onto a Mode
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "natural":
		return Natural, nil
	case "bycount":
		return ByCount, nil
	}
	return Natural, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
