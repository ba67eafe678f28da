package stats

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// LongRules parses 64-bit signed integers; the maximum is numeric
func LongRules() Rules[int64] {
	return Rules[int64]{
		Kind: Long,
		Parse: func(token string) (int64, error) {
			return strconv.ParseInt(token, 10, 64)
		},
		Exceeds: func(candidate, current int64) bool {
			return candidate > current
		},
		Empty: func() (int64, error) {
			return 0, ErrEmptyCollection
		},
		Format: func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
	}
}

// LineRules accepts every line verbatim; the maximum is the longest line
func LineRules() Rules[string] {
	return textRules(Line)
}

// WordRules accepts every word verbatim; the maximum is the longest word
func WordRules() Rules[string] {
	return textRules(Word)
}

func textRules(kind Kind) Rules[string] {
	return Rules[string]{
		Kind: kind,
		Parse: func(token string) (string, error) {
			return token, nil
		},
		Exceeds: func(candidate, current string) bool {
			return utf8.RuneCountInString(candidate) > utf8.RuneCountInString(current)
		},
		Empty: func() (string, error) {
			return "", nil
		},
		Format: func(v string) string {
			return v
		},
	}
}

// New builds the collection matching kind
func New(kind Kind, src Source, diag io.Writer) (Dataset, error) {
	switch kind {
	case Long:
		return NewCollection(LongRules(), src, diag), nil
	case Line:
		return NewCollection(LineRules(), src, diag), nil
	case Word:
		return NewCollection(WordRules(), src, diag), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}
