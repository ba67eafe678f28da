package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/firefly/sorting-tool/internal/source"
	"github.com/firefly/sorting-tool/internal/stats"
)

// newDataset ingests input as kind, writing diagnostics to diag
func newDataset(t *testing.T, kind stats.Kind, input string, diag *bytes.Buffer) stats.Dataset {
	t.Helper()
	split := source.Words
	if kind == stats.Line {
		split = source.Lines
	}
	data, err := stats.New(kind, source.NewScanner(strings.NewReader(input), split), diag)
	if err != nil {
		t.Fatalf("Failed to create dataset: %v", err)
	}
	for data.HasNext() {
		if err := data.IngestNext(); err != nil {
			t.Fatalf("IngestNext failed: %v", err)
		}
	}
	return data
}

func TestPrintTotal(t *testing.T) {
	tests := []struct {
		kind     stats.Kind
		input    string
		expected string
	}{
		{stats.Long, "3 1 2", "Total numbers: 3.\n"},
		{stats.Word, "a b a", "Total words: 3.\n"},
		{stats.Line, "a b\nc\n", "Total lines: 2.\n"},
		{stats.Line, "", "Total lines: 0.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var out bytes.Buffer
			r := New(newDataset(t, tt.kind, tt.input, &out), &out)
			if err := r.PrintTotal(); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestPrintSorted(t *testing.T) {
	tests := []struct {
		name     string
		kind     stats.Kind
		mode     stats.Mode
		input    string
		expected string
	}{
		{
			name:     "Long natural",
			kind:     stats.Long,
			mode:     stats.Natural,
			input:    "3 1 2",
			expected: "Sorted data: 1 2 3\n",
		},
		{
			name:     "Word by count",
			kind:     stats.Word,
			mode:     stats.ByCount,
			input:    "a b a c b a",
			expected: "c: 1 time(s), 16%\nb: 2 time(s), 33%\na: 3 time(s), 50%\n",
		},
		{
			name:     "Word natural",
			kind:     stats.Word,
			mode:     stats.Natural,
			input:    "pear apple pear",
			expected: "Sorted data:\napple\npear\npear\n",
		},
		{
			name:     "Line natural",
			kind:     stats.Line,
			mode:     stats.Natural,
			input:    "b line\na line\n",
			expected: "Sorted data:\na line\nb line\n",
		},
		{
			name:     "Long by count",
			kind:     stats.Long,
			mode:     stats.ByCount,
			input:    "7 -1 7",
			expected: "-1: 1 time(s), 33%\n7: 2 time(s), 66%\n",
		},
		{
			name:     "Empty line natural",
			kind:     stats.Line,
			mode:     stats.Natural,
			input:    "",
			expected: "Sorted data:\n",
		},
		{
			name:     "Empty long natural",
			kind:     stats.Long,
			mode:     stats.Natural,
			input:    "",
			expected: "Sorted data:\n",
		},
		{
			name:     "Empty word by count",
			kind:     stats.Word,
			mode:     stats.ByCount,
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := New(newDataset(t, tt.kind, tt.input, &out), &out)
			if err := r.PrintSorted(tt.mode); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestPrintSorted_Idempotent(t *testing.T) {
	var diag bytes.Buffer
	data := newDataset(t, stats.Word, "delta alpha charlie alpha", &diag)

	var first, second bytes.Buffer
	if err := New(data, &first).PrintSorted(stats.Natural); err != nil {
		t.Fatal(err)
	}
	if err := New(data, &second).PrintSorted(stats.Natural); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("Expected identical output, got %q and %q", first.String(), second.String())
	}
}

func TestPrintLargest(t *testing.T) {
	tests := []struct {
		name     string
		kind     stats.Kind
		input    string
		expected string
	}{
		{"Long", stats.Long, "1 9 9 4", "The greatest number: 9 (2 time(s), 50%).\n"},
		{"Word", stats.Word, "ab abc xyz ab", "The longest word: abc (1 time(s), 25%).\n"},
		{"Line", stats.Line, "short\nthe longest\n", "The longest line: \nthe longest\n(1 time(s), 50%).\n"},
		{"Empty", stats.Long, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := New(newDataset(t, tt.kind, tt.input, &out), &out)
			if err := r.PrintLargest(); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestPrintSorted_WriteError(t *testing.T) {
	var diag bytes.Buffer
	r := New(newDataset(t, stats.Word, "a b", &diag), brokenWriter{})
	if err := r.PrintSorted(stats.Natural); err == nil {
		t.Error("Expected write error to be returned")
	}
}
