package stats

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
)

// ErrEmptyCollection is returned when a statistic needs at least one element
var ErrEmptyCollection = errors.New("collection is empty")

// Source yields raw tokens for a collection
type Source interface {
	HasNext() bool
	Next() string
}

// Rules describes one kind: how its tokens parse and how its maximum is chosen.
// Natural order is always cmp.Compare on the element type.
type Rules[T cmp.Ordered] struct {
	Kind Kind

	// Parse converts a raw token; a non-nil error drops the token
	Parse func(token string) (T, error)

	// Exceeds reports whether candidate beats the current maximum.
	// It must be strict so the first of equal candidates is kept.
	Exceeds func(candidate, current T) bool

	// Empty is the result of Max on an empty collection
	Empty func() (T, error)

	// Format renders an element for reports
	Format func(v T) string
}

// Row is one line of a frequency report
type Row struct {
	Value   string
	Count   int
	Percent int
}

// Dataset is the kind-independent view of a collection used by the driver and the reporter
type Dataset interface {
	Kind() Kind
	HasNext() bool
	IngestNext() error
	Total() int
	Largest() (Row, error)
	Natural() []string
	Ranked() []Row
}

// Collection holds every accepted element of one kind in insertion order
type Collection[T cmp.Ordered] struct {
	rules Rules[T]
	src   Source
	diag  io.Writer
	elems []T
}

// NewCollection creates an empty collection reading from src.
// Rejected tokens are reported on diag.
func NewCollection[T cmp.Ordered](rules Rules[T], src Source, diag io.Writer) *Collection[T] {
	return &Collection[T]{
		rules: rules,
		src:   src,
		diag:  diag,
	}
}

// Kind returns the kind the collection was built for
func (c *Collection[T]) Kind() Kind {
	return c.rules.Kind
}

// HasNext reports whether the source can yield another token
func (c *Collection[T]) HasNext() bool {
	return c.src.HasNext()
}

// IngestNext pulls one token from the source and appends it if it parses.
// A token that does not parse is skipped with a diagnostic line; the only
// error returned is a failure to write that line.
func (c *Collection[T]) IngestNext() error {
	token := c.src.Next()
	v, err := c.rules.Parse(token)
	if err != nil {
		if _, werr := fmt.Fprintf(c.diag, "\"%s\" is not a %s. It will be skipped.\n", token, c.rules.Kind); werr != nil {
			return fmt.Errorf("writing diagnostic: %w", werr)
		}
		if f, ok := c.diag.(interface{ Flush() error }); ok {
			return f.Flush()
		}
		return nil
	}
	c.elems = append(c.elems, v)
	return nil
}

// Add appends elements directly, bypassing the source
func (c *Collection[T]) Add(values ...T) {
	c.elems = append(c.elems, values...)
}

// Total returns the number of elements held
func (c *Collection[T]) Total() int {
	return len(c.elems)
}

// Elements returns a copy of the elements in insertion order
func (c *Collection[T]) Elements() []T {
	return slices.Clone(c.elems)
}

// Max returns the greatest element by the kind's criterion
func (c *Collection[T]) Max() (T, error) {
	if len(c.elems) == 0 {
		return c.rules.Empty()
	}
	best := c.elems[0]
	for _, v := range c.elems[1:] {
		if c.rules.Exceeds(v, best) {
			best = v
		}
	}
	return best, nil
}

// Frequency counts the elements equal to v
func (c *Collection[T]) Frequency(v T) int {
	n := 0
	for _, e := range c.elems {
		if e == v {
			n++
		}
	}
	return n
}

// Percentage returns the share of v in the collection, truncated to an integer.
// It divides by Total and must not be called on an empty collection.
func (c *Collection[T]) Percentage(v T) int {
	return 100 * c.Frequency(v) / c.Total()
}

// Sorted returns the elements in natural order, leaving the collection untouched
func (c *Collection[T]) Sorted() []T {
	sorted := slices.Clone(c.elems)
	slices.Sort(sorted)
	return sorted
}

// Count pairs a distinct value with its frequency
type Count[T cmp.Ordered] struct {
	Value T
	Count int
}

// ByCount returns each distinct value once, ordered by ascending frequency
// and then natural order. Duplicates are removed after sorting.
func (c *Collection[T]) ByCount() []Count[T] {
	freq := c.frequencies()

	sorted := slices.Clone(c.elems)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if n := cmp.Compare(freq[a], freq[b]); n != 0 {
			return n
		}
		return cmp.Compare(a, b)
	})
	sorted = slices.Compact(sorted)

	counts := make([]Count[T], 0, len(sorted))
	for _, v := range sorted {
		counts = append(counts, Count[T]{Value: v, Count: freq[v]})
	}
	return counts
}

// frequencies derives the value to count mapping; it is never cached
func (c *Collection[T]) frequencies() map[T]int {
	freq := make(map[T]int)
	for _, v := range c.elems {
		freq[v]++
	}
	return freq
}

// Largest returns the maximum element with its frequency and percentage
func (c *Collection[T]) Largest() (Row, error) {
	if c.Total() == 0 {
		return Row{}, ErrEmptyCollection
	}
	top, err := c.Max()
	if err != nil {
		return Row{}, err
	}
	return Row{
		Value:   c.rules.Format(top),
		Count:   c.Frequency(top),
		Percent: c.Percentage(top),
	}, nil
}

// Natural returns the formatted elements in natural order
func (c *Collection[T]) Natural() []string {
	sorted := c.Sorted()
	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = c.rules.Format(v)
	}
	return out
}

// Ranked returns the formatted frequency rows in by-count order
func (c *Collection[T]) Ranked() []Row {
	counts := c.ByCount()
	if len(counts) == 0 {
		return nil
	}
	total := c.Total()
	rows := make([]Row, len(counts))
	for i, cnt := range counts {
		rows[i] = Row{
			Value:   c.rules.Format(cnt.Value),
			Count:   cnt.Count,
			Percent: 100 * cnt.Count / total,
		}
	}
	return rows
}
