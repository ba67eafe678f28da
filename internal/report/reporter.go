package report

import (
	"fmt"
	"io"

	"github.com/firefly/sorting-tool/internal/stats"
)

// totalLabels names the elements counted by PrintTotal
var totalLabels = map[stats.Kind]string{
	stats.Long: "numbers",
	stats.Line: "lines",
	stats.Word: "words",
}

// Reporter writes the statistics of a dataset as text
type Reporter struct {
	data stats.Dataset
	w    io.Writer
	err  error
}

// New creates a Reporter writing to w
func New(data stats.Dataset, w io.Writer) *Reporter {
	return &Reporter{
		data: data,
		w:    w,
	}
}

// PrintTotal writes the number of elements, e.g. "Total words: 6."
func (r *Reporter) PrintTotal() error {
	r.printf("Total %s: %d.\n", totalLabels[r.data.Kind()], r.data.Total())
	return r.flush()
}

// PrintLargest writes the greatest number or the longest line or word
// with its frequency. Nothing is written for an empty dataset.
func (r *Reporter) PrintLargest() error {
	if r.data.Total() == 0 {
		return nil
	}

	row, err := r.data.Largest()
	if err != nil {
		return fmt.Errorf("computing largest element: %w", err)
	}

	switch r.data.Kind() {
	case stats.Long:
		r.printf("The greatest number: %s (%d time(s), %d%%).\n", row.Value, row.Count, row.Percent)
	case stats.Line:
		r.printf("The longest line: \n%s\n(%d time(s), %d%%).\n", row.Value, row.Count, row.Percent)
	default:
		r.printf("The longest word: %s (%d time(s), %d%%).\n", row.Value, row.Count, row.Percent)
	}
	return r.flush()
}

// PrintSorted writes the dataset in the requested order
func (r *Reporter) PrintSorted(mode stats.Mode) error {
	if mode == stats.ByCount {
		r.printByCount()
	} else {
		r.printNatural()
	}
	return r.flush()
}

func (r *Reporter) printNatural() {
	values := r.data.Natural()

	// Numbers share one line, text gets a line per element
	if r.data.Kind() == stats.Long {
		r.printf("Sorted data:")
		for _, v := range values {
			r.printf(" %s", v)
		}
		r.printf("\n")
		return
	}

	r.printf("Sorted data:\n")
	for _, v := range values {
		r.printf("%s\n", v)
	}
}

func (r *Reporter) printByCount() {
	if r.data.Total() == 0 {
		return
	}
	for _, row := range r.data.Ranked() {
		r.printf("%s: %d time(s), %d%%\n", row.Value, row.Count, row.Percent)
	}
}

// printf records the first write error and skips everything after it
func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) flush() error {
	if r.err != nil {
		return fmt.Errorf("writing report: %w", r.err)
	}
	if f, ok := r.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
