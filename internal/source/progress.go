package source

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// Progress reports how much of an input file has been consumed
type Progress struct {
	bar    *pb.ProgressBar
	reader io.Reader
}

// NewProgress starts a byte progress bar on w sized to f
func NewProgress(f *os.File, w io.Writer) (*Progress, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input file: %w", err)
	}

	bar := pb.New64(info.Size())
	bar.Set(pb.Bytes, true)
	bar.SetWriter(w)
	bar.Start()

	return &Progress{
		bar:    bar,
		reader: bar.NewProxyReader(f),
	}, nil
}

// Reader returns the tracked reader
func (p *Progress) Reader() io.Reader {
	return p.reader
}

// Close stops the bar
func (p *Progress) Close() error {
	p.bar.Finish()
	return nil
}
