package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sink is the buffered destination of a report: standard output or a file
type Sink struct {
	w      *bufio.Writer
	file   *os.File
	closed bool
}

// Open returns a sink writing to path, or to stdout when path is empty.
// An existing file is truncated.
func Open(path string, stdout io.Writer) (*Sink, error) {
	if path == "" {
		return &Sink{w: bufio.NewWriter(stdout)}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}

	return &Sink{
		w:    bufio.NewWriter(file),
		file: file,
	}, nil
}

// Name describes where the report goes
func (s *Sink) Name() string {
	if s.file == nil {
		return "stdout"
	}
	return s.file.Name()
}

// Write buffers p
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	return s.w.Write(p)
}

// Flush pushes buffered output to the destination
func (s *Sink) Flush() error {
	if s.closed {
		return nil
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// Close flushes and, for files, closes the destination. Standard output is
// left open. Calling Close more than once is a no-op.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	err := s.Flush()
	s.closed = true
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing output file: %w", cerr))
		}
	}
	return err
}
