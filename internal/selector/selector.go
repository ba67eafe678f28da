package selector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"github.com/firefly/sorting-tool/internal/config"
	outputio "github.com/firefly/sorting-tool/internal/io"
	"github.com/firefly/sorting-tool/internal/parser"
	"github.com/firefly/sorting-tool/internal/source"
	"github.com/firefly/sorting-tool/internal/stats"
)

// OpenError reports a named input or output file that could not be opened
type OpenError struct {
	Op   string // "input" or "output"
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s file %q: %v", e.Op, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Session binds a dataset to its token source and report sink for one run
type Session struct {
	Data   stats.Dataset
	Sink   *outputio.Sink
	Source *source.Scanner

	closers []io.Closer
	closed  bool
	log     logr.Logger
}

// Open wires the configured input and output to a dataset of the configured kind.
// Standard streams are used when no file is named.
func Open(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, log logr.Logger) (*Session, error) {
	log = log.WithName("selector")
	s := &Session{log: log}

	input := stdin
	if cfg.InputFile != "" {
		file, err := os.Open(cfg.InputFile)
		if err != nil {
			return nil, &OpenError{Op: "input", Path: cfg.InputFile, Err: err}
		}
		s.closers = append(s.closers, file)
		input = file

		if cfg.Progress {
			progress, err := source.NewProgress(file, stderr)
			if err != nil {
				s.Close()
				return nil, &OpenError{Op: "input", Path: cfg.InputFile, Err: err}
			}
			s.closers = append(s.closers, progress)
			input = progress.Reader()
		}
	}
	log.V(1).Info("opened input", "file", nameOr(cfg.InputFile, "stdin"), "format", cfg.InputFormat)

	if cfg.InputFormat == config.HTML {
		text, err := parser.New(log).ExtractText(input)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("reading HTML input: %w", err)
		}
		input = strings.NewReader(text)
	}

	split := source.Words
	if cfg.Kind == stats.Line {
		split = source.Lines
	}
	s.Source = source.NewScanner(input, split)

	sink, err := outputio.Open(cfg.OutputFile, stdout)
	if err != nil {
		s.Close()
		return nil, &OpenError{Op: "output", Path: cfg.OutputFile, Err: err}
	}
	s.Sink = sink
	log.V(1).Info("opened output", "sink", sink.Name())

	data, err := stats.New(cfg.Kind, s.Source, sink)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Data = data
	log.V(1).Info("selected data type", "kind", cfg.Kind)

	return s, nil
}

// Close releases the input and flushes and closes the sink. It is safe to
// call on every exit path and more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing input: %w", err))
		}
	}
	if s.Sink != nil {
		if err := s.Sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
