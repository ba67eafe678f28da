package main

import (
	"fmt"
	"io"

	"github.com/firefly/sorting-tool/internal/config"
	"github.com/firefly/sorting-tool/internal/logging"
	"github.com/firefly/sorting-tool/internal/report"
	"github.com/firefly/sorting-tool/internal/selector"
	"github.com/firefly/sorting-tool/internal/stats"
)

// run executes one sorting run and returns the process exit status
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Parse command line flags
	cfg, err := config.ParseArgs(args, stdout)
	if err != nil {
		if uerr, ok := config.IsUsageError(err); ok {
			fmt.Fprintln(stdout, uerr.Msg)
			if uerr.Err != nil {
				fmt.Fprintf(stderr, "Configuration error: %v\n", uerr.Err)
			}
			return uerr.Code
		}
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return config.ExitUsage
	}

	log, syncLog := logging.New(cfg.Verbose, stderr)
	defer syncLog()

	log.V(1).Info("starting", "dataType", cfg.Kind, "sortingType", cfg.Mode,
		"inputFile", cfg.InputFile, "outputFile", cfg.OutputFile)

	sess, err := selector.Open(cfg, stdin, stdout, stderr, log)
	if err != nil {
		// Unreadable input and unwritable output are fatal
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return config.ExitIO
	}

	if err := process(cfg, sess); err != nil {
		sess.Close()
		log.Error(err, "run failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return config.ExitIO
	}

	if err := sess.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return config.ExitIO
	}

	log.V(1).Info("done", "total", sess.Data.Total())
	return config.ExitOK
}

// process ingests the whole input and writes the report
func process(cfg *config.Config, sess *selector.Session) error {
	if err := ingest(sess.Data); err != nil {
		return err
	}
	if err := sess.Source.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	rep := report.New(sess.Data, sess.Sink)
	if err := rep.PrintTotal(); err != nil {
		return err
	}
	if cfg.Largest {
		if err := rep.PrintLargest(); err != nil {
			return err
		}
	}
	return rep.PrintSorted(cfg.Mode)
}

// ingest pulls tokens until the source is exhausted
func ingest(data stats.Dataset) error {
	for data.HasNext() {
		if err := data.IngestNext(); err != nil {
			return fmt.Errorf("ingesting input: %w", err)
		}
	}
	return nil
}
