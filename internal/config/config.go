package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/firefly/sorting-tool/internal/stats"
)

// Exit statuses of the sorting tool
const (
	ExitOK             = 0
	ExitBadSortingType = 1
	ExitBadDataType    = 2
	ExitIO             = 3
	ExitUsage          = 4
)

// Command line flags. They keep the single-dash camelCase spelling of the legacy tool.
const (
	FlagDataType    = "-dataType"
	FlagSortingType = "-sortingType"
	FlagInputFile   = "-inputFile"
	FlagOutputFile  = "-outputFile"
	FlagInputFormat = "-inputFormat"
	FlagConfig      = "-config"
	FlagProgress    = "-progress"
	FlagVerbose     = "-verbose"
	FlagLargest     = "-largest"
)

// Format is the syntax of the input stream
type Format int

const (
	// Text input is tokenized as is
	Text Format = iota
	// HTML input is reduced to its visible text first
	HTML
)

func (f Format) String() string {
	if f == HTML {
		return "html"
	}
	return "text"
}

// ParseFormat maps a case-insensitive name onto a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text":
		return Text, nil
	case "html":
		return HTML, nil
	}
	return Text, fmt.Errorf("unknown input format %q", name)
}

// Config holds all configuration for the sorting tool
type Config struct {
	Kind        stats.Kind
	Mode        stats.Mode
	InputFile   string // empty means standard input
	OutputFile  string // empty means standard output
	InputFormat Format
	ConfigFile  string
	Progress    bool
	Verbose     bool
	Largest     bool
}

// Default returns the configuration used when no flag is given
func Default() *Config {
	return &Config{
		Kind: stats.Word,
		Mode: stats.Natural,
	}
}

// UsageError is a fatal argument problem. Msg is shown to the user and
// Code becomes the exit status.
type UsageError struct {
	Code int
	Msg  string
	Err  error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

var (
	errNoSortingType = &UsageError{Code: ExitBadSortingType, Msg: "No sorting type defined!"}
	errNoDataType    = &UsageError{Code: ExitBadDataType, Msg: "No data type defined!"}
)

// ParseArgs parses the command line. Unknown flags are reported on warn and
// skipped. Values from a -config file are applied first so that flags win.
func ParseArgs(args []string, warn io.Writer) (*Config, error) {
	cfg := Default()

	// The config file provides defaults, so it is loaded before any other flag
	for i := 0; i < len(args); i++ {
		if args[i] != FlagConfig {
			continue
		}
		if i+1 >= len(args) {
			return nil, missingValue(FlagConfig)
		}
		cfg.ConfigFile = args[i+1]
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		break
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case FlagSortingType:
			i++
			if i >= len(args) {
				return nil, errNoSortingType
			}
			mode, err := stats.ParseMode(args[i])
			if err != nil {
				return nil, errNoSortingType
			}
			cfg.Mode = mode

		case FlagDataType:
			i++
			if i >= len(args) {
				return nil, errNoDataType
			}
			kind, err := stats.ParseKind(args[i])
			if err != nil {
				return nil, errNoDataType
			}
			cfg.Kind = kind

		case FlagInputFile, FlagOutputFile, FlagInputFormat, FlagConfig:
			i++
			if i >= len(args) {
				return nil, missingValue(arg)
			}
			if err := cfg.setValue(arg, args[i]); err != nil {
				return nil, err
			}

		case FlagProgress:
			cfg.Progress = true
		case FlagVerbose:
			cfg.Verbose = true
		case FlagLargest:
			cfg.Largest = true

		default:
			fmt.Fprintf(warn, "\"%s\" is not a valid parameter. It will be skipped.\n", arg)
		}
	}

	return cfg, nil
}

func (c *Config) setValue(flag, value string) error {
	switch flag {
	case FlagInputFile:
		c.InputFile = value
	case FlagOutputFile:
		c.OutputFile = value
	case FlagInputFormat:
		format, err := ParseFormat(value)
		if err != nil {
			return &UsageError{Code: ExitUsage, Msg: "No input format defined!", Err: err}
		}
		c.InputFormat = format
	}
	return nil
}

func missingValue(flag string) error {
	return &UsageError{Code: ExitUsage, Msg: fmt.Sprintf("No %s value defined!", strings.TrimPrefix(flag, "-"))}
}

// fileConfig is the YAML layout of a -config file
type fileConfig struct {
	DataType    string `yaml:"dataType"`
	SortingType string `yaml:"sortingType"`
	InputFile   string `yaml:"inputFile"`
	OutputFile  string `yaml:"outputFile"`
	InputFormat string `yaml:"inputFormat"`
	Progress    bool   `yaml:"progress"`
	Verbose     bool   `yaml:"verbose"`
	Largest     bool   `yaml:"largest"`
}

// LoadFile applies the settings of a YAML config file on top of c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &UsageError{Code: ExitUsage, Msg: "Cannot read config file!", Err: fmt.Errorf("reading config file: %w", err)}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &UsageError{Code: ExitUsage, Msg: "Cannot parse config file!", Err: fmt.Errorf("unmarshaling config YAML: %w", err)}
	}

	if fc.DataType != "" {
		kind, err := stats.ParseKind(fc.DataType)
		if err != nil {
			return errNoDataType
		}
		c.Kind = kind
	}
	if fc.SortingType != "" {
		mode, err := stats.ParseMode(fc.SortingType)
		if err != nil {
			return errNoSortingType
		}
		c.Mode = mode
	}
	if fc.InputFile != "" {
		c.InputFile = fc.InputFile
	}
	if fc.OutputFile != "" {
		c.OutputFile = fc.OutputFile
	}
	if fc.InputFormat != "" {
		if err := c.setValue(FlagInputFormat, fc.InputFormat); err != nil {
			return err
		}
	}
	c.Progress = c.Progress || fc.Progress
	c.Verbose = c.Verbose || fc.Verbose
	c.Largest = c.Largest || fc.Largest

	return nil
}

// IsUsageError reports whether err is a fatal argument problem and returns it
func IsUsageError(err error) (*UsageError, bool) {
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return uerr, true
	}
	return nil, false
}
