package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/aligntext/internal/align"
	"github.com/specialistvlad/aligntext/internal/source"
)

var (
	// ErrMissingInput is returned when no input path was given.
	ErrMissingInput = errors.New("InputPath is a required configuration field and cannot be empty")
	// ErrInvalidWidth is returned for a line width below one.
	ErrInvalidWidth = errors.New("Width must be a positive integer")
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // file or directory of .txt files
	OutputPath string // empty means the App's writer

	Width   int
	Mode    align.Mode
	Split   source.Split
	Workers int

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, ErrMissingInput
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, cfg.Width)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("Workers must be at least 1, got %d", cfg.Workers)
	}
	return &cfg, nil
}
