package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aligntext/internal/align"
	"github.com/specialistvlad/aligntext/internal/ctxlog"
	"github.com/specialistvlad/aligntext/internal/sink"
)

// Run reads the whole source, formats it and only then writes the result, so
// a failure before the write stage leaves the destination untouched.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "width", a.config.Width, "mode", a.config.Mode.String())

	paragraphs, err := a.source.Paragraphs(ctx)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.logger.Debug("Input loaded.", "paragraphs", len(paragraphs))

	f := align.Formatter{
		Width:   a.config.Width,
		Mode:    a.config.Mode,
		Workers: a.config.Workers,
	}
	lines, err := f.Format(ctx, paragraphs)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	a.logger.Debug("Formatting finished.", "lines", len(lines), "workers", a.config.Workers)

	if err := a.write(ctx, lines); err != nil {
		if sink.IsBrokenPipe(err) {
			a.logger.Debug("Output closed early by the reader.")
			return nil
		}
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Info("Text aligned.", "paragraphs", len(paragraphs), "lines", len(lines))
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) write(ctx context.Context, lines []string) error {
	w := sink.New(a.outW)
	if a.config.OutputPath != "" {
		var err error
		if w, err = sink.Create(a.config.OutputPath); err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Debug("Writing to output file.", "path", a.config.OutputPath)
	}

	if err := w.WriteLines(lines); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
