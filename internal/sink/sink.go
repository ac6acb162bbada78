// Package sink writes rendered lines to their destination.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// Writer emits one rendered line per output row.
type Writer struct {
	bw     *bufio.Writer
	closer io.Closer
}

// New wraps w. Closing the returned Writer flushes but does not close w.
func New(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Create opens path for writing, truncating any existing file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return &Writer{bw: bufio.NewWriter(f), closer: f}, nil
}

// WriteLines writes each line followed by a newline.
func (w *Writer) WriteLines(lines []string) error {
	for _, l := range lines {
		if _, err := w.bw.WriteString(l); err != nil {
			return err
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered output and closes the underlying file, if any.
func (w *Writer) Close() error {
	err := w.bw.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
