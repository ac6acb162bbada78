package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/aligntext/internal/ctxlog"
	"github.com/specialistvlad/aligntext/internal/fsutil"
)

// TextExtension is the extension picked up when the input is a directory.
const TextExtension = ".txt"

// ErrUnreadable wraps every failure to locate or read the input.
var ErrUnreadable = errors.New("input source is unreadable")

// Split decides where one paragraph ends and the next begins.
type Split int

const (
	// ByLine treats every input line as its own paragraph.
	ByLine Split = iota
	// ByBlankLine joins consecutive non-blank lines into one paragraph.
	ByBlankLine
)

// ParseSplit maps the -paragraphs option value to a Split.
func ParseSplit(s string) (Split, error) {
	switch strings.ToLower(s) {
	case "", "line":
		return ByLine, nil
	case "blank":
		return ByBlankLine, nil
	default:
		return ByLine, fmt.Errorf("invalid paragraphs value %q: must be 'line' or 'blank'", s)
	}
}

func (s Split) String() string {
	if s == ByBlankLine {
		return "blank"
	}
	return "line"
}

// File is a text source backed by a file or a directory of text files.
type File struct {
	Path  string
	Split Split
}

// NewFile creates a source for path.
func NewFile(path string, split Split) *File {
	return &File{Path: path, Split: split}
}

// Paragraphs reads every input file in order and returns their paragraphs.
// Files never merge: the last paragraph of one file and the first of the
// next stay separate.
func (f *File) Paragraphs(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ResolveInputs(f.Path, TextExtension)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	logger.Debug("Resolved input files.", "path", f.Path, "count", len(files))

	var paragraphs []string
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := readFile(name, f.Split)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		logger.Debug("Read input file.", "file", name, "paragraphs", len(p))
		paragraphs = append(paragraphs, p...)
	}
	return paragraphs, nil
}

func readFile(name string, split Split) ([]string, error) {
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	p, err := Read(fh, split)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return p, nil
}

// Read splits the text from r into paragraphs.
func Read(r io.Reader, split Split) ([]string, error) {
	var (
		paragraphs []string
		block      []string
	)
	flush := func() {
		if len(block) > 0 {
			paragraphs = append(paragraphs, strings.Join(block, "\n"))
			block = nil
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if split == ByLine {
			paragraphs = append(paragraphs, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return paragraphs, nil
}
