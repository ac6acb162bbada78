package align

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FormatParagraph tokenizes, packs and renders a single paragraph.
func FormatParagraph(text string, width int, mode Mode) []string {
	lines := Pack(Tokenize(text), width)
	out := make([]string, len(lines))
	for i, l := range lines {
		if i == len(lines)-1 {
			out[i] = RenderLast(l, width, mode)
			continue
		}
		out[i] = Render(l, width, mode)
	}
	return out
}

// Format renders every paragraph in order and concatenates the results.
// Paragraphs never share a line.
func Format(paragraphs []string, width int, mode Mode) []string {
	var out []string
	for _, p := range paragraphs {
		out = append(out, FormatParagraph(p, width, mode)...)
	}
	return out
}

// Formatter formats whole documents, optionally spreading paragraphs over a
// bounded pool of goroutines.
type Formatter struct {
	Width int
	Mode  Mode

	// Workers caps the number of paragraphs formatted at once. Values below
	// two format sequentially on the calling goroutine.
	Workers int
}

// Format returns the same lines as the package level Format. It stops early
// and returns ctx.Err() when the context is cancelled.
func (f Formatter) Format(ctx context.Context, paragraphs []string) ([]string, error) {
	if f.Workers < 2 {
		var out []string
		for _, p := range paragraphs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out = append(out, FormatParagraph(p, f.Width, f.Mode)...)
		}
		return out, nil
	}

	results := make([][]string, len(paragraphs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.Workers)
	for i, p := range paragraphs {
		if gctx.Err() != nil {
			break
		}
		i, p := i, p // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = FormatParagraph(p, f.Width, f.Mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []string
	for _, lines := range results {
		out = append(out, lines...)
	}
	return out, nil
}
