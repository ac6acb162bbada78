package align

import "strings"

// Render lays out a line within width according to mode. No trailing newline
// is added. When the words already exceed width the bare words are returned.
func Render(line Line, width int, mode Mode) string {
	pad := width - line.UsedChars()
	switch mode {
	case Left:
		return line.join()
	case Center:
		before := pad / 2
		if pad%2 == 1 {
			before++
		}
		return spaces(before) + line.join() + spaces(pad/2)
	case Justify:
		return justify(line, pad)
	default:
		return spaces(pad) + line.join()
	}
}

// RenderLast renders the final line of a paragraph. A justified paragraph
// ends on a plain left-aligned line; every other mode renders as usual.
func RenderLast(line Line, width int, mode Mode) string {
	if mode == Justify {
		return Render(line, width, Left)
	}
	return Render(line, width, mode)
}

// justify spreads pad extra spaces over the gaps between words. Each gap gets
// the same base width and the remainder goes, one space each, to the gaps
// closest to the end of the line.
func justify(line Line, pad int) string {
	words := line.words
	gaps := len(words) - 1
	if gaps < 1 {
		return line.join()
	}

	base := 1 + pad/gaps
	if base < 1 {
		base = 1
	}
	extra := pad - (base-1)*gaps

	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			n := base
			if i >= len(words)-extra {
				n++
			}
			sb.WriteString(spaces(n))
		}
		sb.WriteString(string(w))
	}
	return sb.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
