package align

import "strings"

// Line is the ordered set of words assigned to one output row.
type Line struct {
	words []Word
	used  int
}

// Words returns a copy of the words on the line.
func (l Line) Words() []Word {
	return append([]Word(nil), l.words...)
}

// Len is the number of words on the line.
func (l Line) Len() int {
	return len(l.words)
}

// UsedChars is the width of the words joined by single spaces.
func (l Line) UsedChars() int {
	return l.used
}

// with returns a new line with w appended. The receiver is left untouched.
func (l Line) with(w Word) Line {
	words := make([]Word, len(l.words), len(l.words)+1)
	copy(words, l.words)
	used := w.Len()
	if len(l.words) > 0 {
		used += l.used + 1
	}
	return Line{words: append(words, w), used: used}
}

func (l Line) join() string {
	var sb strings.Builder
	for i, w := range l.words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(w))
	}
	return sb.String()
}

// NewLine builds a line from words in the given order.
func NewLine(words ...Word) Line {
	var l Line
	for _, w := range words {
		l = l.with(w)
	}
	return l
}

// Pack assigns words to lines greedily: each line takes as many words as fit
// in width before the next line starts. A word that is wider than width on
// its own still gets a line of its own and overflows it.
func Pack(words []Word, width int) []Line {
	var (
		lines   []Line
		current Line
	)
	for i := 0; i < len(words); {
		w := words[i]
		if current.Len() == 0 || current.used+1+w.Len() <= width {
			current = current.with(w)
			i++
			continue
		}
		lines = append(lines, current)
		current = Line{}
	}
	if current.Len() > 0 {
		lines = append(lines, current)
	}
	return lines
}
