package align

// Mode selects how a packed line is placed within the target width.
type Mode int

const (
	Right Mode = iota
	Left
	Center
	Justify
)

// ParseMode maps a selector token to a Mode. Only the literal tokens "L", "C"
// and "J" are recognised; anything else, including "", selects Right.
func ParseMode(token string) Mode {
	switch token {
	case "L":
		return Left
	case "C":
		return Center
	case "J":
		return Justify
	default:
		return Right
	}
}

// String returns the selector token for the mode.
func (m Mode) String() string {
	switch m {
	case Left:
		return "L"
	case Center:
		return "C"
	case Justify:
		return "J"
	default:
		return "R"
	}
}
