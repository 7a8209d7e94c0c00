package geometry

// Border is an unordered pair of adjacent positions, canonicalized so P1 is
// the lexicographically smaller of the two. Borders are comparable values
// and usable as map keys, which the solver relies on heavily.
type Border struct {
	P1 Position
	P2 Position
}

// NewBorder builds the canonical Border between two adjacent positions.
// The caller is responsible for ensuring a and b are actually adjacent;
// NewBorder does not itself validate it.
func NewBorder(a, b Position) Border {
	if b.Less(a) {
		return Border{P1: b, P2: a}
	}
	return Border{P1: a, P2: b}
}

// Up returns the border directly above p, i.e. between p.Up() and p.
func Up(p Position) Border {
	return NewBorder(p.Up(), p)
}

// Down returns the border directly below p, i.e. between p and p.Down().
func Down(p Position) Border {
	return NewBorder(p, p.Down())
}

// Left returns the border directly to the left of p, i.e. between p.Left()
// and p.
func Left(p Position) Border {
	return NewBorder(p.Left(), p)
}

// Right returns the border directly to the right of p, i.e. between p and
// p.Right().
func Right(p Position) Border {
	return NewBorder(p, p.Right())
}

// IsVertical reports whether the border separates two horizontally adjacent
// cells (same row, columns differ by one) — the kind of border rendered as
// a vertical stroke, and the kind that populates the vertical_borders
// matrix of the external board format (see board.Board).
func (b Border) IsVertical() bool {
	return b.P1.Row == b.P2.Row
}

// IsHorizontal reports whether the border separates two vertically adjacent
// cells (same column, rows differ by one) — rendered as a horizontal
// stroke, populating the horizontal_borders matrix.
func (b Border) IsHorizontal() bool {
	return b.P1.Col == b.P2.Col
}

// Less gives Border a total order so borders can be stored in sorted
// slices deterministically, mirroring the canonical ordering Position
// already provides.
func (b Border) Less(o Border) bool {
	if b.P1 != o.P1 {
		return b.P1.Less(o.P1)
	}
	return b.P2.Less(o.P2)
}
