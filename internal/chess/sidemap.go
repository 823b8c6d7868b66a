package chess

// SideMap holds one board per piece type for a single colour. It is an
// array rather than a map so that all six boards always exist. The boards
// are expected to be disjoint; every mutator touches exactly one of them.
type SideMap [NumPieceTypes]BitBoard

// Board returns the board for a piece type.
func (m *SideMap) Board(pt PieceType) BitBoard {
	return m[pt]
}

// BoardPtr returns a pointer to the board for a piece type.
func (m *SideMap) BoardPtr(pt PieceType) *BitBoard {
	return &m[pt]
}

// Get reports whether a piece of type pt stands on (file, rank).
func (m *SideMap) Get(pt PieceType, file, rank int) (set, ok bool) {
	return m[pt].Get(file, rank)
}

// Set places a piece of type pt on (file, rank).
func (m *SideMap) Set(pt PieceType, file, rank int) {
	m[pt].Set(file, rank)
}

// Unset removes a piece of type pt from (file, rank).
func (m *SideMap) Unset(pt PieceType, file, rank int) {
	m[pt].Unset(file, rank)
}

// Toggle flips (file, rank) on the board for pt.
func (m *SideMap) Toggle(pt PieceType, file, rank int) {
	m[pt].Toggle(file, rank)
}

// Combine returns the union of all six boards.
func (m *SideMap) Combine() BitBoard {
	var out BitBoard
	for _, b := range m {
		out.Union(b)
	}
	return out
}

// PieceAt returns the type of the piece on (file, rank), if any.
func (m *SideMap) PieceAt(file, rank int) (PieceType, bool) {
	for _, pt := range PieceTypes {
		if set, _ := m[pt].Get(file, rank); set {
			return pt, true
		}
	}
	return 0, false
}
