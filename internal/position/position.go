// Package position holds a complete chess position as bitboards and the
// operations that change it: applying and undoing moves and rebuilding
// the attack maps.
//
// A Position is a plain value with a single owner. It has no locking; to
// use positions from several goroutines give each goroutine its own.
package position

import (
	"fmt"

	"github.com/lgbarn/bitboard-go/internal/attack"
	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/errors"
)

// Position is a chess position. The per-piece boards in Pieces are the
// authoritative state. Occupancy, Attacks and AttackAll are caches derived
// from them: Apply and Undo keep Occupancy in step, and RecomputeAttacks
// must run after any change before the attack fields are read.
type Position struct {
	State GameState

	// Side to move.
	Side chess.Colour

	// Halfmove clock and fullmove number from the FEN counters.
	Halfmove uint
	Fullmove uint

	// Castling rights, indexed by colour.
	Castling [chess.NumColours]chess.Castling

	// En passant target square, valid only when HasEnPassant is true.
	EnPassant    chess.Square
	HasEnPassant bool

	// Piece placement, indexed by colour.
	Pieces    [chess.NumColours]chess.SideMap
	Occupancy [chess.NumColours]chess.BitBoard

	// Attacked squares, indexed by the attacking colour.
	Attacks   [chess.NumColours]chess.SideMap
	AttackAll [chess.NumColours]chess.BitBoard

	// Moves applied since the position was created, oldest first.
	History []chess.Move
}

// New returns an empty board with White to move.
func New() *Position {
	return &Position{
		State:    GameState{Kind: Normal},
		Side:     chess.White,
		Fullmove: 1,
		History:  []chess.Move{},
	}
}

// Place puts a piece on a square and updates the occupancy cache.
// It is meant for building positions by hand; RecomputeAttacks must be
// called once placement is complete.
func (p *Position) Place(colour chess.Colour, pt chess.PieceType, sq chess.Square) {
	p.Pieces[colour].Set(pt, sq.File, sq.Rank)
	p.Occupancy[colour].Set(sq.File, sq.Rank)
}

// Apply plays m for the side to move.
//
// Apply does not validate m. The caller guarantees that the side to move
// has a piece of type m.Piece on m.From, and that when m.Change names a
// captured type the opponent has exactly that piece on m.To. Use
// CheckMove to test those conditions first when they are not already
// known to hold. Apply leaves the side to move, castling rights, en
// passant square, clocks and attack maps untouched.
func (p *Position) Apply(m chess.Move) {
	mover := p.Side

	p.Pieces[mover].Unset(m.Piece, m.From.File, m.From.Rank)
	p.Pieces[mover].Set(m.Piece, m.To.File, m.To.Rank)
	p.Occupancy[mover].Unset(m.From.File, m.From.Rank)
	p.Occupancy[mover].Set(m.To.File, m.To.Rank)

	if captured, ok := m.Change.CapturedPiece(); ok {
		opponent := mover.Opposite()
		p.Pieces[opponent].Unset(captured, m.To.File, m.To.Rank)
		p.Occupancy[opponent].Unset(m.To.File, m.To.Rank)
	}

	p.History = append(p.History, m)
}

// Undo takes back the most recent move and returns it. The mover is
// taken to be the current side to move, so a caller that switched sides
// after Apply must switch back first. Undo returns ErrEmptyHistory and
// leaves the position unchanged when there is nothing to undo.
func (p *Position) Undo() (chess.Move, error) {
	if len(p.History) == 0 {
		return chess.Move{}, errors.ErrEmptyHistory
	}

	last := len(p.History) - 1
	m := p.History[last]
	p.History = p.History[:last]

	mover := p.Side

	p.Pieces[mover].Unset(m.Piece, m.To.File, m.To.Rank)
	p.Pieces[mover].Set(m.Piece, m.From.File, m.From.Rank)
	p.Occupancy[mover].Unset(m.To.File, m.To.Rank)
	p.Occupancy[mover].Set(m.From.File, m.From.Rank)

	if captured, ok := m.Change.CapturedPiece(); ok {
		opponent := mover.Opposite()
		p.Pieces[opponent].Set(captured, m.To.File, m.To.Rank)
		p.Occupancy[opponent].Set(m.To.File, m.To.Rank)
	}

	return m, nil
}

// CheckMove reports whether m satisfies the preconditions of Apply for
// the side to move. It looks only at piece placement; it does not check
// how the piece moves or whether the king is left in check.
func (p *Position) CheckMove(m chess.Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return fmt.Errorf("%v: square off the board: %w", m, errors.ErrIllegalMove)
	}
	if m.From == m.To {
		return fmt.Errorf("%v: origin equals destination: %w", m, errors.ErrIllegalMove)
	}

	mover, opponent := p.Side, p.Side.Opposite()

	if set, _ := p.Pieces[mover].Get(m.Piece, m.From.File, m.From.Rank); !set {
		return fmt.Errorf("%v: no %s %s on %s: %w", m, mover, m.Piece, m.From, errors.ErrIllegalMove)
	}
	if p.Occupancy[mover].Has(m.To) {
		return fmt.Errorf("%v: %s is occupied by %s: %w", m, m.To, mover, errors.ErrIllegalMove)
	}

	captured, capturing := m.Change.CapturedPiece()
	occupant, occupied := p.Pieces[opponent].PieceAt(m.To.File, m.To.Rank)
	switch {
	case capturing && !occupied:
		return fmt.Errorf("%v: nothing to capture on %s: %w", m, m.To, errors.ErrIllegalMove)
	case capturing && occupant != captured:
		return fmt.Errorf("%v: %s holds a %s, not a %s: %w", m, m.To, occupant, captured, errors.ErrIllegalMove)
	case !capturing && occupied:
		return fmt.Errorf("%v: %s is occupied by %s: %w", m, m.To, opponent, errors.ErrIllegalMove)
	}
	return nil
}

// MoveFromCoordinates builds a move from text such as "e5f4", taking the
// piece type from the side to move's piece on the origin and the
// captured type from whatever the opponent has on the destination. The
// result is passed through CheckMove.
func (p *Position) MoveFromCoordinates(s string) (chess.Move, error) {
	from, to, err := chess.ParseCoordinates(s)
	if err != nil {
		return chess.Move{}, err
	}

	pt, ok := p.Pieces[p.Side].PieceAt(from.File, from.Rank)
	if !ok {
		return chess.Move{}, fmt.Errorf("move %q: no %s piece on %s: %w", s, p.Side, from, errors.ErrIllegalMove)
	}

	m := chess.Move{From: from, To: to, Piece: pt}
	if captured, ok := p.Pieces[p.Side.Opposite()].PieceAt(to.File, to.Rank); ok {
		m.Change = chess.Capturing(captured)
	}
	if err := p.CheckMove(m); err != nil {
		return chess.Move{}, err
	}
	return m, nil
}

// RecomputeAttacks rebuilds both colours' attack maps from the current
// piece placement. The occupancy cache is rebuilt first from the
// per-piece boards.
func (p *Position) RecomputeAttacks() {
	for c := chess.White; c < chess.NumColours; c++ {
		p.Occupancy[c] = p.Pieces[c].Combine()
	}
	for c := chess.White; c < chess.NumColours; c++ {
		p.Attacks[c] = attack.SideMap(c, &p.Pieces[c], p.Occupancy[c], p.Occupancy[c.Opposite()])
		p.AttackAll[c] = p.Attacks[c].Combine()
	}
}

// PieceAt returns the colour and type of the piece on sq, if any.
func (p *Position) PieceAt(sq chess.Square) (chess.Colour, chess.PieceType, bool) {
	for c := chess.White; c < chess.NumColours; c++ {
		if pt, ok := p.Pieces[c].PieceAt(sq.File, sq.Rank); ok {
			return c, pt, true
		}
	}
	return chess.White, 0, false
}

// Occupied returns the union of both sides' occupancy.
func (p *Position) Occupied() chess.BitBoard {
	return p.Occupancy[chess.White] | p.Occupancy[chess.Black]
}

// IsAttacked reports whether sq is attacked by colour. It reads the
// attack cache, so RecomputeAttacks must be current.
func (p *Position) IsAttacked(sq chess.Square, by chess.Colour) bool {
	return p.AttackAll[by].Has(sq)
}

// Clone returns a deep copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	c.History = append([]chess.Move{}, p.History...)
	return &c
}

// Snapshot returns the board as 64 characters for display. Entry
// rank*8 + (7-file) holds the piece on (file, rank): an uppercase letter
// for White, lowercase for Black, or ' ' when the square is empty.
func (p *Position) Snapshot() [chess.NumSquares]byte {
	var out [chess.NumSquares]byte
	for i := range out {
		out[i] = ' '
	}
	for c := chess.White; c < chess.NumColours; c++ {
		for _, pt := range chess.PieceTypes {
			letter := pt.ColouredLetter(c)
			for _, sq := range p.Pieces[c].Board(pt).SquareList() {
				out[sq.Rank*chess.BoardSize+(chess.BoardSize-1-sq.File)] = letter
			}
		}
	}
	return out
}
