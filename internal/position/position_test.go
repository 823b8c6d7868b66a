package position

import (
	"testing"

	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/errors"
	"github.com/lgbarn/bitboard-go/internal/testutil"
)

func mustDecode(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

func mustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", s, err)
	}
	return sq
}

// snapshotRank reads one rank of a snapshot back in file order a-h.
func snapshotRank(snap [chess.NumSquares]byte, rank int) string {
	out := make([]byte, chess.BoardSize)
	for file := 0; file < chess.BoardSize; file++ {
		out[file] = snap[rank*chess.BoardSize+(chess.BoardSize-1-file)]
	}
	return string(out)
}

func TestSnapshot_StartPosition(t *testing.T) {
	snap := mustDecode(t, testutil.StartFEN).Snapshot()

	want := []string{
		"RNBQKBNR",
		"PPPPPPPP",
		"        ",
		"        ",
		"        ",
		"        ",
		"pppppppp",
		"rnbqkbnr",
	}
	for rank, line := range want {
		if got := snapshotRank(snap, rank); got != line {
			t.Errorf("rank %d = %q; want %q", rank+1, got, line)
		}
	}

	// The snapshot is file-mirrored: index 7 is a1 and index 0 is h1.
	if snap[7] != 'R' || snap[3] != 'K' || snap[4] != 'Q' {
		t.Errorf("snapshot[0:8] = %q; want %q", string(snap[0:8]), "RNBKQBNR")
	}
}

func TestSnapshot_Empty(t *testing.T) {
	snap := New().Snapshot()
	for i, c := range snap {
		if c != ' ' {
			t.Fatalf("snapshot[%d] = %q; want ' '", i, c)
		}
	}
}

func TestApplyUndo_Capture(t *testing.T) {
	pos := mustDecode(t, testutil.ViennaFEN)
	before := pos.Clone()

	mv := chess.Move{
		From:   mustSquare(t, "e5"),
		To:     mustSquare(t, "f4"),
		Piece:  chess.Pawn,
		Change: chess.Capturing(chess.Pawn),
	}
	testutil.AssertNoError(t, pos.CheckMove(mv), "CheckMove(exf4)")

	pos.Apply(mv)

	f4 := mustSquare(t, "f4")
	e5 := mustSquare(t, "e5")
	if !pos.Pieces[chess.Black].Board(chess.Pawn).Has(f4) {
		t.Error("black pawn not on f4 after Apply")
	}
	if pos.Pieces[chess.Black].Board(chess.Pawn).Has(e5) {
		t.Error("black pawn still on e5 after Apply")
	}
	if pos.Pieces[chess.White].Board(chess.Pawn).Has(f4) {
		t.Error("white pawn still on f4 after Apply")
	}
	if pos.Occupancy[chess.White].Has(f4) || !pos.Occupancy[chess.Black].Has(f4) {
		t.Error("occupancy not updated for the capture")
	}
	for c := chess.White; c < chess.NumColours; c++ {
		testutil.AssertBoard(t, uint64(pos.Occupancy[c]), uint64(pos.Pieces[c].Combine()), "%s occupancy after Apply", c)
	}
	if len(pos.History) != 1 || pos.History[0] != mv {
		t.Errorf("History = %v; want [%v]", pos.History, mv)
	}
	if pos.Side != chess.Black || pos.Halfmove != 0 || !pos.HasEnPassant {
		t.Error("Apply changed side, clocks or en passant")
	}

	undone, err := pos.Undo()
	testutil.AssertNoError(t, err, "Undo()")
	if undone != mv {
		t.Errorf("Undo() = %v; want %v", undone, mv)
	}

	testutil.AssertEqual(t, pos, before, "position after apply/undo")
}

func TestApplyUndo_QuietMove(t *testing.T) {
	pos := mustDecode(t, testutil.StartFEN)
	before := pos.Clone()

	mv := chess.Move{From: mustSquare(t, "g1"), To: mustSquare(t, "f3"), Piece: chess.Knight}
	pos.Apply(mv)

	if _, pt, ok := pos.PieceAt(mustSquare(t, "f3")); !ok || pt != chess.Knight {
		t.Errorf("PieceAt(f3) = (%v, %v); want Knight", pt, ok)
	}
	if _, _, ok := pos.PieceAt(mustSquare(t, "g1")); ok {
		t.Error("g1 still occupied after Apply")
	}

	if _, err := pos.Undo(); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	testutil.AssertEqual(t, pos, before)
}

func TestApplyUndo_Sequence(t *testing.T) {
	pos := mustDecode(t, testutil.StartFEN)
	before := pos.Clone()

	moves := []chess.Move{
		{From: mustSquare(t, "e2"), To: mustSquare(t, "e4"), Piece: chess.Pawn},
		{From: mustSquare(t, "d1"), To: mustSquare(t, "h5"), Piece: chess.Queen},
		{From: mustSquare(t, "h5"), To: mustSquare(t, "f7"), Piece: chess.Queen, Change: chess.Capturing(chess.Pawn)},
	}
	for _, mv := range moves {
		testutil.AssertNoError(t, pos.CheckMove(mv), "CheckMove(%v)", mv)
		pos.Apply(mv)
	}
	if got := len(pos.History); got != len(moves) {
		t.Fatalf("len(History) = %d; want %d", got, len(moves))
	}

	for i := len(moves) - 1; i >= 0; i-- {
		mv, err := pos.Undo()
		if err != nil {
			t.Fatalf("Undo() #%d failed: %v", i, err)
		}
		if mv != moves[i] {
			t.Errorf("Undo() #%d = %v; want %v", i, mv, moves[i])
		}
	}
	testutil.AssertEqual(t, pos, before)
}

// TestApplyUndo_RoundTripAllTargets applies every placement-valid move to
// each attacked square for the side to move, and checks that undo restores
// the position exactly.
func TestApplyUndo_RoundTripAllTargets(t *testing.T) {
	for _, fen := range testutil.Fixtures {
		pos := mustDecode(t, fen)
		before := pos.Clone()
		mover, opponent := pos.Side, pos.Side.Opposite()

		for _, pt := range chess.PieceTypes {
			for _, from := range pos.Pieces[mover].Board(pt).SquareList() {
				targets := pos.Attacks[mover].Board(pt) &^ pos.Occupancy[mover]
				for _, to := range targets.SquareList() {
					mv := chess.Move{From: from, To: to, Piece: pt}
					if victim, ok := pos.Pieces[opponent].PieceAt(to.File, to.Rank); ok {
						mv.Change = chess.Capturing(victim)
					}
					if err := pos.CheckMove(mv); err != nil {
						t.Fatalf("%s: CheckMove(%v) failed: %v", fen, mv, err)
					}

					pos.Apply(mv)
					if _, err := pos.Undo(); err != nil {
						t.Fatalf("%s: Undo() after %v failed: %v", fen, mv, err)
					}
					testutil.AssertEqual(t, pos, before, "%s: %v", fen, mv)
				}
			}
		}
	}
}

func TestUndo_EmptyHistory(t *testing.T) {
	pos := mustDecode(t, testutil.StartFEN)
	before := pos.Clone()

	_, err := pos.Undo()
	testutil.AssertErrorIs(t, err, errors.ErrEmptyHistory)
	testutil.AssertEqual(t, pos, before, "failed Undo must not change the position")
}

func TestCheckMove(t *testing.T) {
	pos := mustDecode(t, testutil.ViennaFEN)

	tests := []struct {
		name    string
		move    chess.Move
		wantErr bool
	}{
		{"pawn capture", chess.Move{From: mustSquare(t, "e5"), To: mustSquare(t, "f4"), Piece: chess.Pawn, Change: chess.Capturing(chess.Pawn)}, false},
		{"knight to empty square", chess.Move{From: mustSquare(t, "f6"), To: mustSquare(t, "g4"), Piece: chess.Knight}, false},
		{"wrong piece type", chess.Move{From: mustSquare(t, "e5"), To: mustSquare(t, "e4"), Piece: chess.Knight}, true},
		{"white piece while black to move", chess.Move{From: mustSquare(t, "c3"), To: mustSquare(t, "d5"), Piece: chess.Knight}, true},
		{"onto own piece", chess.Move{From: mustSquare(t, "f6"), To: mustSquare(t, "h7"), Piece: chess.Knight}, true},
		{"capture on empty square", chess.Move{From: mustSquare(t, "f6"), To: mustSquare(t, "g4"), Piece: chess.Knight, Change: chess.Capturing(chess.Pawn)}, true},
		{"capture of wrong type", chess.Move{From: mustSquare(t, "f6"), To: mustSquare(t, "e4"), Piece: chess.Knight, Change: chess.Capturing(chess.Knight)}, true},
		{"undeclared capture", chess.Move{From: mustSquare(t, "f6"), To: mustSquare(t, "e4"), Piece: chess.Knight}, true},
		{"same square", chess.Move{From: mustSquare(t, "f6"), To: mustSquare(t, "f6"), Piece: chess.Knight}, true},
		{"off the board", chess.Move{From: mustSquare(t, "f6"), To: chess.NewSquare(8, 5), Piece: chess.Knight}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pos.CheckMove(tt.move)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestMoveFromCoordinates(t *testing.T) {
	pos := mustDecode(t, testutil.ViennaFEN)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"pawn capture", "e5f4", "Pe5xf4", nil},
		{"knight capture", "f6e4", "Nf6xe4", nil},
		{"quiet knight move", "f6g4", "Nf6g4", nil},
		{"opponent piece", "c3d5", "", errors.ErrIllegalMove},
		{"empty origin", "d4d3", "", errors.ErrIllegalMove},
		{"onto own piece", "f6h7", "", errors.ErrIllegalMove},
		{"too short", "e5", "", errors.ErrInvalidFormat},
		{"off the board", "e5f9", "", errors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := pos.MoveFromCoordinates(tt.input)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			testutil.AssertNoError(t, err)
			if got := m.String(); got != tt.want {
				t.Errorf("MoveFromCoordinates(%q) = %s; want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAttackMaps(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		piece  chess.PieceType
		want   uint64
	}{
		{"lone king d5", testutil.LoneKingsFEN, chess.White, chess.King, 30872694685696},
		{"lone king g3", testutil.LoneKingsFEN, chess.Black, chess.King, 3768639488},
		{"corner king a8", testutil.CornerKingsFEN, chess.White, chess.King, 144959613005987840},
		{"corner king h1", testutil.CornerKingsFEN, chess.Black, chess.King, 49216},
		{"boxed-in king a8", "KR6/RR6/8/8/8/8/8/7k w - - 0 1", chess.White, chess.King, 144959613005987840},
		{"rook f7 blockers", testutil.RookBlockersFEN, chess.White, chess.Rook, 2367802826440048640},
		{"rook d4 rank blockers", testutil.RankBlockersFEN, chess.White, chess.Rook, 578721384550107144},
		{"bishop e6", "8/3k4/4B3/8/8/7K/8/8 w - - 0 1", chess.White, chess.Bishop, 4622945190443876608},
		{"queen e6", "8/8/1k2Q3/8/2N5/4K3/8/8 w - - 0 1", chess.White, chess.Queen, 6068862423586045952},
		{"knight e4", "8/8/8/8/k1q1N3/8/8/3K4 w - - 0 1", chess.White, chess.Knight, 44272527353856},
		{"knight b2", "8/8/8/8/k1q5/8/1N6/3K4 w - - 0 1", chess.White, chess.Knight, 84410376},
		{"black queen c4", "8/8/8/8/k1q1N3/8/8/3K4 w - - 0 1", chess.Black, chess.Queen, 4910072644068316452},
		{"white pawns", "2K2k2/1P1P1P2/5p2/8/8/8/8/8 w - - 0 1", chess.White, chess.Pawn, 6124895493223874560},
		{"black pawn", "2K2k2/1P1P1P2/5p2/8/8/8/8/8 w - - 0 1", chess.Black, chess.Pawn, 343597383680},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			testutil.AssertBoard(t, uint64(pos.Attacks[tt.colour].Board(tt.piece)), tt.want)
		})
	}
}

func TestAttackAll(t *testing.T) {
	pos := mustDecode(t, testutil.LoneKingsFEN)
	testutil.AssertBoard(t, uint64(pos.AttackAll[chess.White]), 30872694685696, "white")
	testutil.AssertBoard(t, uint64(pos.AttackAll[chess.Black]), 3768639488, "black")

	for _, fen := range testutil.Fixtures {
		pos := mustDecode(t, fen)
		for c := chess.White; c < chess.NumColours; c++ {
			testutil.AssertBoard(t, uint64(pos.AttackAll[c]), uint64(pos.Attacks[c].Combine()), "%s %s", fen, c)
		}
	}
}

func TestRecomputeAttacks_AfterApply(t *testing.T) {
	pos := mustDecode(t, testutil.StartFEN)
	stale := pos.AttackAll[chess.White]

	pos.Apply(chess.Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e4"), Piece: chess.Pawn})
	if pos.AttackAll[chess.White] != stale {
		t.Error("Apply must not touch the attack maps")
	}

	pos.RecomputeAttacks()
	fresh := mustDecode(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertEqual(t, pos.Attacks, fresh.Attacks)
	testutil.AssertEqual(t, pos.AttackAll, fresh.AttackAll)

	if !pos.IsAttacked(mustSquare(t, "d5"), chess.White) {
		t.Error("d5 should be attacked by the e4 pawn")
	}
	if pos.IsAttacked(mustSquare(t, "e5"), chess.White) {
		t.Error("e5 is a push square and should not be attacked")
	}
}

func TestPlace(t *testing.T) {
	pos := New()
	pos.Place(chess.White, chess.King, mustSquare(t, "d5"))
	pos.Place(chess.Black, chess.King, mustSquare(t, "g3"))
	pos.RecomputeAttacks()

	decoded := mustDecode(t, testutil.LoneKingsFEN)
	testutil.AssertEqual(t, pos, decoded)
}

func TestPieceAt(t *testing.T) {
	pos := mustDecode(t, testutil.StartFEN)

	colour, pt, ok := pos.PieceAt(mustSquare(t, "d8"))
	if !ok || colour != chess.Black || pt != chess.Queen {
		t.Errorf("PieceAt(d8) = (%v, %v, %v); want (Black, Queen, true)", colour, pt, ok)
	}
	if _, _, ok := pos.PieceAt(mustSquare(t, "e4")); ok {
		t.Error("PieceAt(e4) ok = true on the starting position")
	}
	if got := pos.Occupied().Count(); got != 32 {
		t.Errorf("Occupied().Count() = %d; want 32", got)
	}
}

func TestClone_Independent(t *testing.T) {
	pos := mustDecode(t, testutil.StartFEN)
	clone := pos.Clone()

	clone.Apply(chess.Move{From: mustSquare(t, "b1"), To: mustSquare(t, "c3"), Piece: chess.Knight})
	if len(pos.History) != 0 {
		t.Error("Apply on a clone changed the original history")
	}
	if pos.Pieces[chess.White] == clone.Pieces[chess.White] {
		t.Error("Apply on a clone did not diverge from the original")
	}
}

func TestGameState(t *testing.T) {
	tests := []struct {
		state GameState
		want  string
	}{
		{GameState{Kind: Normal}, "normal"},
		{GameState{Kind: InCheck, Colour: chess.Black}, "Black in check"},
		{GameState{Kind: Draw}, "draw"},
		{GameState{Kind: Won, Colour: chess.White}, "White won"},
		{GameState{Kind: GameStateKind(9)}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%+v.String() = %q; want %q", tt.state, got, tt.want)
		}
	}

	if got := mustDecode(t, testutil.ViennaFEN).State; got.Kind != Normal {
		t.Errorf("decoded State = %v; want normal", got)
	}
}
