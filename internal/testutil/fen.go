package testutil

// FEN fixtures shared by tests across packages.
const (
	// StartFEN is the standard starting position.
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// ViennaFEN is a King's Gambit style position with Black to move;
	// e5xf4 captures a pawn.
	ViennaFEN = "rnbqkb1r/pppp1ppp/5n2/4p3/4PP2/2N5/PPPP2PP/R1BQKBNR b KQkq f3 0 3"

	// LoneKingsFEN has a white king on d5 and a black king on g3.
	LoneKingsFEN = "8/8/8/3K4/8/6k1/8/8 w - - 0 1"

	// CornerKingsFEN has the kings on a8 and h1.
	CornerKingsFEN = "K7/8/8/8/8/8/8/7k w - - 0 1"

	// RookBlockersFEN has a white rook on f7 between a white bishop on c7,
	// a white king on f8 and a black king on f3.
	RookBlockersFEN = "7K/2B2R2/8/8/8/5k2/8/8 w - - 0 1"

	// RankBlockersFEN has a white rook on d4 with a white pawn on b4 and a
	// black knight on g4.
	RankBlockersFEN = "8/8/8/8/1P1R2n1/8/8/k6K w - - 0 1"

	// ShortRankFEN has a third rank covering only seven files.
	ShortRankFEN = "rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// ShortBackRankFEN has a black back rank covering only seven files.
	ShortBackRankFEN = "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// MissingSeparatorFEN joins the last two ranks so the second rank
	// overflows past eight files.
	MissingSeparatorFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPPRNBQKBNR w KQkq - 0 1"
)

// Fixtures lists FENs that decode successfully, for round-trip tests.
var Fixtures = []string{
	StartFEN,
	ViennaFEN,
	LoneKingsFEN,
	CornerKingsFEN,
	RookBlockersFEN,
	RankBlockersFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
	"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 5",
}
