package board_test

import (
	"testing"

	"chesscore/board"
)

func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		nodes []uint64 // indexed by depth-1
	}{
		{"start", board.FENStartPos, []uint64{20, 400, 8902, 197281}},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
		{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812, 43238}},
		{"promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", []uint64{24, 496, 9483}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := board.MustParseFEN(c.fen)
			for i, want := range c.nodes {
				depth := i + 1
				if depth >= 3 && testing.Short() {
					break
				}
				if got := board.Perft(p, depth); got != want {
					t.Fatalf("perft(%d) got %d want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerftDivideSums(t *testing.T) {
	p := board.MustParseFEN(board.FENStartPos)
	div := board.PerftDivide(p, 2)
	if len(div) != 20 {
		t.Fatalf("divide has %d root moves want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 400 {
		t.Fatalf("divide sum got %d want 400", sum)
	}
}

func TestVerifyPerftAgainstReference(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		p := board.MustParseFEN(fen)
		if bad := board.VerifyPerft(p, 2); len(bad) != 0 {
			t.Errorf("%s: mismatches %v", fen, bad)
		}
	}
}

func TestPerftLeavesPositionUntouched(t *testing.T) {
	p := board.MustParseFEN(board.FENStartPos)
	before := p.ToFEN(false)
	board.Perft(p, 3)
	if p.ToFEN(false) != before {
		t.Fatalf("perft mutated the root position")
	}
}
