package board_test

import (
	"errors"
	"testing"

	"chesscore/board"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 3 20",
		"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 41",
	}
	for _, fen := range fens {
		p, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := p.ToFEN(false); got != fen {
			t.Errorf("round trip mismatch\n got  %s\n want %s", got, fen)
		}
	}
}

func TestFENBoardOnly(t *testing.T) {
	p := board.MustParseFEN(board.FENStartPos)
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
	if got := p.ToFEN(true); got != want {
		t.Fatalf("ToFEN(true) = %q, want %q", got, want)
	}
	again, err := board.ParseFEN(want)
	if err != nil {
		t.Fatalf("board-only FEN should parse: %v", err)
	}
	if again.HalfmoveClock() != 0 || again.FullmoveNumber() != 1 {
		t.Fatalf("default counters got %d %d want 0 1", again.HalfmoveClock(), again.FullmoveNumber())
	}
}

func TestFENAfterMoves(t *testing.T) {
	p := board.MustParseFEN(board.FENStartPos)
	play(t, p, "e2e4")
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := p.ToFEN(false); got != want {
		t.Fatalf("after e2e4\n got  %s\n want %s", got, want)
	}
	play(t, p, "g8f6")
	want = "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2"
	if got := p.ToFEN(false); got != want {
		t.Fatalf("after g8f6\n got  %s\n want %s", got, want)
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w kq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
	}
	for _, fen := range bad {
		if _, err := board.ParseFEN(fen); !errors.Is(err, board.ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in   string
		want board.Square
	}{
		{"a8", 0}, {"h8", 7}, {"a1", 56}, {"h1", 63}, {"e4", 36}, {"d5", 27},
	}
	for _, c := range cases {
		got, err := board.ParseSquare(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseSquare(%q) = %d, %v want %d", c.in, got, err, c.want)
		}
		if got.String() != c.in {
			t.Errorf("Square(%d).String() = %q want %q", got, got.String(), c.in)
		}
	}
	for _, in := range []string{"", "e", "e9", "i1", "e44"} {
		if sq, err := board.ParseSquare(in); err == nil || sq != board.NoSquare {
			t.Errorf("ParseSquare(%q) = %d, %v want invalid", in, sq, err)
		}
	}
}
