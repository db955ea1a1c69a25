package engine_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chesscore/board"
	"chesscore/engine"
)

func newGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGame(fen)
	if err != nil {
		t.Fatalf("NewGame(%q): %v", fen, err)
	}
	return g
}

func playMoves(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := board.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if _, err := g.ApplyUserMove(m.Src, m.Dst); err != nil {
			t.Fatalf("ApplyUserMove(%s): %v", s, err)
		}
	}
}

func TestGameDefaults(t *testing.T) {
	g := newGame(t, "")
	if g.FEN(false) != board.FENStartPos {
		t.Fatalf("start FEN got %s", g.FEN(false))
	}
	if g.HumanPlayer != board.White || g.PromoteTo != board.Queen || g.Difficulty != engine.Medium {
		t.Fatalf("unexpected defaults %v %v %v", g.HumanPlayer, g.PromoteTo, g.Difficulty)
	}
	if g.Depth() != 5 {
		t.Fatalf("medium depth got %d want 5", g.Depth())
	}
	for d, want := range map[engine.Difficulty]int{engine.Easy: 3, engine.Medium: 5, engine.Hard: 6, engine.VeryHard: 7} {
		if d.Depth() != want {
			t.Errorf("%s depth got %d want %d", d, d.Depth(), want)
		}
	}
}

func TestGameRejectsIllegalMoveWithoutChange(t *testing.T) {
	g := newGame(t, "")
	m, _ := board.ParseMove("e2e5")
	if _, err := g.ApplyUserMove(m.Src, m.Dst); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("e2e5 error = %v, want ErrIllegalMove", err)
	}
	if g.FEN(false) != board.FENStartPos || len(g.Moves()) != 0 {
		t.Fatalf("illegal move changed the game")
	}
	if err := g.Undo(); !errors.Is(err, engine.ErrNoUndo) {
		t.Fatalf("undo without a move: %v", err)
	}
}

func TestGameSANHistoryAndMate(t *testing.T) {
	g := newGame(t, "")
	playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	var sans []string
	for _, e := range g.Moves() {
		sans = append(sans, e.SAN)
	}
	if got := strings.Join(sans, " "); got != "f3 e5 g4 Qh4#" {
		t.Fatalf("SAN history got %q", got)
	}
	if !g.IsGameOver() || g.IsDraw() || g.Result() != "0-1" {
		t.Fatalf("want Black to have mated: over=%v draw=%v result=%s", g.IsGameOver(), g.IsDraw(), g.Result())
	}
	if _, err := g.ComputeEngineMove(); !errors.Is(err, engine.ErrGameOver) {
		t.Fatalf("engine move after mate: %v", err)
	}
}

func TestGameCapturesAndCheckSuffix(t *testing.T) {
	g := newGame(t, "")
	playMoves(t, g, "e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5e5")
	taken := g.PiecesTaken()
	if taken[board.White][board.Pawn] != 1 || taken[board.Black][board.Pawn] != 1 {
		t.Fatalf("captured counters %v", taken)
	}
	moves := g.Moves()
	if moves[2].SAN != "exd5" || moves[5].SAN != "Qe5+" {
		t.Fatalf("SAN got %q and %q", moves[2].SAN, moves[5].SAN)
	}
}

func TestGameThreefoldRepetition(t *testing.T) {
	g := newGame(t, "")
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	playMoves(t, g, shuffle...)
	if g.IsGameOver() {
		t.Fatalf("second occurrence is not a draw yet")
	}
	playMoves(t, g, shuffle...)
	if !g.IsDraw() || g.DrawReason() != "repetition" {
		t.Fatalf("want draw by repetition, got %q", g.DrawReason())
	}
	m, _ := board.ParseMove("g1f3")
	if _, err := g.ApplyUserMove(m.Src, m.Dst); !errors.Is(err, engine.ErrGameOver) {
		t.Fatalf("move after the draw: %v", err)
	}
}

func TestGameDrawReasons(t *testing.T) {
	cases := []struct {
		fen, move, reason string
	}{
		{"4k3/8/8/8/8/8/8/4K2R w - - 99 80", "h1h2", "fifty move rule"},
		{"7k/4Q3/6K1/8/8/8/8/8 w - - 0 1", "e7f7", "stalemate"},
		{"4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1d2", "insufficient material"},
	}
	for _, c := range cases {
		g := newGame(t, c.fen)
		playMoves(t, g, c.move)
		if g.DrawReason() != c.reason || !g.IsGameOver() || g.Result() != "1/2-1/2" {
			t.Errorf("%s %s: reason %q over %v", c.fen, c.move, g.DrawReason(), g.IsGameOver())
		}
	}
}

func TestGameEngineReplyAndUndo(t *testing.T) {
	g := newGame(t, "")
	g.Difficulty = engine.Easy
	g.UseBooks = false
	playMoves(t, g, "e2e4")

	res, err := g.ComputeEngineMove()
	if err != nil {
		t.Fatalf("engine move: %v", err)
	}
	if res.FromBook || res.Nodes == 0 {
		t.Fatalf("expected a searched move, got %+v", res)
	}
	if g.WhoseMove() != board.White || len(g.Moves()) != 2 {
		t.Fatalf("engine reply not played")
	}

	if err := g.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if g.FEN(false) != board.FENStartPos || len(g.Moves()) != 0 {
		t.Fatalf("undo should restore the start position, got %s", g.FEN(false))
	}
	if err := g.Undo(); !errors.Is(err, engine.ErrNoUndo) {
		t.Fatalf("second undo: %v", err)
	}
}

func TestGameEngineMatesInOne(t *testing.T) {
	g := newGame(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	g.UseBooks = false
	g.Difficulty = engine.Easy
	if _, err := g.ComputeEngineMove(); err != nil {
		t.Fatalf("engine move: %v", err)
	}
	if g.Result() != "1-0" {
		t.Fatalf("engine should mate, result %s fen %s", g.Result(), g.FEN(false))
	}
	if last := g.Moves()[0].SAN; last != "Ra8#" {
		t.Fatalf("SAN got %q want Ra8#", last)
	}
}

func TestGameUserPromotion(t *testing.T) {
	g := newGame(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	g.PromoteTo = board.Knight
	playMoves(t, g, "a7a8")
	if !strings.HasPrefix(g.FEN(true), "N7/") {
		t.Fatalf("promotion to knight failed: %s", g.FEN(true))
	}
	if san := g.Moves()[0].SAN; san != "a8=N" {
		t.Fatalf("SAN got %q want a8=N", san)
	}
}

func TestGamePGNRoundTrip(t *testing.T) {
	g := newGame(t, "")
	playMoves(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1b5")

	var buf bytes.Buffer
	if err := g.SaveGame(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.Contains(buf.String(), "Nf3") {
		t.Fatalf("PGN lacks SAN moves:\n%s", buf.String())
	}

	loaded := newGame(t, "")
	if err := loaded.LoadGame(&buf); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.FEN(false) != g.FEN(false) {
		t.Fatalf("loaded FEN %s want %s", loaded.FEN(false), g.FEN(false))
	}
	if len(loaded.Moves()) != 5 {
		t.Fatalf("loaded %d moves want 5", len(loaded.Moves()))
	}
}
