package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"chesscore/board"
	"chesscore/engine"
	"github.com/rs/zerolog"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	g, err := engine.NewGame("")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Difficulty = engine.Easy
	out := &bytes.Buffer{}
	return newXboard(g, out, zerolog.Nop()), out
}

func TestScriptedSession(t *testing.T) {
	cfg, err := parseFlags([]string{"-mode=test", "-seed=3"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	out := &bytes.Buffer{}
	s, err := newSession(cfg, out, zerolog.Nop())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	if failures := runScript(s, testScript); failures != 0 {
		t.Fatalf("%d scripted replies did not match, output:\n%s", failures, out.String())
	}
}

func TestRunStopsAtQuit(t *testing.T) {
	s, out := newTestSession(t)
	in := strings.NewReader("ping 1\n\nfen\nquit\nping 2\n")
	if err := s.run(in); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "pong 1\n") {
		t.Fatalf("missing pong 1 in %q", got)
	}
	if !strings.Contains(got, "# "+board.FENStartPos+"\n") {
		t.Fatalf("missing fen reply in %q", got)
	}
	if strings.Contains(got, "pong 2") {
		t.Fatalf("commands after quit were executed: %q", got)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"undo", "Error (cannot undo): nothing to undo"},
		{"sd x", "Error (invalid depth): x"},
		{"sd", "Error (missing depth): sd"},
		{"perft", "Error (missing depth): perft"},
		{"setboard 8/8/8 w - - 0 1", "Error (invalid position)"},
		{"frobnicate", "Error (unknown command): frobnicate"},
		{"e2e5", "Error (invalid move): e2e5"},
		{"i9j9", "Error (invalid square): i9j9"},
		{"load", "Error (missing path): load"},
	}
	for _, tt := range tests {
		s, _ := newTestSession(t)
		_, replies := s.apply(tt.cmd)
		if len(replies) != 1 || !strings.HasPrefix(replies[0], tt.want) {
			t.Errorf("%q: replies %q want prefix %q", tt.cmd, replies, tt.want)
		}
	}
}

func TestForceModeAndGo(t *testing.T) {
	s, _ := newTestSession(t)
	s.game.UseBooks = false

	for _, cmd := range []string{"force", "e2e4", "e7e5"} {
		if _, replies := s.apply(cmd); replies != nil {
			t.Fatalf("%s in force mode replied %q", cmd, replies)
		}
	}
	if got := s.game.WhoseMove(); got != board.White {
		t.Fatalf("side to move %v want White", got)
	}

	_, replies := s.apply("go")
	if len(replies) != 1 || !strings.HasPrefix(replies[0], "move ") {
		t.Fatalf("go replied %q", replies)
	}
	if s.game.HumanPlayer != board.Black {
		t.Fatalf("after go the human should play Black")
	}
}

func TestUserPromotionSuffix(t *testing.T) {
	s, _ := newTestSession(t)
	s.apply("setboard 8/P6k/8/8/8/8/8/K7 w - - 0 1")
	s.apply("force")
	if _, replies := s.apply("a7a8r"); replies != nil {
		t.Fatalf("promotion replied %q", replies)
	}
	if pc := s.game.Position().PieceAt(board.A8); pc.Type != board.Rook {
		t.Fatalf("a8 holds %v want Rook", pc.Type)
	}
	if s.game.PromoteTo != board.Queen {
		t.Fatalf("promotion choice leaked into the game settings")
	}
}

func TestStatsAfterSearch(t *testing.T) {
	s, _ := newTestSession(t)
	s.game.UseBooks = false
	s.apply("e2e4")
	_, replies := s.apply("stats")
	if len(replies) != 9 || replies[0] != "# Cut statistics:" {
		t.Fatalf("stats replied %q", replies)
	}
	if s.game.LastSearch().Nodes == 0 {
		t.Fatalf("engine reply did not search")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.pgn")
	s, _ := newTestSession(t)
	for _, cmd := range []string{"force", "e2e4", "e7e5", "g1f3"} {
		s.apply(cmd)
	}
	want := s.game.FEN(false)

	if _, replies := s.apply("save " + path); len(replies) != 1 || replies[0] != "# saved "+path {
		t.Fatalf("save replied %q", replies)
	}
	s.apply("new")
	if _, replies := s.apply("load " + path); len(replies) != 1 || replies[0] != "# loaded "+path {
		t.Fatalf("load replied %q", replies)
	}
	if got := s.game.FEN(false); got != want {
		t.Fatalf("loaded FEN %q want %q", got, want)
	}
}

func TestShowRendersBoard(t *testing.T) {
	s, out := newTestSession(t)
	if err := s.run(strings.NewReader("show\nquit\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"a  b  c  d  e  f  g  h", "White to move", board.FENStartPos} {
		if !strings.Contains(got, want) {
			t.Errorf("board output lacks %q:\n%s", want, got)
		}
	}
}

func TestPieceGlyph(t *testing.T) {
	p := board.MustParseFEN(board.FENStartPos)
	tests := []struct {
		sq   board.Square
		want string
	}{
		{board.E1, "K"},
		{board.D8, "q"},
		{board.SquareAt(4, 3), " "},
	}
	for _, tt := range tests {
		if got := pieceGlyph(p.PieceAt(tt.sq)); got != tt.want {
			t.Errorf("glyph on %s = %q want %q", tt.sq, got, tt.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.mode != "bot" || cfg.logLevel != "info" || !cfg.eco || cfg.depth != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if _, err := parseFlags([]string{"-mode=gui"}); err == nil {
		t.Fatalf("unknown mode accepted")
	}
}
