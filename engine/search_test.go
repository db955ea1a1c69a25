package engine_test

import (
	"errors"
	"testing"

	"chesscore/board"
	"chesscore/engine"
)

func search(t *testing.T, fen string, depth int) engine.SearchResult {
	t.Helper()
	p := board.MustParseFEN(fen)
	res, err := engine.NewSearcher().IterativeSearch(p, depth, nil)
	if err != nil {
		t.Fatalf("IterativeSearch(%s): %v", fen, err)
	}
	return res
}

func TestSearchFindsMateInOne(t *testing.T) {
	cases := []struct {
		name, fen, want string
	}{
		{"white back rank", "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", "a1a8"},
		{"black back rank", "r5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1", "a8a1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := search(t, c.fen, 3)
			if res.Move.String() != c.want {
				t.Fatalf("move got %s want %s", res.Move, c.want)
			}
			if res.Score.Kind != engine.Mate || res.Score.Value != 1 {
				t.Fatalf("score got %s want mate 1", res.Score)
			}
		})
	}
}

func TestSearchWinsHangingQueen(t *testing.T) {
	res := search(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", 3)
	if res.Move.String() != "d2d5" {
		t.Fatalf("move got %s want d2d5 (pv %s)", res.Move, res.PV)
	}
	if res.Nodes == 0 || res.QNodes == 0 {
		t.Fatalf("node counters not filled: %d %d", res.Nodes, res.QNodes)
	}
	if res.PV.GetPVMove() != res.Move {
		t.Fatalf("pv %s does not start with %s", res.PV, res.Move)
	}
}

func TestSearchSingleMove(t *testing.T) {
	res := search(t, "k7/8/8/8/8/8/1r6/K7 w - - 0 1", 5)
	if res.RootMoves != 1 || res.Move.String() != "a1b2" {
		t.Fatalf("got %s with %d root moves, want the only move a1b2", res.Move, res.RootMoves)
	}
}

func TestSearchNoMoves(t *testing.T) {
	p := board.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if _, err := engine.NewSearcher().IterativeSearch(p, 3, nil); !errors.Is(err, engine.ErrNoMoves) {
		t.Fatalf("stalemated side: error = %v, want ErrNoMoves", err)
	}
}

func TestSearchLeavesRootUntouched(t *testing.T) {
	p := board.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := p.ToFEN(false)
	if _, err := engine.NewSearcher().IterativeSearch(p, 2, nil); err != nil {
		t.Fatalf("search: %v", err)
	}
	if p.ToFEN(false) != before {
		t.Fatalf("search changed the root position")
	}
}

func TestParallelSearchAgreesWithSequential(t *testing.T) {
	fens := []string{
		"4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p := board.MustParseFEN(fen)

		seq, err := engine.NewSearcher().IterativeSearch(p, 2, nil)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		ps := engine.NewSearcher()
		ps.Parallel = true
		par, err := ps.IterativeSearch(p, 2, nil)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if seq.Move != par.Move || seq.Score != par.Score {
			t.Errorf("%s: sequential %s (%s), parallel %s (%s)", fen, seq.Move, seq.Score, par.Move, par.Score)
		}
	}
}

func TestScoreStrings(t *testing.T) {
	cases := []struct {
		raw  int
		want string
	}{
		{35, "cp 35"},
		{-120, "cp -120"},
		{engine.MateScore + engine.MaxPly - 1, "mate 1"},
		{engine.MateScore + engine.MaxPly - 3, "mate 2"},
		{-(engine.MateScore + engine.MaxPly - 2), "mate -1"},
	}
	for _, c := range cases {
		if got := engine.ScoreFromInt(c.raw).String(); got != c.want {
			t.Errorf("ScoreFromInt(%d) = %q want %q", c.raw, got, c.want)
		}
	}
}

func playLine(t *testing.T, fen string, moves ...string) (*board.Position, []uint64) {
	t.Helper()
	p := board.MustParseFEN(fen)
	history := []uint64{p.Hash()}
	for _, s := range moves {
		m, err := board.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", s, err)
		}
		next, ok := p.TryMove(m)
		if !ok {
			t.Fatalf("%s is illegal in %s", s, p)
		}
		p = next
		history = append(history, p.Hash())
	}
	return p, history
}

func TestRootMoveRepeatingHistoryScoresZero(t *testing.T) {
	root, history := playLine(t, board.FENStartPos, "g1f3", "g8f6", "f3g1", "f6g8")
	res, err := engine.NewSearcher().IterativeSearch(root, 2, history)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cuts.RepetitionDraws == 0 {
		t.Fatalf("g1f3 returns to an earlier position, no repetition draw counted (move %s, %s)",
			res.Move, res.Score)
	}
}

func TestLosingSideTakesRepetitionDraw(t *testing.T) {
	root := board.MustParseFEN("3k4/8/8/8/8/8/q7/5N1K w - - 0 1")
	m, _ := board.ParseMove("f1g3")
	seen, ok := root.TryMove(m)
	if !ok {
		t.Fatal("f1g3 rejected")
	}
	history := []uint64{seen.Hash(), root.Hash()}

	res, err := engine.NewSearcher().IterativeSearch(root, 2, history)
	if err != nil {
		t.Fatal(err)
	}
	if res.Move.String() != "f1g3" {
		t.Fatalf("queen down, got %s (%s) want the repeating f1g3", res.Move, res.Score)
	}
	if res.Score.Kind != engine.Draw {
		t.Fatalf("score %s, want a draw", res.Score)
	}
	if res.Cuts.RepetitionDraws != 1 {
		t.Fatalf("repetition draws %d want 1", res.Cuts.RepetitionDraws)
	}
}
