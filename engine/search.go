package engine

import (
	"time"

	"chesscore/board"
	"golang.org/x/exp/slices"
)

// Searcher owns the per-search mutable state: killers, counters and the
// repetition stack. A Searcher must not be shared between goroutines; the
// parallel root search gives every worker its own.
type Searcher struct {
	// Parallel fans the root children out to goroutines.
	Parallel bool

	killers KillerStruct
	states  stateStack
	stats   CutStatistics
	nodes   uint64
	qnodes  uint64

	bufs [MaxPly + 2][]move
}

// SearchResult describes the move chosen by IterativeSearch.
type SearchResult struct {
	Move      board.Move
	Score     Score
	Nodes     uint64
	QNodes    uint64
	Depth     int
	PV        PVLine
	RootMoves int
	Elapsed   time.Duration
	Cuts      CutStatistics
	FromBook  bool
}

func NewSearcher() *Searcher {
	s := &Searcher{}
	s.killers.ClearKillers()
	return s
}

// ResetForNewGame forgets the killers learned in the previous game.
func (s *Searcher) ResetForNewGame() {
	s.killers.ClearKillers()
}

// rootChild is a legal root move with its generated child position and the
// static score from the root mover's point of view.
type rootChild struct {
	move  board.Move
	pos   *board.Position
	score int
}

// IterativeSearch picks a move for the side to move in p. history holds the
// hashes of the game's positions oldest first; a root move that reaches any
// of them scores as a draw. depth is the nominal search depth in plies; the searched
// depth is adjusted for mobility and material.
func (s *Searcher) IterativeSearch(p *board.Position, depth int, history []uint64) (SearchResult, error) {
	start := time.Now()
	s.nodes, s.qnodes = 0, 0
	s.stats = CutStatistics{}
	s.states.reset(history, p)

	depth = Clamp(depth, 1, MaxPly/2)

	children, pieces := s.rootChildren(p)
	res := SearchResult{RootMoves: len(children)}
	if len(children) == 0 {
		return res, ErrNoMoves
	}

	finish := func(c *rootChild, value int) (SearchResult, error) {
		res.Move = c.move
		res.Score = ScoreFromInt(value)
		if len(res.PV.Moves) == 0 {
			res.PV.Update(c.move, PVLine{})
		}
		res.Nodes, res.QNodes = s.nodes, s.qnodes
		res.Cuts = s.stats
		res.Elapsed = time.Since(start)
		logger.Info().
			Str("move", c.move.String()).
			Str("score", res.Score.String()).
			Int("depth", res.Depth).
			Uint64("nodes", res.Nodes).
			Uint64("qnodes", res.QNodes).
			Str("pv", res.PV.String()).
			Dur("elapsed", res.Elapsed).
			Msg("search done")
		return res, nil
	}

	if len(children) == 1 {
		return finish(&children[0], children[0].score)
	}

	// Can I make an instant mate?
	for i := range children {
		c := &children[i]
		var pv PVLine
		value := -s.searchChild(c.pos, 1, -Infinity, Infinity, true, &pv)
		if value >= MateScore {
			res.Depth = 1
			res.PV.Update(c.move, pv)
			return finish(c, value)
		}
	}

	slices.SortStableFunc(children, func(a, b rootChild) bool { return a.score > b.score })

	depth--
	depth = modifyDepth(depth, len(children), pieces)
	res.Depth = depth + 1

	var (
		values []int
		pvs    []PVLine
	)
	if s.Parallel {
		values, pvs = s.searchRootParallel(children, depth, history)
	}

	alpha := -Infinity
	best := -1
	for i := range children {
		c := &children[i]
		var value int
		var pv PVLine
		if values != nil {
			value, pv = values[i], pvs[i]
		} else {
			value = -s.searchChild(c.pos, depth, -Infinity, -alpha, false, &pv)
		}

		if value >= MateScore {
			res.PV.Update(c.move, pv)
			return finish(c, value)
		}
		if occurrences(history, c.pos.Hash()) > 0 {
			s.stats.RepetitionDraws++
			value = 0
		}

		logger.Debug().
			Str("move", c.move.String()).
			Int("value", value).
			Int("static", c.score).
			Msg("root move")

		if value > alpha || best < 0 {
			alpha = value
			best = i
			res.PV.Update(c.move, pv)
		}
	}

	out, err := finish(&children[best], alpha)
	if alpha == 0 && occurrences(history, children[best].pos.Hash()) > 0 {
		out.Score = Score{Kind: Draw}
	}
	return out, err
}

// rootChildren plays every legal move of the side to move, evaluates the
// children and counts the pieces on the board.
func (s *Searcher) rootChildren(p *board.Position) ([]rootChild, int) {
	side := p.SideToMove()
	var children []rootChild
	for _, m := range p.PseudoMoves(side, nil) {
		child, ok := p.TryMove(m)
		if !ok {
			continue
		}
		score := sideScore(Evaluate(child), side)
		children = append(children, rootChild{move: m, pos: child, score: score})
	}
	return children, p.PieceCount()
}

func occurrences(history []uint64, hash uint64) int {
	n := 0
	for _, h := range history {
		if h == hash {
			n++
		}
	}
	return n
}

// modifyDepth deepens the search in narrow or simplified positions.
func modifyDepth(depth, possibleMoves, pieces int) int {
	if possibleMoves <= 20 || pieces < 14 {
		depth++
		if possibleMoves <= 10 || pieces < 6 {
			depth++
		}
	}
	return depth
}

// searchChild searches a root child with the repetition stack extended by
// it.
func (s *Searcher) searchChild(child *board.Position, depth, alpha, beta int, extended bool, pv *PVLine) int {
	s.states.push(child)
	child.SetRepetitions(s.states.repetitions())
	value := s.alphaBeta(child, depth, alpha, beta, 1, extended, pv)
	s.states.pop()
	return value
}

func (s *Searcher) alphaBeta(p *board.Position, depth, alpha, beta, ply int, extended bool, pvLine *PVLine) int {
	s.nodes++

	if p.FiftyMoveDraw() || p.Repetitions() >= 3 {
		return 0
	}

	inCheck := p.InCheck(board.White) || p.InCheck(board.Black)

	if depth == 0 {
		if !extended && inCheck {
			depth++
			extended = true
			s.stats.CheckExtensions++
		} else {
			return s.quiescence(p, alpha, beta, ply)
		}
	}

	side := p.SideToMove()
	if ply >= MaxPly {
		return sideScore(Evaluate(p), side)
	}

	moves := s.scoreMovesList(p, depth, s.bufs[ply])
	s.bufs[ply] = moves.moves

	if inCheck || len(moves.moves) == 0 {
		if p.ClassifyTerminal(side) {
			if p.IsMated(side) {
				return matedAt(ply)
			}
			return 0
		}
	}

	var childPVLine PVLine
	legal := 0
	for i := range moves.moves {
		orderNextMove(i, &moves)
		m := moves.moves[i].move

		child, ok := p.TryMove(m)
		if !ok {
			s.stats.IllegalMoves++
			continue
		}
		legal++

		s.states.push(child)
		child.SetRepetitions(s.states.repetitions())
		childPVLine.Clear()
		value := -s.alphaBeta(child, depth-1, -beta, -alpha, ply+1, extended, &childPVLine)
		s.states.pop()

		if value >= beta {
			s.killers.InsertKiller(m, depth)
			s.stats.BetaCutoffs++
			return beta
		}
		if value > alpha {
			alpha = value
			pvLine.Update(m, childPVLine)
		}
	}

	// Every candidate was illegal: stalemate.
	if legal == 0 {
		p.ClassifyTerminal(side)
		return 0
	}
	return alpha
}

func (s *Searcher) quiescence(p *board.Position, alpha, beta, ply int) int {
	s.qnodes++

	standPat := sideScore(Evaluate(p), p.SideToMove())
	if standPat >= beta {
		s.stats.QStandPatCutoffs++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= MaxPly {
		return alpha
	}

	var moves moveList
	if p.InCheck(board.White) || p.InCheck(board.Black) {
		moves = s.scoreMovesList(p, 0, s.bufs[ply])
	} else {
		moves = s.scoreMovesListCaptures(p, s.bufs[ply])
	}
	s.bufs[ply] = moves.moves

	if len(moves.moves) == 0 {
		return standPat
	}

	for i := range moves.moves {
		orderNextMove(i, &moves)
		m := moves.moves[i].move

		if seeSkip(p, m) {
			s.stats.SEESkips++
			continue
		}

		child, ok := p.TryMove(m)
		if !ok {
			s.stats.IllegalMoves++
			continue
		}

		value := -s.quiescence(child, -beta, -alpha, ply+1)

		if value >= beta {
			s.killers.InsertQuiescenceKiller(m)
			s.stats.QBetaCutoffs++
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}
