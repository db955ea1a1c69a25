package engine

import (
	"fmt"
	"io"
	"strings"

	"chesscore/board"
	"github.com/notnil/chess"
)

// Difficulty selects the nominal search depth.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
)

var difficultyDepth = [...]int{Easy: 3, Medium: 5, Hard: 6, VeryHard: 7}

// Depth returns the search depth in plies for the level.
func (d Difficulty) Depth() int {
	if d < Easy || d > VeryHard {
		return difficultyDepth[Medium]
	}
	return difficultyDepth[d]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case VeryHard:
		return "very hard"
	}
	return "medium"
}

// bookHalfmoveLimit disables the books once the game has gone this many
// plies without a capture or pawn move.
const bookHalfmoveLimit = 90

// PiecesTaken counts captured pieces by the captured piece's color and type.
type PiecesTaken [2][7]int

// HistoryEntry is one played move.
type HistoryEntry struct {
	Record board.MoveRecord
	SAN    string
	FEN    string
}

type gameSnapshot struct {
	pos      *board.Position
	hashes   []uint64
	line     []string
	moves    []HistoryEntry
	taken    PiecesTaken
	gameBook *GameBook
}

// Game drives a single game between a human and the engine: legal move
// entry, engine replies, books, history and single-level undo.
type Game struct {
	HumanPlayer board.Color
	PromoteTo   board.PieceType
	Difficulty  Difficulty
	// MaxDepth overrides the difficulty depth when positive.
	MaxDepth int
	UseBooks bool

	startFEN string
	pos      *board.Position
	hashes   []uint64
	line     []string
	moves    []HistoryEntry
	taken    PiecesTaken
	gameBook *GameBook
	books    []Book
	record   *chess.Game
	searcher *Searcher
	undo     *gameSnapshot
	last     SearchResult
}

// NewGame starts a game from fen, or from the standard position when fen is
// empty.
func NewGame(fen string) (*Game, error) {
	g := &Game{
		HumanPlayer: board.White,
		PromoteTo:   board.Queen,
		Difficulty:  Medium,
		UseBooks:    true,
		searcher:    NewSearcher(),
	}
	if err := g.SetBoard(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// SetBoard restarts the game from fen, keeping the settings and books.
func (g *Game) SetBoard(fen string) error {
	if strings.TrimSpace(fen) == "" {
		fen = board.FENStartPos
	}
	p, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.startFEN = p.ToFEN(false)
	g.pos = p
	g.hashes = []uint64{p.Hash()}
	g.pos.SetRepetitions(1)
	g.line = nil
	g.moves = nil
	g.taken = PiecesTaken{}
	g.gameBook = NewGameBook()
	g.undo = nil
	g.last = SearchResult{}
	g.searcher.ResetForNewGame()
	g.rebuildRecord()

	g.pos.ClassifyTerminal(g.pos.SideToMove())
	Evaluate(g.pos)
	return nil
}

// AddBook appends an opening book. Books are asked in the order added, before
// the book of the current game.
func (g *Game) AddBook(b Book) {
	g.books = append(g.books, b)
}

// SetParallel switches the parallel root search.
func (g *Game) SetParallel(on bool) {
	g.searcher.Parallel = on
}

// Depth returns the nominal search depth in plies.
func (g *Game) Depth() int {
	if g.MaxDepth > 0 {
		return g.MaxDepth
	}
	return g.Difficulty.Depth()
}

// ApplyUserMove plays a move for the side to move, promoting to PromoteTo.
// Illegal input leaves the game untouched. The position before the move
// becomes the undo point.
func (g *Game) ApplyUserMove(src, dst board.Square) (board.MoveRecord, error) {
	if g.IsGameOver() {
		return board.NullMove, ErrGameOver
	}
	snap := g.snapshot()
	rec, err := g.play(board.Move{Src: src, Dst: dst, Promo: g.PromoteTo})
	if err != nil {
		return board.NullMove, err
	}
	g.undo = snap
	return rec, nil
}

// ComputeEngineMove chooses and plays a move for the side to move, from the
// books when they know the position and by searching otherwise.
func (g *Game) ComputeEngineMove() (SearchResult, error) {
	if g.IsGameOver() || g.pos.ClassifyTerminal(g.pos.SideToMove()) {
		return SearchResult{}, ErrGameOver
	}

	res, ok := g.probeBooks()
	if !ok {
		var err error
		res, err = g.searcher.IterativeSearch(g.pos, g.Depth(), g.hashes)
		if err != nil {
			return res, err
		}
	}

	if _, err := g.play(board.Move{Src: res.Move.Src, Dst: res.Move.Dst, Promo: board.Queen}); err != nil {
		return res, fmt.Errorf("engine move %s: %w", res.Move, err)
	}
	g.last = res
	return res, nil
}

func (g *Game) probeBooks() (SearchResult, bool) {
	if !g.UseBooks || g.pos.HalfmoveClock() > bookHalfmoveLimit || g.pos.Repetitions() >= 2 {
		return SearchResult{}, false
	}
	books := append(append([]Book(nil), g.books...), g.gameBook)
	for _, b := range books {
		line := g.line
		if g.startFEN != board.FENStartPos {
			line = nil
		}
		m, ok := b.TryGetBookMove(g.pos, line)
		if !ok {
			continue
		}
		res := SearchResult{Move: m, FromBook: true}
		res.PV.Update(m, PVLine{})
		logger.Info().Str("move", m.String()).Msg("book move")
		return res, true
	}
	return SearchResult{}, false
}

// play applies a move for the side to move and updates the history.
func (g *Game) play(m board.Move) (board.MoveRecord, error) {
	before := g.pos.Clone()
	rec, err := g.pos.MakeLegalMove(m.Src, m.Dst, m.Promo)
	if err != nil {
		return board.NullMove, err
	}

	g.hashes = append(g.hashes, g.pos.Hash())
	g.pos.SetRepetitions(RepetitionCount(g.hashes, g.pos.HalfmoveClock()))
	g.line = append(g.line, rec.String())
	g.gameBook.Record(before, rec.Move())
	if rec.IsCapture() {
		g.taken[rec.Taken.Color][rec.Taken.Piece]++
	}

	g.pos.ClassifyTerminal(g.pos.SideToMove())
	Evaluate(g.pos)

	san := g.san(rec)
	switch {
	case g.pos.IsMated(g.pos.SideToMove()):
		san += "#"
	case g.pos.InCheck(g.pos.SideToMove()):
		san += "+"
	}
	g.moves = append(g.moves, HistoryEntry{Record: rec, SAN: san, FEN: g.pos.ToFEN(false)})
	return rec, nil
}

// san encodes rec in standard algebraic notation and advances the notation
// record. It falls back to coordinates when the record cannot follow.
func (g *Game) san(rec board.MoveRecord) string {
	if g.record == nil {
		return rec.String()
	}
	pos := g.record.Position()
	mv, err := chess.UCINotation{}.Decode(pos, rec.String())
	if err != nil {
		logger.Warn().Err(err).Str("move", rec.String()).Msg("notation record out of sync")
		g.record = nil
		return rec.String()
	}
	s := chess.AlgebraicNotation{}.Encode(pos, mv)
	if err := g.record.Move(mv); err != nil {
		g.record = nil
	}
	return strings.TrimRight(s, "+#")
}

func (g *Game) rebuildRecord() {
	g.record = nil
	opt, err := chess.FEN(g.startFEN)
	if err != nil {
		logger.Warn().Err(err).Str("fen", g.startFEN).Msg("notation record unavailable")
		return
	}
	rec := chess.NewGame(opt)
	for _, s := range g.line {
		mv, err := chess.UCINotation{}.Decode(rec.Position(), s)
		if err != nil {
			return
		}
		if err := rec.Move(mv); err != nil {
			return
		}
	}
	g.record = rec
}

func (g *Game) snapshot() *gameSnapshot {
	return &gameSnapshot{
		pos:      g.pos.Clone(),
		hashes:   append([]uint64(nil), g.hashes...),
		line:     append([]string(nil), g.line...),
		moves:    append([]HistoryEntry(nil), g.moves...),
		taken:    g.taken,
		gameBook: g.gameBook.Clone(),
	}
}

// Undo returns to the position before the last user move, taking back the
// engine reply as well. Only one level is kept.
func (g *Game) Undo() error {
	if g.undo == nil {
		return ErrNoUndo
	}
	s := g.undo
	g.pos, g.hashes, g.line, g.moves = s.pos, s.hashes, s.line, s.moves
	g.taken, g.gameBook = s.taken, s.gameBook
	g.undo = nil
	g.rebuildRecord()
	return nil
}

// IsGameOver reports mate, stalemate and every draw condition.
func (g *Game) IsGameOver() bool {
	p := g.pos
	return p.IsMated(board.White) || p.IsMated(board.Black) || g.IsDraw()
}

func (g *Game) IsDraw() bool {
	return g.DrawReason() != ""
}

// DrawReason names the draw condition that ended the game, or "".
func (g *Game) DrawReason() string {
	p := g.pos
	switch {
	case p.InsufficientMaterial():
		return "insufficient material"
	case p.Repetitions() >= 3:
		return "repetition"
	case p.FiftyMoveDraw():
		return "fifty move rule"
	case p.IsStaleMate():
		return "stalemate"
	}
	return ""
}

// Result returns the PGN result token.
func (g *Game) Result() string {
	switch {
	case g.pos.IsMated(board.Black):
		return "1-0"
	case g.pos.IsMated(board.White):
		return "0-1"
	case g.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}

func (g *Game) FEN(boardOnly bool) string { return g.pos.ToFEN(boardOnly) }
func (g *Game) WhoseMove() board.Color    { return g.pos.SideToMove() }
func (g *Game) Position() *board.Position { return g.pos.Clone() }
func (g *Game) PiecesTaken() PiecesTaken  { return g.taken }
func (g *Game) LastSearch() SearchResult  { return g.last }
func (g *Game) Moves() []HistoryEntry     { return append([]HistoryEntry(nil), g.moves...) }
func (g *Game) StartFEN() string          { return g.startFEN }
func (g *Game) Hashes() []uint64          { return append([]uint64(nil), g.hashes...) }

// SaveGame writes the game as PGN.
func (g *Game) SaveGame(w io.Writer) error {
	if g.record == nil {
		g.rebuildRecord()
		if g.record == nil {
			return fmt.Errorf("save game: no notation record for %q", g.startFEN)
		}
	}
	g.record.AddTagPair("Event", "chesscore game")
	g.record.AddTagPair("Result", g.Result())
	if g.startFEN != board.FENStartPos {
		g.record.AddTagPair("SetUp", "1")
		g.record.AddTagPair("FEN", g.startFEN)
	}
	_, err := io.WriteString(w, g.record.String())
	return err
}

// LoadGame replaces the game with one read from PGN.
func (g *Game) LoadGame(r io.Reader) error {
	opt, err := chess.PGN(r)
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	pg := chess.NewGame(opt)
	positions, moves := pg.Positions(), pg.Moves()
	if len(positions) == 0 {
		return fmt.Errorf("load game: empty game")
	}
	line := make([]string, len(moves))
	for i, mv := range moves {
		line[i] = chess.UCINotation{}.Encode(positions[i], mv)
	}
	if err := g.loadMoves(positions[0].String(), line); err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	return nil
}

// loadMoves replays line from fen on a scratch game and takes over its state
// only when every move is legal. Settings and books are kept.
func (g *Game) loadMoves(fen string, line []string) error {
	next, err := NewGame(fen)
	if err != nil {
		return err
	}
	for i, s := range line {
		m, err := board.ParseMove(s)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if _, err := next.play(m); err != nil {
			return fmt.Errorf("move %d %s: %w", i+1, s, err)
		}
	}

	g.startFEN = next.startFEN
	g.pos, g.hashes, g.line, g.moves = next.pos, next.hashes, next.line, next.moves
	g.taken = next.taken
	g.gameBook = next.gameBook
	g.record = next.record
	g.undo = nil
	g.last = SearchResult{}
	g.searcher.ResetForNewGame()
	return nil
}
