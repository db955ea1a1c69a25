package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strings"

	"chesscore/board"
	"github.com/notnil/chess"
	"github.com/notnil/chess/opening"
	"golang.org/x/exp/slices"
)

// Book proposes a move for a position without searching. line holds the
// coordinate moves played since the game's starting position.
type Book interface {
	TryGetBookMove(p *board.Position, line []string) (board.Move, bool)
}

// bookKey identifies a position independently of its move counters.
func bookKey(p *board.Position) string {
	return p.ToFEN(true)
}

// pickLegal returns a random candidate that is legal in p.
func pickLegal(p *board.Position, candidates []string, rng *rand.Rand) (board.Move, bool) {
	order := rng.Perm(len(candidates))
	for _, i := range order {
		m, err := board.ParseMove(candidates[i])
		if err != nil {
			continue
		}
		if playable(p, m) {
			return m, true
		}
	}
	return board.Move{}, false
}

// ECOBook answers from the ECO opening classification shipped with
// notnil/chess. It only knows games that started from the standard position.
type ECOBook struct {
	eco   *opening.BookECO
	rng   *rand.Rand
	cache map[string][]string
}

func NewECOBook(seed int64) *ECOBook {
	return &ECOBook{
		eco:   opening.NewBookECO(),
		rng:   rand.New(rand.NewSource(seed)),
		cache: make(map[string][]string),
	}
}

func (b *ECOBook) TryGetBookMove(p *board.Position, line []string) (board.Move, bool) {
	if len(line) == 0 && p.ToFEN(false) != board.FENStartPos {
		return board.Move{}, false
	}
	key := strings.Join(line, " ")
	candidates, ok := b.cache[key]
	if !ok {
		candidates = b.continuations(line)
		b.cache[key] = candidates
	}
	m, ok := pickLegal(p, candidates, b.rng)
	if ok {
		logger.Debug().Str("move", m.String()).Int("candidates", len(candidates)).Msg("eco book move")
	}
	return m, ok
}

// continuations lists the distinct next moves of every ECO opening that
// extends line.
func (b *ECOBook) continuations(line []string) []string {
	g := chess.NewGame()
	for _, s := range line {
		mv, err := chess.UCINotation{}.Decode(g.Position(), s)
		if err != nil {
			return nil
		}
		if err := g.Move(mv); err != nil {
			return nil
		}
	}

	var candidates []string
	seen := make(map[string]bool)
	for _, o := range b.eco.Possible(g.Moves()) {
		og := o.Game()
		moves, positions := og.Moves(), og.Positions()
		if len(moves) <= len(line) {
			continue
		}
		next := chess.UCINotation{}.Encode(positions[len(line)], moves[len(line)])
		if !seen[next] {
			seen[next] = true
			candidates = append(candidates, next)
		}
	}
	return candidates
}

// moveNumbers matches the "12." prefixes of a numbered move list.
var moveNumbers = regexp.MustCompile(`[0-9]+\.+`)

// LineBook maps positions to the continuations of a list of opening lines.
type LineBook struct {
	moves map[string][]string
	rng   *rand.Rand
}

// LoadLineBook reads CSV records of the form eco,name,moves where moves is a
// numbered SAN line such as "1.e4 e5 2.Nf3 Nc6". Every line is replayed from
// the standard starting position.
func LoadLineBook(r io.Reader, seed int64) (*LineBook, error) {
	b := &LineBook{moves: make(map[string][]string), rng: rand.New(rand.NewSource(seed))}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	for n := 1; ; n++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBookFormat, err)
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: record %d has %d fields", ErrBookFormat, n, len(record))
		}
		if err := b.addLine(moveNumbers.ReplaceAllString(record[2], " ")); err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): %v", ErrBookFormat, n, record[1], err)
		}
	}
	return b, nil
}

func (b *LineBook) addLine(sans string) error {
	g := chess.NewGame()
	p := board.MustParseFEN(board.FENStartPos)
	for _, san := range strings.Fields(sans) {
		mv, err := chess.AlgebraicNotation{}.Decode(g.Position(), san)
		if err != nil {
			return err
		}
		uci := chess.UCINotation{}.Encode(g.Position(), mv)
		if err := g.Move(mv); err != nil {
			return err
		}

		key := bookKey(p)
		if !slices.Contains(b.moves[key], uci) {
			b.moves[key] = append(b.moves[key], uci)
		}

		m, err := board.ParseMove(uci)
		if err != nil {
			return err
		}
		if _, err := p.MakeLegalMove(m.Src, m.Dst, m.Promo); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of positions the book knows.
func (b *LineBook) Len() int { return len(b.moves) }

func (b *LineBook) TryGetBookMove(p *board.Position, _ []string) (board.Move, bool) {
	return pickLegal(p, b.moves[bookKey(p)], b.rng)
}

// GameBook remembers the move played from every position of the current
// game. Positions met again replay the earlier choice.
type GameBook struct {
	moves map[string]string
}

func NewGameBook() *GameBook {
	return &GameBook{moves: make(map[string]string)}
}

// Record stores the move played from position before.
func (b *GameBook) Record(before *board.Position, m board.Move) {
	b.moves[bookKey(before)] = m.String()
}

func (b *GameBook) Clone() *GameBook {
	c := NewGameBook()
	for k, v := range b.moves {
		c.moves[k] = v
	}
	return c
}

func (b *GameBook) Len() int { return len(b.moves) }

func (b *GameBook) TryGetBookMove(p *board.Position, _ []string) (board.Move, bool) {
	s, ok := b.moves[bookKey(p)]
	if !ok {
		return board.Move{}, false
	}
	m, err := board.ParseMove(s)
	if err != nil {
		return board.Move{}, false
	}
	return m, playable(p, m)
}

// playable reports whether the side to move may play m.
func playable(p *board.Position, m board.Move) bool {
	if !m.Src.Valid() || !m.Dst.Valid() {
		return false
	}
	pc := p.PieceAt(m.Src)
	if pc.Empty() || pc.Color != p.SideToMove() || !p.IsLegalMove(m.Src, m.Dst) {
		return false
	}
	_, ok := p.TryMove(m)
	return ok
}
