package board

import "fmt"

// FiftyMoveLimit is the halfmove clock value (in plies) at which the game is drawn.
const FiftyMoveLimit = 100

// Position is an array-of-squares chess board together with the game state
// needed for move generation, evaluation and terminal classification.
//
// Derived data (reachable squares, attack maps, check flags, end-game phase)
// is only valid after GenerateMoves and must be regenerated after every
// MovePiece.
type Position struct {
	squares [64]Piece

	sideToMove Color

	castled    [2]bool
	canCastle  [2]bool
	kingSquare [2]Square

	// attacked[c][sq] is true when a piece of color c reaches sq.
	attacked [2][64]bool

	enPassant      Square
	enPassantColor Color // color of the pawn that made the double push

	halfmoveClock  int
	fullmoveNumber int

	check                [2]bool
	mate                 [2]bool
	staleMate            bool
	insufficientMaterial bool
	endGame              bool

	score       int
	repetitions int
	hash        uint64

	lastMove MoveRecord
}

// NewPosition returns an empty board with White to move.
func NewPosition() *Position {
	p := &Position{
		enPassant:      NoSquare,
		fullmoveNumber: 1,
		kingSquare:     [2]Square{NoSquare, NoSquare},
		castled:        [2]bool{true, true},
	}
	p.lastMove.clear()
	return p
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// PieceAt returns the square content. Empty squares have Type None.
func (p *Position) PieceAt(sq Square) *Piece { return &p.squares[sq] }

// SetPiece places a piece on sq, replacing anything there.
func (p *Position) SetPiece(sq Square, pt PieceType, c Color, moved bool) {
	p.squares[sq] = Piece{Type: pt, Color: c, Moved: moved}
	if pt == King {
		p.kingSquare[c] = sq
	}
}

// ClearSquare removes the piece on sq.
func (p *Position) ClearSquare(sq Square) {
	p.squares[sq] = Piece{}
}

func (p *Position) SideToMove() Color         { return p.sideToMove }
func (p *Position) SetSideToMove(c Color)     { p.sideToMove = c }
func (p *Position) InCheck(c Color) bool      { return p.check[c] }
func (p *Position) IsMated(c Color) bool      { return p.mate[c] }
func (p *Position) IsStaleMate() bool         { return p.staleMate }
func (p *Position) EndGamePhase() bool        { return p.endGame }
func (p *Position) Castled(c Color) bool      { return p.castled[c] }
func (p *Position) CanCastle(c Color) bool    { return p.canCastle[c] }
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }
func (p *Position) HalfmoveClock() int        { return p.halfmoveClock }
func (p *Position) FullmoveNumber() int       { return p.fullmoveNumber }
func (p *Position) Score() int                { return p.score }
func (p *Position) SetScore(score int)        { p.score = score }
func (p *Position) Repetitions() int          { return p.repetitions }
func (p *Position) SetRepetitions(n int)      { p.repetitions = n }
func (p *Position) LastMove() MoveRecord      { return p.lastMove }

// InsufficientMaterial reports whether the evaluator judged the material drawn.
func (p *Position) InsufficientMaterial() bool { return p.insufficientMaterial }

// MarkInsufficientMaterial flags the position as a dead draw.
func (p *Position) MarkInsufficientMaterial() {
	p.insufficientMaterial = true
	p.staleMate = true
}

// MarkDraw flags the position as drawn. Evaluation uses it for the
// fifty-move and repetition draws.
func (p *Position) MarkDraw() { p.staleMate = true }

// AttackedBy reports whether a piece of color c reaches sq.
func (p *Position) AttackedBy(c Color, sq Square) bool { return p.attacked[c][sq] }

// EnPassant returns the armed en-passant target and the color of the pawn
// that can be captured there. The square is NoSquare when nothing is armed.
func (p *Position) EnPassant() (Square, Color) { return p.enPassant, p.enPassantColor }

// FiftyMoveDraw reports whether the halfmove clock has run out.
func (p *Position) FiftyMoveDraw() bool { return p.halfmoveClock >= FiftyMoveLimit }

// Hash returns the zobrist key of the position.
func (p *Position) Hash() uint64 { return p.hash }

// PieceCount returns the number of occupied squares.
func (p *Position) PieceCount() int {
	n := 0
	for i := range p.squares {
		if p.squares[i].Type != None {
			n++
		}
	}
	return n
}

// Validate checks the structural invariants of the position.
func (p *Position) Validate() error {
	var kings [2]int
	for i := range p.squares {
		pc := &p.squares[i]
		if pc.Type == King {
			kings[pc.Color]++
		}
		if pc.Type == Pawn && (Square(i).Rank() == 0 || Square(i).Rank() == 7) {
			return fmt.Errorf("pawn on back rank %s", Square(i))
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("need exactly one king per side, have white=%d black=%d", kings[White], kings[Black])
	}
	return nil
}

// Mirror returns the position with colors swapped and the board flipped
// vertically. The result comes back generated, like a parsed position.
func (p *Position) Mirror() *Position {
	m := NewPosition()
	for i := range p.squares {
		pc := p.squares[i]
		if pc.Type == None {
			continue
		}
		m.SetPiece(Square(i).Mirror(), pc.Type, pc.Color.Other(), pc.Moved)
	}
	m.sideToMove = p.sideToMove.Other()
	m.castled = [2]bool{p.castled[Black], p.castled[White]}
	if p.enPassant != NoSquare {
		m.enPassant = p.enPassant.Mirror()
		m.enPassantColor = p.enPassantColor.Other()
	}
	m.halfmoveClock = p.halfmoveClock
	m.fullmoveNumber = p.fullmoveNumber
	m.repetitions = p.repetitions
	m.updateCastleRights()
	m.hash = m.ComputeZobrist()
	m.GenerateMoves()
	return m
}

// updateCastleRights derives the canCastle flags from the king and rook
// home squares.
func (p *Position) updateCastleRights() {
	p.canCastle[White] = p.castleRight(White, H1) || p.castleRight(White, A1)
	p.canCastle[Black] = p.castleRight(Black, H8) || p.castleRight(Black, A8)
}

// castleRight reports whether the king of c and the rook on rookSq are both
// unmoved on their home squares.
func (p *Position) castleRight(c Color, rookSq Square) bool {
	kingSq := E1
	if c == Black {
		kingSq = E8
	}
	k := &p.squares[kingSq]
	r := &p.squares[rookSq]
	return k.Type == King && k.Color == c && !k.Moved &&
		r.Type == Rook && r.Color == c && !r.Moved
}

func (p *Position) String() string { return p.ToFEN(false) }
