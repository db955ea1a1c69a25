package board

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	None PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// A queen on an open board reaches 27 squares, a king with both castles 10.
const maxPieceMoves = 27

// Piece is the content of an occupied square. The reachable squares and the
// attacked/defended action values are rebuilt by every GenerateMoves call.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool

	// Sum of action values of enemy pieces attacking this piece.
	AttackedValue int16
	// Sum of action values of friendly pieces defending this piece.
	DefendedValue int16

	moveCount uint8
	moves     [maxPieceMoves]Square
}

var pieceValues = [7]int{0, 100, 320, 325, 500, 975, 32767}

// Cheaper pieces carry a larger action value: a pawn attacking a square
// weighs more than a queen attacking it.
var pieceActionValues = [7]int{0, 6, 3, 3, 2, 1, 1}

// PieceValue returns the material value of a piece type in centipawns.
func PieceValue(pt PieceType) int { return pieceValues[pt] }

// PieceActionValue returns the attack/defence weight of a piece type.
func PieceActionValue(pt PieceType) int { return pieceActionValues[pt] }

// Value is the material value of the piece.
func (p *Piece) Value() int { return pieceValues[p.Type] }

// ActionValue is the attack/defence weight of the piece.
func (p *Piece) ActionValue() int { return pieceActionValues[p.Type] }

// Empty reports whether the square holding p is unoccupied.
func (p *Piece) Empty() bool { return p.Type == None }

// ValidMoves returns the destinations found by the last generation pass.
// The slice aliases the piece and must not be retained across a board change.
func (p *Piece) ValidMoves() []Square { return p.moves[:p.moveCount] }

func (p *Piece) pushMove(sq Square) {
	p.moves[p.moveCount] = sq
	p.moveCount++
}

func (p *Piece) resetGenerated() {
	p.moveCount = 0
	p.AttackedValue = 0
	p.DefendedValue = 0
}

// pieceFromChar converts a FEN character to a piece type and color.
func pieceFromChar(ch byte) (PieceType, Color, bool) {
	switch ch {
	case 'P':
		return Pawn, White, true
	case 'N':
		return Knight, White, true
	case 'B':
		return Bishop, White, true
	case 'R':
		return Rook, White, true
	case 'Q':
		return Queen, White, true
	case 'K':
		return King, White, true
	case 'p':
		return Pawn, Black, true
	case 'n':
		return Knight, Black, true
	case 'b':
		return Bishop, Black, true
	case 'r':
		return Rook, Black, true
	case 'q':
		return Queen, Black, true
	case 'k':
		return King, Black, true
	}
	return None, White, false
}

// Letter returns the upper-case letter of a piece type, empty for None.
func (pt PieceType) Letter() string {
	return [...]string{"", "P", "N", "B", "R", "Q", "K"}[pt]
}

func (pt PieceType) String() string {
	return [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}[pt]
}

// charFromPiece converts a piece to its FEN character.
func charFromPiece(p *Piece) byte {
	c := "?PNBRQK"[p.Type]
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

// PromotionFromChar maps a UCI promotion suffix to a piece type.
func PromotionFromChar(ch byte) (PieceType, bool) {
	switch ch {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	}
	return None, false
}
