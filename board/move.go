package board

import "strings"

// PieceMove is one piece relocation. Moved is the piece's moved flag before
// the move was made.
type PieceMove struct {
	Src   Square
	Dst   Square
	Piece PieceType
	Color Color
	Moved bool
}

// PieceTaken is a captured piece. Piece is None when nothing was taken.
type PieceTaken struct {
	Square Square
	Piece  PieceType
	Color  Color
	Moved  bool
}

// MoveRecord describes a move applied by MovePiece. Secondary carries the
// castling rook and has Src NoSquare for every other move.
type MoveRecord struct {
	Primary    PieceMove
	Secondary  PieceMove
	Taken      PieceTaken
	PromotedTo PieceType
	EnPassant  bool
}

// NullMove is the empty record: no source, no destination.
var NullMove = func() MoveRecord {
	var m MoveRecord
	m.clear()
	return m
}()

func (m *MoveRecord) clear() {
	*m = MoveRecord{}
	m.Primary.Src, m.Primary.Dst = NoSquare, NoSquare
	m.Secondary.Src, m.Secondary.Dst = NoSquare, NoSquare
	m.Taken.Square = NoSquare
}

// IsNull reports whether the record holds no move.
func (m MoveRecord) IsNull() bool { return m.Primary.Src == NoSquare }

// IsCapture reports whether a piece was taken.
func (m MoveRecord) IsCapture() bool { return m.Taken.Piece != None }

// IsCastle reports whether the move also relocated a rook.
func (m MoveRecord) IsCastle() bool { return m.Secondary.Src != NoSquare }

// String returns the coordinate notation, e.g. "e2e4" or "e7e8q".
func (m MoveRecord) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.Primary.Src.String() + m.Primary.Dst.String()
	if m.PromotedTo != None {
		s += strings.ToLower(m.PromotedTo.Letter())
	}
	return s
}

// Move is a candidate move before it is applied.
type Move struct {
	Src   Square
	Dst   Square
	Promo PieceType
}

func (m Move) String() string {
	s := m.Src.String() + m.Dst.String()
	if m.Promo != None {
		s += strings.ToLower(m.Promo.Letter())
	}
	return s
}

// ParseMove parses coordinate notation such as "e2e4" or "a7a8n".
func ParseMove(s string) (Move, error) {
	src, dst, promo, err := ParseCoordinateMove(s)
	if err != nil {
		return Move{}, err
	}
	return Move{Src: src, Dst: dst, Promo: promo}, nil
}
