package board

// Square indexes the board row-major from a8 (0) to h1 (63).
type Square int8

const NoSquare Square = -1

// Squares touched by castling.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 56
	B1 Square = 57
	C1 Square = 58
	D1 Square = 59
	E1 Square = 60
	F1 Square = 61
	G1 Square = 62
	H1 Square = 63
)

// SquareAt builds a square from a 0-based file (a=0) and rank (rank 1 = 0).
func SquareAt(file, rank int) Square {
	return Square((7-rank)*8 + file)
}

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns 0 for the first rank through 7 for the eighth.
func (sq Square) Rank() int { return 7 - int(sq)/8 }

// Row returns the row index from the top of the board (a8 row = 0).
func (sq Square) Row() int { return int(sq) / 8 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// Mirror flips the square vertically (a1 <-> a8).
func (sq Square) Mirror() Square { return sq ^ 56 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare converts "e4" style coordinates. Malformed input yields NoSquare
// together with ErrInvalidSquare.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, ErrInvalidSquare
	}
	file := s[0] | 0x20
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, ErrInvalidSquare
	}
	return SquareAt(int(file-'a'), int(rank-'1')), nil
}

// ParseCoordinateMove splits "e2e4" or "e7e8q" into source, destination and
// promotion piece (None when absent).
func ParseCoordinateMove(s string) (src, dst Square, promo PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, None, ErrInvalidSquare
	}
	if src, err = ParseSquare(s[0:2]); err != nil {
		return NoSquare, NoSquare, None, err
	}
	if dst, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, None, err
	}
	if len(s) == 5 {
		pt, ok := PromotionFromChar(s[4])
		if !ok {
			return NoSquare, NoSquare, None, ErrInvalidSquare
		}
		promo = pt
	}
	return src, dst, promo, nil
}
