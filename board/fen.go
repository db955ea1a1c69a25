package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns the position with its moves
// generated. The halfmove and fullmove fields may be omitted.
//
// Every piece read from the placement field is marked as moved; the castling
// field then clears the flag on the king and rook it names.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}

	p := NewPosition()

	// 1. Piece placement, a8 first
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for row, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c, ok := pieceFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, 8-row)
			}
			p.SetPiece(Square(row*8+file), pt, c, true)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, 8-row)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.unmarkCastlePieces(White, E1, H1)
			case 'Q':
				p.unmarkCastlePieces(White, E1, A1)
			case 'k':
				p.unmarkCastlePieces(Black, E8, H8)
			case 'q':
				p.unmarkCastlePieces(Black, E8, A8)
			default:
				return nil, fmt.Errorf("%w: invalid castling character %q", ErrInvalidFEN, fields[2][i])
			}
		}
	}

	// 4. En passant target
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
		switch sq.Rank() {
		case 2:
			p.enPassantColor = White
		case 5:
			p.enPassantColor = Black
		default:
			return nil, fmt.Errorf("%w: en passant square %s not on rank 3 or 6", ErrInvalidFEN, sq)
		}
		p.enPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		p.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		p.fullmoveNumber = n
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	p.updateCastleRights()
	p.hash = p.ComputeZobrist()
	p.GenerateMoves()
	return p, nil
}

// MustParseFEN is ParseFEN for known-good input. It panics on error.
func MustParseFEN(fen string) *Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) unmarkCastlePieces(c Color, kingSq, rookSq Square) {
	if k := &p.squares[kingSq]; k.Type == King && k.Color == c {
		k.Moved = false
	}
	if r := &p.squares[rookSq]; r.Type == Rook && r.Color == c {
		r.Moved = false
	}
	p.castled[c] = false
}

// ToFEN encodes the position. With boardOnly the halfmove and fullmove
// counters are left off.
func (p *Position) ToFEN(boardOnly bool) string {
	var sb strings.Builder

	// 1. Piece placement
	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := &p.squares[row*8+file]
			if pc.Type == None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	// 3. Castling rights, derived from the unmoved king and rooks
	rights := ""
	if !p.castled[White] {
		if p.castleRight(White, H1) {
			rights += "K"
		}
		if p.castleRight(White, A1) {
			rights += "Q"
		}
	}
	if !p.castled[Black] {
		if p.castleRight(Black, H8) {
			rights += "k"
		}
		if p.castleRight(Black, A8) {
			rights += "q"
		}
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(p.enPassant.String())

	if !boardOnly {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.halfmoveClock))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	}
	return sb.String()
}
