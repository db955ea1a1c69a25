package board

// MovePiece relocates the piece on src to dst without checking legality and
// returns the record of what happened. promo selects the piece a pawn turns
// into on the last rank; None means Queen.
//
// Generated data is stale afterwards: call GenerateMoves before querying moves
// or attack maps.
func (p *Position) MovePiece(src, dst Square, promo PieceType) MoveRecord {
	pc := p.squares[src]

	var rec MoveRecord
	rec.clear()

	p.mate = [2]bool{}
	p.staleMate = false
	p.insufficientMaterial = false
	p.repetitions = 0

	if pc.Color == Black {
		p.fullmoveNumber++
	}
	p.halfmoveClock++

	// Captures: en passant first, then a piece standing on dst.
	if p.enPassant == dst && pc.Type == Pawn && pc.Color != p.enPassantColor {
		victim := dst + 8
		if p.enPassantColor == White {
			victim = dst - 8
		}
		v := &p.squares[victim]
		rec.Taken = PieceTaken{Square: victim, Piece: v.Type, Color: v.Color, Moved: v.Moved}
		rec.EnPassant = true
		p.squares[victim] = Piece{}
		p.halfmoveClock = 0
	} else if t := &p.squares[dst]; t.Type != None {
		rec.Taken = PieceTaken{Square: dst, Piece: t.Type, Color: t.Color, Moved: t.Moved}
		p.halfmoveClock = 0
	} else {
		rec.Taken.Square = dst
	}

	rec.Primary = PieceMove{Src: src, Dst: dst, Piece: pc.Type, Color: pc.Color, Moved: pc.Moved}

	p.squares[src] = Piece{}
	pc.Moved = true
	pc.moveCount = 0
	p.squares[dst] = pc
	if pc.Type == King {
		p.kingSquare[pc.Color] = dst
	}

	p.enPassant = NoSquare
	if pc.Type == Pawn {
		p.halfmoveClock = 0
		if diff := src - dst; diff == 16 || diff == -16 {
			p.enPassant = dst + diff/2
			p.enPassantColor = pc.Color
		}
	}

	p.sideToMove = p.sideToMove.Other()

	if pc.Type == King {
		p.castleRook(&rec, pc.Color, src, dst)
	}

	if pc.Type == Pawn && (dst < 8 || dst > 55) {
		if promo == None || promo == Pawn || promo == King {
			promo = Queen
		}
		p.squares[dst].Type = promo
		rec.PromotedTo = promo
	}

	if p.halfmoveClock >= FiftyMoveLimit {
		p.staleMate = true
	}

	p.hash = p.ComputeZobrist()
	p.lastMove = rec
	return rec
}

// castleRook moves the rook when the king made a castling displacement.
func (p *Position) castleRook(rec *MoveRecord, c Color, src, dst Square) {
	var rookSrc, rookDst Square
	switch {
	case c == White && src == E1 && dst == G1:
		rookSrc, rookDst = H1, F1
	case c == White && src == E1 && dst == C1:
		rookSrc, rookDst = A1, D1
	case c == Black && src == E8 && dst == G8:
		rookSrc, rookDst = H8, F8
	case c == Black && src == E8 && dst == C8:
		rookSrc, rookDst = A8, D8
	default:
		return
	}

	rook := p.squares[rookSrc]
	if rook.Type != Rook || rook.Color != c {
		return
	}
	rec.Secondary = PieceMove{Src: rookSrc, Dst: rookDst, Piece: Rook, Color: c, Moved: rook.Moved}
	rook.Moved = true
	rook.moveCount = 0
	p.squares[rookSrc] = Piece{}
	p.squares[rookDst] = rook
	p.castled[c] = true
}
