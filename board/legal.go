package board

import "fmt"

// Move returns the candidate that produced the record.
func (m MoveRecord) Move() Move {
	return Move{Src: m.Primary.Src, Dst: m.Primary.Dst, Promo: m.PromotedTo}
}

func isPromotion(pc *Piece, dst Square) bool {
	return pc.Type == Pawn && (dst < 8 || dst > 55)
}

// PseudoMoves appends the generated moves of side to dst. Promotions are
// listed once, as queen promotions. Legality with respect to the own king
// is not checked.
func (p *Position) PseudoMoves(side Color, dst []Move) []Move {
	for i := range p.squares {
		pc := &p.squares[i]
		if pc.Type == None || pc.Color != side {
			continue
		}
		for _, to := range pc.ValidMoves() {
			m := Move{Src: Square(i), Dst: to}
			if isPromotion(pc, to) {
				m.Promo = Queen
			}
			dst = append(dst, m)
		}
	}
	return dst
}

// TryMove applies m to a copy of the position, regenerates it and returns
// the copy. ok is false when the move leaves the mover's king in check.
func (p *Position) TryMove(m Move) (child *Position, ok bool) {
	mover := p.squares[m.Src].Color
	child = p.Clone()
	child.MovePiece(m.Src, m.Dst, m.Promo)
	child.GenerateMoves()
	if child.check[mover] {
		return nil, false
	}
	return child, true
}

// LegalMoves returns every fully legal move of the side to move, with
// promotions expanded to all four pieces.
func (p *Position) LegalMoves() []Move {
	var moves []Move
	for _, m := range p.PseudoMoves(p.sideToMove, nil) {
		if _, ok := p.TryMove(m); !ok {
			continue
		}
		if m.Promo == None {
			moves = append(moves, m)
			continue
		}
		for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			moves = append(moves, Move{Src: m.Src, Dst: m.Dst, Promo: pt})
		}
	}
	return moves
}

// HasLegalMove reports whether side has at least one move that does not
// leave its king in check.
func (p *Position) HasLegalMove(side Color) bool {
	var buf [64]Move
	for _, m := range p.PseudoMoves(side, buf[:0]) {
		if _, ok := p.TryMove(m); ok {
			return true
		}
	}
	return false
}

// ClassifyTerminal marks side as mated or the game as stalemated when side
// has no legal move, and reports whether the game is over.
func (p *Position) ClassifyTerminal(side Color) bool {
	if p.HasLegalMove(side) {
		return false
	}
	if p.check[side] {
		p.mate[side] = true
	} else {
		p.staleMate = true
	}
	return true
}

// MakeLegalMove validates and plays a move for the side to move. On error the
// position is left untouched. The position is regenerated on success.
func (p *Position) MakeLegalMove(src, dst Square, promo PieceType) (MoveRecord, error) {
	if !src.Valid() || !dst.Valid() {
		return NullMove, ErrInvalidSquare
	}
	pc := &p.squares[src]
	if pc.Type == None {
		return NullMove, fmt.Errorf("%w: %s", ErrNoPiece, src)
	}
	if pc.Color != p.sideToMove {
		return NullMove, fmt.Errorf("%w: %s", ErrWrongSide, src)
	}
	if !p.IsLegalMove(src, dst) {
		return NullMove, fmt.Errorf("%w: %s%s", ErrIllegalMove, src, dst)
	}
	if !isPromotion(pc, dst) {
		promo = None
	}
	child, ok := p.TryMove(Move{Src: src, Dst: dst, Promo: promo})
	if !ok {
		return NullMove, fmt.Errorf("%w: %s%s leaves the king in check", ErrIllegalMove, src, dst)
	}
	*p = *child
	return p.lastMove, nil
}
