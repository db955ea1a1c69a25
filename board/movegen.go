package board

// GenerateMoves rebuilds every piece's reachable squares, the attacked and
// defended values, both attack maps, the check flags and the end-game flag.
//
// Pass one walks every non-king piece independently of the side to move.
// Pass two handles the kings, which may not step onto a square attacked by
// the opponent, and then castling. Moves that expose the king through a pin
// are not filtered here; see MakeLegalMove.
func (p *Position) GenerateMoves() {
	p.check = [2]bool{}
	p.attacked = [2][64]bool{}

	remaining := 0
	for i := range p.squares {
		pc := &p.squares[i]
		if pc.Type == None {
			continue
		}
		pc.resetGenerated()
		remaining++
	}

	for i := range p.squares {
		pc := &p.squares[i]
		sq := Square(i)
		switch pc.Type {
		case Pawn:
			p.generatePawn(sq, pc)
		case Knight:
			for _, dst := range knightMoves[sq] {
				p.analyzeMove(dst, pc)
			}
		case Bishop:
			p.generateSlider(sq, pc, 0, 4)
		case Rook:
			p.generateSlider(sq, pc, 4, 8)
		case Queen:
			p.generateSlider(sq, pc, 0, 8)
		case King:
			p.kingSquare[pc.Color] = sq
		}
	}

	p.endGame = remaining < 10
	p.updateCastleRights()

	// The king of the side that just moved goes first, so the king on move
	// cannot step next to it.
	first := p.sideToMove.Other()
	p.generateKing(first)
	p.generateKing(first.Other())

	for _, c := range [2]Color{White, Black} {
		if !p.castled[c] && p.canCastle[c] && !p.check[c] {
			p.generateCastling(c)
		}
	}
}

// analyzeMove records pc reaching dst and reports whether a sliding ray may
// continue past it.
func (p *Position) analyzeMove(dst Square, pc *Piece) bool {
	p.attacked[pc.Color][dst] = true

	target := &p.squares[dst]
	if target.Type == None {
		pc.pushMove(dst)
		return true
	}

	if target.Color != pc.Color {
		target.AttackedValue += int16(pc.ActionValue())
		if target.Type == King {
			p.check[target.Color] = true
		} else {
			pc.pushMove(dst)
		}
		return false
	}

	target.DefendedValue += int16(pc.ActionValue())
	return false
}

func (p *Position) generateSlider(sq Square, pc *Piece, fromDir, toDir int) {
	for dir := fromDir; dir < toDir; dir++ {
		for _, dst := range rays[sq][dir] {
			if !p.analyzeMove(dst, pc) {
				break
			}
		}
	}
}

func (p *Position) generatePawn(sq Square, pc *Piece) {
	for _, dst := range pawnCaptures[pc.Color][sq] {
		p.attacked[pc.Color][dst] = true

		if p.enPassant == dst && pc.Color != p.enPassantColor {
			pc.pushMove(dst)
		}

		target := &p.squares[dst]
		if target.Type == None {
			continue
		}
		if target.Color == pc.Color {
			target.DefendedValue += int16(pc.ActionValue())
			continue
		}
		target.AttackedValue += int16(pc.ActionValue())
		if target.Type == King {
			p.check[target.Color] = true
		} else {
			pc.pushMove(dst)
		}
	}

	for _, dst := range pawnPushes[pc.Color][sq] {
		if p.squares[dst].Type != None {
			break
		}
		pc.pushMove(dst)
	}
}

func (p *Position) generateKing(c Color) {
	sq := p.kingSquare[c]
	if !sq.Valid() || p.squares[sq].Type != King {
		return
	}
	king := &p.squares[sq]
	enemy := c.Other()

	for _, dst := range kingMoves[sq] {
		target := &p.squares[dst]
		if target.Type == King && target.Color == enemy {
			// Kings facing each other: both sides are flagged so the move
			// that produced this position is rejected.
			p.attacked[c][dst] = true
			p.check[enemy] = true
			p.check[c] = true
			continue
		}
		if p.attacked[enemy][dst] {
			p.attacked[c][dst] = true
			continue
		}
		p.analyzeMove(dst, king)
	}
}

func (p *Position) generateCastling(c Color) {
	king := &p.squares[p.kingSquare[c]]
	enemy := c.Other()

	kingSq, f, g, h := E1, F1, G1, H1
	a, b, cc, d := A1, B1, C1, D1
	if c == Black {
		kingSq, f, g, h = E8, F8, G8, H8
		a, b, cc, d = A8, B8, C8, D8
	}
	if p.kingSquare[c] != kingSq {
		return
	}

	if p.castleRight(c, h) &&
		p.squares[f].Type == None && p.squares[g].Type == None &&
		!p.attacked[enemy][f] && !p.attacked[enemy][g] {
		king.pushMove(g)
		p.attacked[c][g] = true
	}

	if p.castleRight(c, a) &&
		p.squares[b].Type == None && p.squares[cc].Type == None && p.squares[d].Type == None &&
		!p.attacked[enemy][cc] && !p.attacked[enemy][d] {
		king.pushMove(cc)
		p.attacked[c][cc] = true
	}
}

// IsLegalMove reports whether dst is among the generated destinations of the
// piece on src, or is the armed en-passant target for a pawn of the
// capturing side. Only geometric legality is checked; MakeLegalMove also
// verifies king safety.
func (p *Position) IsLegalMove(src, dst Square) bool {
	if !src.Valid() || !dst.Valid() {
		return false
	}
	pc := &p.squares[src]
	if pc.Type == None {
		return false
	}
	for _, m := range pc.ValidMoves() {
		if m == dst {
			return true
		}
	}
	if dst != p.enPassant || pc.Type != Pawn || pc.Color == p.enPassantColor {
		return false
	}
	for _, m := range pawnCaptures[pc.Color][src] {
		if m == dst {
			return true
		}
	}
	return false
}
