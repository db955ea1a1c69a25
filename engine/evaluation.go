package engine

import (
	"chesscore/board"
)

// pawnFiles accumulates per-file pawn weights for one side. A file holding at
// least one pawn has a positive weight.
type pawnFiles [8]int

// evalState is the scratch data of a single evaluation. It lives on the stack
// so concurrent evaluations never share counters.
type evalState struct {
	pawns        [2]pawnFiles
	knights      [2]int
	bishops      [2]int
	insufficient bool
}

// Evaluate scores a generated position from White's point of view, stores the
// score on the position and returns it. Drawn positions score 0 and a mated
// side scores ±32767. Fifty-move and repetition draws are flagged like a
// stalemate. When neither side has mating material the position is marked as
// insufficient material.
func Evaluate(p *board.Position) int {
	score := evaluate(p)
	p.SetScore(score)
	return score
}

func evaluate(p *board.Position) int {
	if p.IsStaleMate() {
		return 0
	}
	if p.FiftyMoveDraw() || p.Repetitions() >= 3 {
		p.MarkDraw()
		return 0
	}
	if p.IsMated(board.Black) {
		return MateScore
	}
	if p.IsMated(board.White) {
		return -MateScore
	}

	endGame := p.EndGamePhase()
	score := 0

	switch {
	case p.InCheck(board.Black):
		score += checkBonus
		if endGame {
			score += endGameCheckBonus
		}
	case p.InCheck(board.White):
		score -= checkBonus
		if endGame {
			score -= endGameCheckBonus
		}
	}

	if p.Castled(board.Black) {
		score -= castledBonus
	}
	if p.Castled(board.White) {
		score += castledBonus
	}

	if p.SideToMove() == board.White {
		score += tempoBonus
	} else {
		score -= tempoBonus
	}

	es := evalState{insufficient: true}
	for i := 0; i < 64; i++ {
		sq := board.Square(i)
		pc := p.PieceAt(sq)
		if pc.Empty() {
			continue
		}
		v := es.pieceScore(p, sq, pc, endGame)
		if pc.Type == board.King {
			v += pawnShield(p, sq, pc.Color)
		}
		if pc.Color == board.White {
			score += v
		} else {
			score -= v
		}
	}

	if es.insufficientMaterial() {
		p.MarkInsufficientMaterial()
		return 0
	}

	if endGame {
		switch {
		case p.InCheck(board.Black):
			score += endGameCheckBonus
		case p.InCheck(board.White):
			score -= endGameCheckBonus
		}
	} else {
		if !p.CanCastle(board.White) && !p.Castled(board.White) {
			score -= lostCastlingMalus
		}
		if !p.CanCastle(board.Black) && !p.Castled(board.Black) {
			score += lostCastlingMalus
		}
	}

	score -= es.pawns[board.White].isolated()
	score += es.pawns[board.Black].isolated()

	score += es.pawns[board.White].passed(&es.pawns[board.Black])
	score -= es.pawns[board.Black].passed(&es.pawns[board.White])

	return score
}

// pieceScore is the contribution of one piece, positive for its own side.
func (es *evalState) pieceScore(p *board.Position, sq board.Square, pc *board.Piece, endGame bool) int {
	index := sq
	if pc.Color == board.Black {
		index = sq.Mirror()
	}

	attacked, defended := int(pc.AttackedValue), int(pc.DefendedValue)
	score := pc.Value() + defended - attacked
	if defended < attacked {
		score -= (attacked - defended) * hangingMultiplier
	}
	score += len(pc.ValidMoves())

	switch pc.Type {
	case board.Pawn:
		es.insufficient = false
		file := sq.File()
		if file == 0 || file == 7 {
			score -= rookPawnMalus
		}
		score += PawnTable[index]

		files := &es.pawns[pc.Color]
		if files[file] > 0 {
			score -= doubledPawnMalus
		}
		// index is the square seen from White, so row 1 is the seventh
		// relative rank for either color.
		switch index.Row() {
		case 1:
			if attacked == 0 {
				files[file] += seventhRankFree
				if defended != 0 {
					files[file] += seventhRankDefended
				}
			}
		case 2:
			if attacked == 0 {
				files[file] += sixthRankFree
				if defended != 0 {
					files[file] += sixthRankDefended
				}
			}
		}
		files[file] += pawnFileBase

	case board.Knight:
		es.knights[pc.Color]++
		score += KnightTable[index]
		if endGame {
			score -= knightEndGameMalus
		}

	case board.Bishop:
		es.bishops[pc.Color]++
		if es.bishops[pc.Color] >= 2 {
			score += bishopPairBonus
		}
		if endGame {
			score += bishopEndGameBonus
		}
		score += BishopTable[index]

	case board.Rook:
		es.insufficient = false

	case board.Queen:
		es.insufficient = false
		if pc.Moved && !endGame {
			score -= earlyQueenMalus
		}

	case board.King:
		if len(pc.ValidMoves()) < 2 {
			score -= trappedKingMalus
		}
		if endGame {
			score += KingTableEndGame[index]
		} else {
			score += KingTable[index]
		}
	}
	return score
}

// insufficientMaterial applies the counting rule: no pawns or major pieces,
// at most one knight and one bishop on the board, and no side holding more
// than one minor piece.
func (es *evalState) insufficientMaterial() bool {
	if !es.insufficient {
		return false
	}
	w, b := board.White, board.Black
	if es.knights[w]+es.knights[b] > 1 || es.bishops[w]+es.bishops[b] > 1 {
		return false
	}
	return es.bishops[w]+es.knights[w] <= 1 && es.bishops[b]+es.knights[b] <= 1
}

// pawnShield rewards own pawns in front of a king that has left its home
// squares.
func pawnShield(p *board.Position, king board.Square, c board.Color) int {
	home, ahead := [2]board.Square{board.D1, board.E1}, -8
	if c == board.Black {
		home, ahead = [2]board.Square{board.D8, board.E8}, 8
	}
	if king == home[0] || king == home[1] {
		return 0
	}
	score := 0
	for _, off := range [3]int{ahead, ahead + 1, ahead - 1} {
		pos := int(king) + off
		if pos < 0 || pos > 63 {
			continue
		}
		sq := board.Square(pos)
		if king.File() == 7 && sq.File() == 0 || king.File() == 0 && sq.File() == 7 {
			continue
		}
		if pc := p.PieceAt(sq); pc.Type == board.Pawn && pc.Color == c {
			score += pawnShieldBonus
		}
	}
	return score
}

func (f *pawnFiles) isolated() int {
	penalty := 0
	for file := 0; file < 8; file++ {
		if f[file] < 1 {
			continue
		}
		if file > 0 && f[file-1] != 0 {
			continue
		}
		if file < 7 && f[file+1] != 0 {
			continue
		}
		penalty += isolatedPawnPenalty[file]
	}
	return penalty
}

// passed sums the weights of files where the opponent has no pawn.
func (f *pawnFiles) passed(opp *pawnFiles) int {
	bonus := 0
	for file := 0; file < 8; file++ {
		if f[file] >= 1 && opp[file] == 0 {
			bonus += f[file]
		}
	}
	return bonus
}

// sideScore converts a White-relative score to the side to move's view.
func sideScore(score int, side board.Color) int {
	if side == board.Black {
		return -score
	}
	return score
}
