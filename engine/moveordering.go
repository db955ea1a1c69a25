package engine

import (
	"chesscore/board"
)

type move struct {
	move  board.Move
	score int
}

type moveList struct {
	moves []move
}

// Move ordering weights.
const (
	killerScore        = 5000
	unmovedPieceBonus  = 10
	castleMoveBonus    = 40
	uncastledMoveMalus = 40
)

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// captureGain scores a capture by the victim's value plus the material
// difference when the victim is worth more than the attacker.
func captureGain(attacker, victim *board.Piece) int {
	if victim.Empty() {
		return 0
	}
	gain := victim.Value()
	if attacker.Value() < victim.Value() {
		gain += victim.Value() - attacker.Value()
	}
	return gain
}

// scoreMovesList scores every pseudo-legal move of the side to move. Killers
// for depth jump to the front.
func (s *Searcher) scoreMovesList(p *board.Position, depth int, buf []move) moveList {
	side := p.SideToMove()
	uncastled := !p.Castled(side)
	list := moveList{moves: buf[:0]}

	for i := 0; i < 64; i++ {
		src := board.Square(i)
		pc := p.PieceAt(src)
		if pc.Empty() || pc.Color != side {
			continue
		}
		for _, dst := range pc.ValidMoves() {
			m := board.Move{Src: src, Dst: dst}
			if pc.Type == board.Pawn && (dst.Row() == 0 || dst.Row() == 7) {
				m.Promo = board.Queen
			}

			if s.killers.IsKiller(m, depth) {
				s.stats.KillerHits++
				list.moves = append(list.moves, move{move: m, score: killerScore})
				continue
			}

			score := captureGain(pc, p.PieceAt(dst))
			if !pc.Moved {
				score += unmovedPieceBonus
			}
			score += pc.ActionValue()

			if uncastled {
				switch pc.Type {
				case board.King:
					if isCastleTarget(side, dst) {
						score += castleMoveBonus
					} else {
						score -= uncastledMoveMalus
					}
				case board.Rook:
					score -= uncastledMoveMalus
				}
			}
			list.moves = append(list.moves, move{move: m, score: score})
		}
	}
	return list
}

// scoreMovesListCaptures scores the moves of the side to move that land on an
// occupied square.
func (s *Searcher) scoreMovesListCaptures(p *board.Position, buf []move) moveList {
	side := p.SideToMove()
	list := moveList{moves: buf[:0]}

	for i := 0; i < 64; i++ {
		src := board.Square(i)
		pc := p.PieceAt(src)
		if pc.Empty() || pc.Color != side {
			continue
		}
		for _, dst := range pc.ValidMoves() {
			victim := p.PieceAt(dst)
			if victim.Empty() {
				continue
			}
			m := board.Move{Src: src, Dst: dst}
			if pc.Type == board.Pawn && (dst.Row() == 0 || dst.Row() == 7) {
				m.Promo = board.Queen
			}
			if s.killers.IsQuiescenceKiller(m) {
				s.stats.KillerHits++
				list.moves = append(list.moves, move{move: m, score: killerScore})
				continue
			}
			score := captureGain(pc, victim) + pc.ActionValue()
			list.moves = append(list.moves, move{move: m, score: score})
		}
	}
	return list
}

func isCastleTarget(c board.Color, dst board.Square) bool {
	if c == board.White {
		return dst == board.G1 || dst == board.C1
	}
	return dst == board.G8 || dst == board.C8
}
