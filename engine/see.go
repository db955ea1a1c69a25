package engine

import (
	"chesscore/board"
)

// staticExchange estimates whether a capture on the victim's square wins the
// exchange from the attached attack and defence weights. It is zero when the
// victim is not attacked.
func staticExchange(victim *board.Piece) int {
	if victim.AttackedValue == 0 {
		return 0
	}
	return victim.ActionValue() - int(victim.AttackedValue) + int(victim.DefendedValue)
}

// seeSkip reports whether quiescence should pass over a capture: the target
// is defended, its defenders hold the square against the attack and the
// capturing piece is worth more than its victim. Quiet moves are never
// skipped.
func seeSkip(p *board.Position, m board.Move) bool {
	victim := p.PieceAt(m.Dst)
	if victim.Empty() || victim.DefendedValue == 0 {
		return false
	}
	attacker := p.PieceAt(m.Src)
	return staticExchange(victim) >= 0 && victim.Value() < attacker.Value()
}
