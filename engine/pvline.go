package engine

import (
	"strings"

	"chesscore/board"
)

// PVLine is a principal variation, root move first.
type PVLine struct {
	Moves []board.Move
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update makes move followed by the child line the new variation.
func (pv *PVLine) Update(move board.Move, child PVLine) {
	pv.Clear()
	pv.Moves = append(pv.Moves, move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// GetPVMove returns the first move of the line, or an empty move.
func (pv PVLine) GetPVMove() board.Move {
	if len(pv.Moves) == 0 {
		return emptyMove
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	return getPVLineString(pv)
}

func getPVLineString(pvLine PVLine) string {
	parts := make([]string, len(pvLine.Moves))
	for i, m := range pvLine.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
