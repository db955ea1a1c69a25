package engine

import (
	"chesscore/board"
)

// quiescenceSlot is the killer row shared by all quiescence nodes.
const quiescenceSlot = 2

// KillerStruct keeps two killer moves per remaining depth for the main search
// and a single quiescence killer. New killers overwrite the two depth rows in
// turn.
type KillerStruct struct {
	KillerMoves [3][MaxPly + 1]board.Move
	next        int
}

var emptyMove = board.Move{Src: board.NoSquare, Dst: board.NoSquare}

func (k *KillerStruct) InsertKiller(move board.Move, depth int) {
	if depth < 0 || depth > MaxPly {
		return
	}
	k.KillerMoves[k.next][depth] = move
	k.next = (k.next + 1) % 2
}

func (k *KillerStruct) InsertQuiescenceKiller(move board.Move) {
	k.KillerMoves[quiescenceSlot][0] = move
}

// IsKiller reports whether move is a stored killer for depth.
func (k *KillerStruct) IsKiller(move board.Move, depth int) bool {
	if depth < 0 || depth > MaxPly {
		return false
	}
	return k.KillerMoves[0][depth] == move || k.KillerMoves[1][depth] == move
}

func (k *KillerStruct) IsQuiescenceKiller(move board.Move) bool {
	return k.KillerMoves[quiescenceSlot][0] == move
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	for row := range k.KillerMoves {
		for depth := range k.KillerMoves[row] {
			k.KillerMoves[row][depth] = emptyMove
		}
	}
	k.next = 0
}
