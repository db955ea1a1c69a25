package engine

// Piece-square tables from White's point of view, indexed a8 = 0 .. h1 = 63.
// Every table is left-right symmetric, so Black looks them up with the
// vertically mirrored square.

var PawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	20, 20, 30, 40, 40, 30, 20, 20,
	5, 5, 10, 30, 30, 10, 5, 5,
	0, 0, 0, 25, 25, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -30, -30, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var KnightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -30, -20, -30, -30, -20, -30, -50,
}

var BishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -40, -10, -10, -40, -10, -20,
}

var KingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var KingTableEndGame = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// isolatedPawnPenalty is charged per file holding pawns with no friendly
// pawn on an adjacent file.
var isolatedPawnPenalty = [8]int{12, 14, 16, 20, 20, 16, 14, 12}

// Evaluation weights.
const (
	checkBonus         = 70
	endGameCheckBonus  = 10
	castledBonus       = 50
	lostCastlingMalus  = 50
	tempoBonus         = 10
	hangingMultiplier  = 10
	rookPawnMalus      = 15
	doubledPawnMalus   = 15
	knightEndGameMalus = 10
	bishopPairBonus    = 10
	bishopEndGameBonus = 10
	earlyQueenMalus    = 10
	trappedKingMalus   = 5
	pawnShieldBonus    = 10

	// Pawn file weights; a passed file scores its accumulated weight.
	seventhRankFree     = 200
	seventhRankDefended = 50
	sixthRankFree       = 100
	sixthRankDefended   = 25
	pawnFileBase        = 10
)
