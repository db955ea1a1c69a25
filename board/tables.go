package board

// Precomputed per-square geometry. Built once in init and read-only after
// that, so concurrent generators may share them.

var knightMoves [64][]Square
var kingMoves [64][]Square

// rays[sq][dir] lists the squares along one direction, nearest first.
// Directions 0-3 are diagonal, 4-7 orthogonal.
var rays [64][8][]Square

// pawnPushes[color][sq] holds the single push followed by the double push
// from the starting rank. pawnCaptures[color][sq] holds the diagonals.
var pawnPushes [2][64][]Square
var pawnCaptures [2][64][]Square

var rayDirs = [8][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, // diagonals (file, rank)
	{0, 1}, {0, -1}, {1, 0}, {-1, 0}, // orthogonals
}

func init() {
	initMoveTables()
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func initMoveTables() {
	knightSteps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps := [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

	for i := 0; i < 64; i++ {
		sq := Square(i)
		file, rank := sq.File(), sq.Rank()

		for _, d := range knightSteps {
			if onBoard(file+d[0], rank+d[1]) {
				knightMoves[i] = append(knightMoves[i], SquareAt(file+d[0], rank+d[1]))
			}
		}
		for _, d := range kingSteps {
			if onBoard(file+d[0], rank+d[1]) {
				kingMoves[i] = append(kingMoves[i], SquareAt(file+d[0], rank+d[1]))
			}
		}
		for dir, d := range rayDirs {
			f, r := file+d[0], rank+d[1]
			for onBoard(f, r) {
				rays[i][dir] = append(rays[i][dir], SquareAt(f, r))
				f += d[0]
				r += d[1]
			}
		}

		// Pawns never stand on their own back rank or the promotion rank.
		if rank > 0 && rank < 7 {
			pawnPushes[White][i] = append(pawnPushes[White][i], SquareAt(file, rank+1))
			if rank == 1 {
				pawnPushes[White][i] = append(pawnPushes[White][i], SquareAt(file, rank+2))
			}
			pawnPushes[Black][i] = append(pawnPushes[Black][i], SquareAt(file, rank-1))
			if rank == 6 {
				pawnPushes[Black][i] = append(pawnPushes[Black][i], SquareAt(file, rank-2))
			}
			for _, df := range [2]int{-1, 1} {
				if onBoard(file+df, rank+1) {
					pawnCaptures[White][i] = append(pawnCaptures[White][i], SquareAt(file+df, rank+1))
				}
				if onBoard(file+df, rank-1) {
					pawnCaptures[Black][i] = append(pawnCaptures[Black][i], SquareAt(file+df, rank-1))
				}
			}
		}
	}
}
