package board

import "math/rand"

var zobristPiece [2][7][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable between runs and in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// castleMask packs the four castling rights as they would be written to FEN.
func (p *Position) castleMask() int {
	mask := 0
	if !p.castled[White] {
		if p.castleRight(White, H1) {
			mask |= 1
		}
		if p.castleRight(White, A1) {
			mask |= 2
		}
	}
	if !p.castled[Black] {
		if p.castleRight(Black, H8) {
			mask |= 4
		}
		if p.castleRight(Black, A8) {
			mask |= 8
		}
	}
	return mask
}

// ComputeZobrist calculates the hash of placement, side to move, castling
// rights and en-passant file from scratch.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := range p.squares {
		pc := &p.squares[sq]
		if pc.Type != None {
			key ^= zobristPiece[pc.Color][pc.Type][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castleMask()]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.File()]
	}
	return key
}
