package board

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once per promotion piece.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 64)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.PseudoMoves(p.sideToMove, pc.bufFor(depth))
	pc.bufs[depth] = moves

	var nodes uint64
	for _, m := range moves {
		child, ok := p.TryMove(m)
		if !ok {
			continue
		}
		if m.Promo == None {
			nodes += perftRec(child, depth-1, pc)
			continue
		}
		if depth == 1 {
			nodes += uint64(len(promotionPieces))
			continue
		}
		for _, pt := range promotionPieces {
			promoted, _ := p.TryMove(Move{Src: m.Src, Dst: m.Dst, Promo: pt})
			nodes += perftRec(promoted, depth-1, pc)
		}
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		child, _ := p.TryMove(m)
		result[m] = Perft(child, depth-1)
	}
	return result
}

// PerftMismatch is a root move whose count differs from the reference
// generator. A count of zero on one side means the move is missing there.
type PerftMismatch struct {
	Move      string
	Got, Want uint64
}

func (m PerftMismatch) String() string {
	return fmt.Sprintf("%s: got %d want %d", m.Move, m.Got, m.Want)
}

// VerifyPerft compares PerftDivide against the dragontoothmg generator and
// returns the root moves whose counts disagree, sorted by move.
func VerifyPerft(p *Position, depth int) []PerftMismatch {
	got := make(map[string]uint64)
	for m, n := range PerftDivide(p, depth) {
		got[m.String()] = n
	}

	ref := dragontoothmg.ParseFen(p.ToFEN(false))
	want := make(map[string]uint64)
	for _, m := range ref.GenerateLegalMoves() {
		unapply := ref.Apply(m)
		want[m.String()] = referencePerft(&ref, depth-1)
		unapply()
	}

	var out []PerftMismatch
	for mv, n := range want {
		if got[mv] != n {
			out = append(out, PerftMismatch{Move: mv, Got: got[mv], Want: n})
		}
	}
	for mv, n := range got {
		if _, ok := want[mv]; !ok {
			out = append(out, PerftMismatch{Move: mv, Got: n})
		}
	}
	slices.SortStableFunc(out, func(a, b PerftMismatch) bool { return a.Move < b.Move })
	return out
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
