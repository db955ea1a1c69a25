package bench

import (
	"testing"

	"chesscore/board"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func benchGenerateMoves(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos.GenerateMoves()
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, board.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, kiwipete)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	benchGenerateMoves(b, pos6)
}

func benchPseudoMoves(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.PseudoMoves(pos.SideToMove(), buf[:0])
	}
}

func BenchmarkPseudoMoves_Initial(b *testing.B) {
	benchPseudoMoves(b, board.FENStartPos)
}

func BenchmarkPseudoMoves_EP(b *testing.B) {
	benchPseudoMoves(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
}

func BenchmarkTryMove_AllMoves_Initial(b *testing.B) {
	pos, err := board.ParseFEN(board.FENStartPos)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if _, ok := pos.TryMove(m); !ok {
				b.Fatalf("illegal move in cached list: %v", m)
			}
		}
	}
}
