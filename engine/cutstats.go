package engine

import (
	"fmt"
	"io"
)

// CutStatistics collects counts for each pruning/cutoff mechanism.
type CutStatistics struct {
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	KillerHits       uint64
	SEESkips         uint64
	CheckExtensions  uint64
	IllegalMoves     uint64
	RepetitionDraws  uint64
}

func (c *CutStatistics) add(o CutStatistics) {
	c.BetaCutoffs += o.BetaCutoffs
	c.QStandPatCutoffs += o.QStandPatCutoffs
	c.QBetaCutoffs += o.QBetaCutoffs
	c.KillerHits += o.KillerHits
	c.SEESkips += o.SEESkips
	c.CheckExtensions += o.CheckExtensions
	c.IllegalMoves += o.IllegalMoves
	c.RepetitionDraws += o.RepetitionDraws
}

// Dump writes the statistics as protocol comment lines prefixed by prefix.
func (c CutStatistics) Dump(w io.Writer, prefix string) {
	fmt.Fprintf(w, "%sCut statistics:\n", prefix)
	fmt.Fprintf(w, "%s  Beta cutoffs: %d\n", prefix, c.BetaCutoffs)
	fmt.Fprintf(w, "%s  QStandPat cutoffs: %d\n", prefix, c.QStandPatCutoffs)
	fmt.Fprintf(w, "%s  QBeta cutoffs: %d\n", prefix, c.QBetaCutoffs)
	fmt.Fprintf(w, "%s  Killer hits: %d\n", prefix, c.KillerHits)
	fmt.Fprintf(w, "%s  SEE skips: %d\n", prefix, c.SEESkips)
	fmt.Fprintf(w, "%s  Check extensions: %d\n", prefix, c.CheckExtensions)
	fmt.Fprintf(w, "%s  Illegal moves: %d\n", prefix, c.IllegalMoves)
	fmt.Fprintf(w, "%s  Repetition draws: %d\n", prefix, c.RepetitionDraws)
}
