package engine

import "fmt"

const (
	// MateScore is the magnitude of a mated position. Search scores at or
	// beyond it are forced mates, biased by distance so nearer mates win.
	MateScore = 32767

	// Infinity bounds the root window.
	Infinity = 400000000

	// MaxPly is the deepest ply the search will reach.
	MaxPly = 64
)

// matedAt is the score of a side to move that is mated at ply.
func matedAt(ply int) int {
	return -(MateScore + MaxPly - ply)
}

// ScoreKind tags how a Score should be read.
type ScoreKind uint8

const (
	Centipawns ScoreKind = iota
	Mate
	Draw
)

// Score is a search result from the searching side's point of view. For Mate,
// Value is the number of moves to mate, negative when the side is getting
// mated.
type Score struct {
	Kind  ScoreKind
	Value int
}

// ScoreFromInt decodes a raw search value.
func ScoreFromInt(v int) Score {
	switch {
	case v >= MateScore:
		plies := MaxPly - (v - MateScore)
		return Score{Kind: Mate, Value: (Max(plies, 1) + 1) / 2}
	case v <= -MateScore:
		plies := MaxPly - (-v - MateScore)
		return Score{Kind: Mate, Value: -(Max(plies, 0) + 1) / 2}
	}
	return Score{Kind: Centipawns, Value: v}
}

// Centis returns a centipawn figure suitable for thinking output.
func (s Score) Centis() int {
	switch s.Kind {
	case Mate:
		if s.Value < 0 {
			return -100000 - s.Value
		}
		return 100000 - s.Value
	case Draw:
		return 0
	}
	return s.Value
}

func (s Score) String() string {
	switch s.Kind {
	case Mate:
		return fmt.Sprintf("mate %d", s.Value)
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("cp %d", s.Value)
}
