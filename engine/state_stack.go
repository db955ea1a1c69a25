package engine

import (
	"chesscore/board"
)

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   uint64
	Rule50 int
}

// stateStack holds the game history followed by the current search path.
type stateStack struct {
	states []State
}

// reset rebuilds the stack from the hashes of the game so far, oldest first.
// The halfmove clock of historical entries is unknown, so repetition scans
// over them are bounded by the current position's clock instead.
func (s *stateStack) reset(history []uint64, root *board.Position) {
	s.states = s.states[:0]
	for _, h := range history {
		s.states = append(s.states, State{Hash: h})
	}
	if n := len(s.states); n == 0 || s.states[n-1].Hash != root.Hash() {
		s.states = append(s.states, State{Hash: root.Hash()})
	}
	s.states[len(s.states)-1].Rule50 = root.HalfmoveClock()
}

func (s *stateStack) clone() stateStack {
	return stateStack{states: append([]State(nil), s.states...)}
}

func (s *stateStack) push(p *board.Position) {
	s.states = append(s.states, State{Hash: p.Hash(), Rule50: p.HalfmoveClock()})
}

func (s *stateStack) pop() {
	if len(s.states) == 0 {
		return
	}
	s.states = s.states[:len(s.states)-1]
}

// repetitions counts how often the top position occurred since the last
// irreversible move, itself included.
func (s *stateStack) repetitions() int {
	if len(s.states) == 0 {
		return 0
	}
	curr := s.states[len(s.states)-1]
	start := Max(len(s.states)-1-curr.Rule50, 0)
	count := 1
	for i := len(s.states) - 2; i >= start; i-- {
		if s.states[i].Hash == curr.Hash {
			count++
		}
	}
	return count
}

// RepetitionCount returns how many times the last hash of history occurs in
// it, looking back at most rule50 entries.
func RepetitionCount(history []uint64, rule50 int) int {
	if len(history) == 0 {
		return 0
	}
	var s stateStack
	for _, h := range history {
		s.states = append(s.states, State{Hash: h})
	}
	s.states[len(s.states)-1].Rule50 = rule50
	return s.repetitions()
}
