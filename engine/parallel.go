package engine

import (
	"runtime"
	"sync"
)

// searchRootParallel searches every root child with a full window on a pool
// of workers. Each worker owns a Searcher seeded with a copy of the killers
// and the repetition stack, so nothing mutable is shared. Values are from the
// root mover's point of view, in children order.
func (s *Searcher) searchRootParallel(children []rootChild, depth int, history []uint64) ([]int, []PVLine) {
	values := make([]int, len(children))
	pvs := make([]PVLine, len(children))

	workers := Min(runtime.NumCPU(), len(children))
	jobs := make(chan int)
	results := make([]*Searcher, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		worker := &Searcher{killers: s.killers, states: s.states.clone()}
		results[w] = worker
		wg.Add(1)
		go func(worker *Searcher, id int) {
			defer wg.Done()
			log := logger.With().Int("worker_id", id).Logger()
			for i := range jobs {
				var pv PVLine
				values[i] = -worker.searchChild(children[i].pos, depth, -Infinity, Infinity, false, &pv)
				pvs[i] = pv
				log.Debug().Str("move", children[i].move.String()).Int("value", values[i]).Msg("root move searched")
			}
		}(worker, w)
	}

	for i := range children {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, w := range results {
		s.nodes += w.nodes
		s.qnodes += w.qnodes
		s.stats.add(w.stats)
	}
	return values, pvs
}
