package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"chesscore/board"
	"chesscore/engine"
	"github.com/rs/zerolog"
)

func main() {
	depthFlag := flag.Int("depth", 5, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	parallel := flag.Bool("parallel", false, "search root moves in parallel")
	verbose := flag.Bool("v", false, "log every root move")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}
	engine.SetLogger(log)

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	fen := board.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	log.Info().Str("fen", fen).Int("depth", *depthFlag).Int("repeat", *repeatFlag).Msg("searchbench")

	var nodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			log.Fatal().Err(err).Msg("bad FEN")
		}
		s := engine.NewSearcher()
		s.Parallel = *parallel

		res, err := s.IterativeSearch(pos, *depthFlag, []uint64{pos.Hash()})
		if err != nil {
			log.Fatal().Err(err).Msg("search failed")
		}
		nodes += res.Nodes + res.QNodes
		log.Info().
			Int("iteration", i+1).
			Str("bestmove", res.Move.String()).
			Str("score", res.Score.String()).
			Dur("time", res.Elapsed).
			Msg("iteration done")
	}
	total := time.Since(startAll)
	log.Info().
		Dur("total", total).
		Uint64("nodes", nodes).
		Float64("nps", float64(nodes)/total.Seconds()).
		Msg("done")
}
