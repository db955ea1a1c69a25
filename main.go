package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chesscore/engine"
	"github.com/rs/zerolog"
)

type config struct {
	mode       string
	logLevel   string
	logFile    string
	consoleLog bool
	show       bool
	depth      int
	book       string
	eco        bool
	parallel   bool
	seed       int64
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("chesscore", flag.ContinueOnError)
	fs.StringVar(&cfg.mode, "mode", "bot", "run mode: bot or test")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "trace, debug, info, warn, error or fatal")
	fs.StringVar(&cfg.logFile, "log-file", "chesscore.log", "log file, truncated at start; empty disables it")
	fs.BoolVar(&cfg.consoleLog, "console-log", false, "also log to stderr")
	fs.BoolVar(&cfg.show, "show", false, "print the board after every command")
	fs.IntVar(&cfg.depth, "depth", 0, "search depth in plies, overriding the difficulty")
	fs.StringVar(&cfg.book, "book", "", "CSV opening line book (eco,name,moves)")
	fs.BoolVar(&cfg.eco, "eco", true, "use the ECO opening book")
	fs.BoolVar(&cfg.parallel, "parallel", false, "search root moves in parallel")
	fs.Int64Var(&cfg.seed, "seed", 1, "opening book randomisation seed")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch cfg.mode {
	case "bot", "test":
	default:
		return cfg, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	return cfg, nil
}

// newLogger builds the root logger. The returned func releases the log file.
func newLogger(cfg config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.logLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var writers []io.Writer
	closer := func() {}
	if cfg.logFile != "" {
		f, err := os.Create(cfg.logFile)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closer = func() { f.Close() }
	}
	if cfg.consoleLog {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	return l, closer, nil
}

func newSession(cfg config, out io.Writer, log zerolog.Logger) (*session, error) {
	g, err := engine.NewGame("")
	if err != nil {
		return nil, err
	}
	g.MaxDepth = cfg.depth
	g.SetParallel(cfg.parallel)

	if cfg.book != "" {
		f, err := os.Open(cfg.book)
		if err != nil {
			return nil, fmt.Errorf("open book: %w", err)
		}
		b, err := engine.LoadLineBook(f, cfg.seed)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.book, err)
		}
		log.Info().Str("path", cfg.book).Int("positions", b.Len()).Msg("line book loaded")
		g.AddBook(b)
	}
	if cfg.eco {
		g.AddBook(engine.NewECOBook(cfg.seed))
	}

	s := newXboard(g, out, log)
	s.showBoard = cfg.show
	return s, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, closer, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer()
	engine.SetLogger(log)

	log.Info().
		Strs("args", os.Args[1:]).
		Str("mode", cfg.mode).
		Str("log_level", cfg.logLevel).
		Bool("console_log", cfg.consoleLog).
		Int("depth", cfg.depth).
		Bool("parallel", cfg.parallel).
		Msg("program configured")

	s, err := newSession(cfg, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.mode == "test" {
		if failures := runScript(s, testScript); failures > 0 {
			fmt.Fprintf(os.Stderr, "%d scripted replies did not match\n", failures)
			os.Exit(1)
		}
		return
	}

	s.banner()
	if err := s.run(os.Stdin); err != nil {
		log.Error().Err(err).Msg("command loop stopped")
		os.Exit(1)
	}
	log.Info().Msg("program ending")
}
