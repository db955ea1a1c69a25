package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chesscore/board"
	"chesscore/engine"
	"github.com/rs/zerolog"
)

// session is one xboard conversation. Replies go to out; diagnostics go to
// the logger only.
type session struct {
	game *engine.Game
	out  io.Writer
	log  zerolog.Logger

	post        bool
	force       bool
	showBoard   bool
	timeControl string
}

func newXboard(g *engine.Game, out io.Writer, log zerolog.Logger) *session {
	return &session{game: g, out: out, log: log}
}

func (s *session) banner() {
	fmt.Fprintln(s.out, "Chess Core")
	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, `Type "quit" to exit`)
	fmt.Fprintln(s.out, `Type "show" to show board`)
	fmt.Fprintln(s.out, "")
}

// run reads commands from in until quit or end of input.
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, replies := s.apply(line)
		s.reply(replies)
		if quit {
			return nil
		}
		if s.showBoard {
			fmt.Fprintln(s.out, renderBoard(s.game.Position()))
		}
	}
	return scanner.Err()
}

func (s *session) reply(lines []string) {
	for _, l := range lines {
		s.log.Info().Str("reply", l).Msg("<<")
		fmt.Fprintln(s.out, l)
	}
}

// apply executes one command line and returns the replies. A panic inside a
// command is reported as an engine error and the session carries on.
func (s *session) apply(line string) (quit bool, replies []string) {
	s.log.Info().Str("command", line).Msg(">>")
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("command", line).Msg("command failed")
			replies = append(replies, fmt.Sprintf("Error (internal engine error): %v", r))
		}
		s.log.Debug().Str("fen", s.game.FEN(false)).Msg("position")
	}()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	g := s.game

	switch cmd := fields[0]; cmd {
	case "quit":
		return true, nil

	case "xboard", "accepted", "rejected", "variant", "random", "edit", "hint", "bk",
		"time", "otim", "st", "?", "computer", "name", "rating":
		// accepted, nothing to do

	case "protover":
		if len(fields) == 2 && fields[1] == "2" {
			replies = []string{"feature setboard=1", "feature debug=1", "feature done=1"}
		}

	case "new":
		s.restart()

	case "undo", "remove":
		if err := g.Undo(); err != nil {
			replies = []string{fmt.Sprintf("Error (cannot undo): %v", err)}
		}

	case "easy":
		g.Difficulty = engine.Easy
	case "hard":
		g.Difficulty = engine.Hard

	case "force":
		s.force = true

	case "go":
		s.force = false
		g.HumanPlayer = g.WhoseMove().Other()
		replies = s.engineMove()

	case "playother":
		s.force = false
		g.HumanPlayer = g.WhoseMove()

	case "white", "black":
		g.HumanPlayer = board.White
		if cmd == "white" {
			g.HumanPlayer = board.Black
		}
		if !s.force && g.WhoseMove() != g.HumanPlayer {
			replies = s.engineMove()
		}

	case "level":
		s.timeControl = strings.Join(fields[1:], " ")
		s.log.Info().Str("level", s.timeControl).Msg("time control recorded, depth still bounds the search")

	case "sd":
		if len(fields) < 2 {
			return false, []string{"Error (missing depth): sd"}
		}
		d, err := strconv.Atoi(fields[1])
		if err != nil || d < 1 {
			return false, []string{"Error (invalid depth): " + fields[1]}
		}
		g.MaxDepth = d

	case "ping":
		if len(fields) > 1 {
			replies = []string{"pong " + fields[1]}
		}

	case "post":
		s.post = true
	case "nopost":
		s.post = false

	case "result":
		s.log.Info().Str("result", strings.Join(fields[1:], " ")).Msg("game result")

	case "1-0", "0-1", "1/2-1/2":
		s.restart()

	case "setboard":
		fen := strings.Join(fields[1:], " ")
		if err := g.SetBoard(fen); err != nil {
			replies = []string{fmt.Sprintf("Error (invalid position): %v", err)}
		}

	case "show":
		s.showBoard = !s.showBoard

	case "fen":
		replies = []string{"# " + g.FEN(false)}

	case "eval":
		replies = []string{fmt.Sprintf("# eval %d", engine.Evaluate(g.Position()))}

	case "stats":
		var buf strings.Builder
		g.LastSearch().Cuts.Dump(&buf, "# ")
		replies = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	case "perft":
		replies = s.perft(fields[1:])

	case "save", "load":
		replies = s.persist(cmd, fields[1:])

	default:
		if len(cmd) == 4 || len(cmd) == 5 {
			replies = s.userMove(cmd)
		} else {
			replies = []string{"Error (unknown command): " + cmd}
		}
	}
	return false, replies
}

// restart begins a new game from the standard position with the human
// playing White.
func (s *session) restart() {
	if err := s.game.SetBoard(""); err != nil {
		s.log.Error().Err(err).Msg("restart failed")
	}
	s.game.HumanPlayer = board.White
	s.force = false
}

func (s *session) userMove(text string) []string {
	m, err := board.ParseMove(text)
	if err != nil {
		return []string{"Error (invalid square): " + text}
	}
	g := s.game
	if g.IsGameOver() {
		return []string{"Error (game over): " + text}
	}

	if m.Promo != board.None {
		prev := g.PromoteTo
		g.PromoteTo = m.Promo
		defer func() { g.PromoteTo = prev }()
	}
	if _, err := g.ApplyUserMove(m.Src, m.Dst); err != nil {
		s.log.Debug().Err(err).Str("move", text).Msg("move rejected")
		return []string{"Error (invalid move): " + text}
	}

	if res, over := s.gameResult(); over {
		s.restart()
		return []string{res}
	}
	if s.force || g.WhoseMove() == g.HumanPlayer {
		return nil
	}
	return s.engineMove()
}

// engineMove searches, plays and reports the engine's move, followed by the
// result when the move ends the game.
func (s *session) engineMove() []string {
	g := s.game
	if res, over := s.gameResult(); over {
		s.restart()
		return []string{res}
	}

	res, err := g.ComputeEngineMove()
	if err != nil {
		s.log.Error().Err(err).Msg("engine move failed")
		return []string{fmt.Sprintf("Error (engine): %v", err)}
	}

	var out []string
	if s.post {
		out = append(out, fmt.Sprintf("%d %d %d %d %d %s",
			res.Depth, res.Score.Centis(), res.Elapsed.Milliseconds()/10, res.Nodes, res.QNodes, res.PV.String()))
	}
	moves := g.Moves()
	out = append(out, "move "+moves[len(moves)-1].Record.String())

	if result, over := s.gameResult(); over {
		out = append(out, result)
		s.restart()
	}
	return out
}

// gameResult reports the xboard result line when the game is over.
func (s *session) gameResult() (string, bool) {
	g := s.game
	if !g.IsGameOver() {
		return "", false
	}
	switch g.Result() {
	case "1-0":
		return "1-0 {White mates}", true
	case "0-1":
		return "0-1 {Black mates}", true
	}
	reason := g.DrawReason()
	if reason == "stalemate" {
		return "1/2-1/2 {Stalemate}", true
	}
	return "1/2-1/2 {Draw by " + reason + "}", true
}

func (s *session) perft(args []string) []string {
	if len(args) < 1 {
		return []string{"Error (missing depth): perft"}
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return []string{"Error (invalid depth): " + args[0]}
	}
	nodes := board.Perft(s.game.Position(), depth)
	return []string{fmt.Sprintf("# perft %d %d", depth, nodes)}
}

// persist saves or loads the game as PGN.
func (s *session) persist(cmd string, args []string) []string {
	if len(args) < 1 {
		return []string{"Error (missing path): " + cmd}
	}
	path := strings.Join(args, " ")

	if cmd == "save" {
		f, err := os.Create(path)
		if err != nil {
			return []string{fmt.Sprintf("Error (save failed): %v", err)}
		}
		defer f.Close()
		if err := s.game.SaveGame(f); err != nil {
			return []string{fmt.Sprintf("Error (save failed): %v", err)}
		}
		return []string{"# saved " + path}
	}

	f, err := os.Open(path)
	if err != nil {
		return []string{fmt.Sprintf("Error (load failed): %v", err)}
	}
	defer f.Close()
	if err := s.game.LoadGame(f); err != nil {
		return []string{fmt.Sprintf("Error (load failed): %v", err)}
	}
	s.force = false
	return []string{"# loaded " + path}
}
