package main

import (
	"regexp"
)

// scriptStep is a command and the patterns its replies must match, one per
// reply line. A nil want expects no reply.
type scriptStep struct {
	cmd  string
	want []string
}

const (
	thinkingLine = `^\d+ -?\d+ \d+ \d+ \d+ [a-h1-8qrbn ]+$`
	moveLine     = `^move [a-h][1-8][a-h][1-8][qrbn]?$`
)

// testScript is the built-in session replayed by -mode=test.
var testScript = []scriptStep{
	{cmd: "xboard"},
	{cmd: "protover 2", want: []string{"feature setboard=1", "feature debug=1", "feature done=1"}},
	{cmd: "new"},
	{cmd: "random"},
	{cmd: "level 40 10 0"},
	{cmd: "post"},
	{cmd: "easy"},
	{cmd: "ping 7", want: []string{"^pong 7$"}},
	{cmd: "d2d4", want: []string{thinkingLine, moveLine}},
	{cmd: "e2e5", want: []string{`^Error \(invalid move\): e2e5$`}},
	{cmd: "z9z9", want: []string{`^Error \(invalid square\): z9z9$`}},
	{cmd: "setboard 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"},
	{cmd: "go", want: []string{thinkingLine, "^move a1a8$", `^1-0 \{White mates\}$`}},
	{cmd: "setboard 7k/4Q3/6K1/8/8/8/8/8 w - - 0 1"},
	{cmd: "e7f7", want: []string{`^1/2-1/2 \{Stalemate\}$`}},
	{cmd: "force"},
	{cmd: "f2f3"},
	{cmd: "e7e5"},
	{cmd: "g2g4"},
	{cmd: "d8h4", want: []string{`^0-1 \{Black mates\}$`}},
	{cmd: "result 0-1 {Black mates}"},
	{cmd: "perft 2", want: []string{`^# perft 2 400$`}},
	{cmd: "quit"},
}

// runScript replays steps through s, checking every reply against its
// pattern. It returns the number of mismatches.
func runScript(s *session, steps []scriptStep) int {
	failures := 0
	for _, step := range steps {
		quit, replies := s.apply(step.cmd)
		s.reply(replies)

		if len(replies) != len(step.want) {
			s.log.Error().
				Str("command", step.cmd).
				Int("got", len(replies)).
				Int("want", len(step.want)).
				Msg("unexpected number of replies")
			failures++
		}
		for i, r := range replies {
			if i >= len(step.want) {
				break
			}
			if !regexp.MustCompile(step.want[i]).MatchString(r) {
				s.log.Error().
					Str("command", step.cmd).
					Str("got", r).
					Str("want", step.want[i]).
					Msg("reply mismatch")
				failures++
			}
		}
		if quit {
			break
		}
	}
	return failures
}
