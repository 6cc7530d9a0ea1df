package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	gm "negachess/chessmg"
	"negachess/engine"
)

type player int

const (
	human player = iota
	computer
)

func parsePlayer(s string) (player, error) {
	switch strings.ToLower(s) {
	case "human", "h":
		return human, nil
	case "engine", "computer", "e", "c":
		return computer, nil
	}
	return human, fmt.Errorf("unknown player %q (want human or engine)", s)
}

var errNoSuchMove = errors.New("not a legal move")

// ANSI colors, used only when stdout is a terminal.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

// session drives one game between any mix of humans and the engine.
type session struct {
	gs       *gm.GameState
	legal    []gm.Move
	players  [2]player
	depth    int
	maxPlies int
	rng      *rand.Rand
	out      io.Writer
	color    bool
}

func newSession(players [2]player, depth, maxPlies int, rng *rand.Rand, out io.Writer) *session {
	s := &session{
		gs:       gm.NewGameState(),
		players:  players,
		depth:    depth,
		maxPlies: maxPlies,
		rng:      rng,
		out:      out,
	}
	s.refresh()
	return s
}

func (s *session) refresh() { s.legal = s.gs.LegalMoves() }

func (s *session) gameOver() bool { return len(s.legal) == 0 }

func (s *session) hasHuman() bool { return s.players[gm.White] == human || s.players[gm.Black] == human }

func (s *session) paint(color, msg string) string {
	if !s.color {
		return msg
	}
	return color + msg + colorReset
}

func (s *session) prompt() string {
	side := "white"
	if s.gs.SideToMove() == gm.Black {
		side = "black"
	}
	return s.paint(colorCyan, side) + "> "
}

// start shows the position and lets the engine move if it is on turn.
func (s *session) start() {
	s.report()
	s.playEngine()
}

// handle processes one input line and reports whether the session should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return false
	case "quit", "exit", "q", "x":
		return true
	case "help", "?":
		s.help()
	case "board", "b":
		s.report()
	case "moves", "m":
		names := make([]string, 0, len(s.legal))
		for _, m := range s.legal {
			names = append(names, m.String())
		}
		fmt.Fprintf(s.out, "%d legal: %s\n", len(names), strings.Join(names, " "))
	case "undo", "z":
		s.undo()
	case "reset", "r":
		s.gs.Reset()
		s.refresh()
		fmt.Fprintln(s.out, "new game")
		s.start()
	default:
		if err := s.humanMove(line); err != nil {
			fmt.Fprintln(s.out, s.paint(colorRed, fmt.Sprintf("%s: %v", line, err)))
			return false
		}
		s.playEngine()
	}
	return false
}

func (s *session) help() {
	fmt.Fprintln(s.out, "enter moves as coordinates (e2e4, e7e8q)")
	fmt.Fprintln(s.out, "  moves|m   list legal moves")
	fmt.Fprintln(s.out, "  board|b   show the board")
	fmt.Fprintln(s.out, "  undo|z    take back to your previous turn")
	fmt.Fprintln(s.out, "  reset|r   start a new game")
	fmt.Fprintln(s.out, "  quit|q    leave")
}

func (s *session) humanMove(coord string) error {
	if s.gameOver() {
		return errors.New("game is over; undo or reset")
	}
	if s.players[s.gs.SideToMove()] != human {
		return errors.New("engine is to move")
	}
	m, ok := gm.FindMove(s.legal, coord)
	if !ok {
		return errNoSuchMove
	}
	s.apply(m, "you")
	return nil
}

// playEngine moves for every consecutive engine turn.
func (s *session) playEngine() {
	for !s.gameOver() && s.players[s.gs.SideToMove()] == computer {
		if s.maxPlies > 0 && s.gs.Ply() >= s.maxPlies {
			fmt.Fprintf(s.out, "ply limit %d reached\n", s.maxPlies)
			return
		}
		m, ok := engine.ChooseMove(s.gs, s.depth, s.rng)
		if !ok {
			return
		}
		s.apply(m, "engine")
	}
}

func (s *session) apply(m gm.Move, who string) {
	mover := s.gs.SideToMove()
	s.gs.ApplyMove(m)
	s.refresh()
	fmt.Fprintf(s.out, "%s (%s) plays %s [%s]\n", who, mover, m, m.UCI())
	s.report()
}

// undo takes back moves until a human is to move again.
func (s *session) undo() {
	if s.gs.Ply() == 0 {
		fmt.Fprintln(s.out, "nothing to undo")
		return
	}
	s.gs.UndoMove()
	for s.hasHuman() && s.gs.Ply() > 0 && s.players[s.gs.SideToMove()] == computer {
		s.gs.UndoMove()
	}
	s.refresh()
	s.report()
}

func (s *session) report() {
	fmt.Fprintln(s.out, s.gs.String())
	switch {
	case s.gs.Checkmate():
		winner := "White"
		if s.gs.SideToMove() == gm.White {
			winner = "Black"
		}
		fmt.Fprintln(s.out, s.paint(colorGreen, winner+" wins by checkmate"))
	case s.gs.Stalemate():
		fmt.Fprintln(s.out, s.paint(colorGreen, "Stalemate"))
	case s.gs.InCheck():
		fmt.Fprintln(s.out, s.paint(colorRed, "Check"))
	}
}
