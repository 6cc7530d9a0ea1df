// Command play runs a chess game in the terminal between humans and/or the engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"negachess/engine"
)

// lineReader is satisfied by *readline.Instance and by scannerReader.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

// scannerReader reads piped input without prompts.
type scannerReader struct {
	sc *bufio.Scanner
}

func (r *scannerReader) Readline() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *scannerReader) SetPrompt(string) {}

func main() {
	white := flag.String("white", "human", "who plays White: human or engine")
	black := flag.String("black", "engine", "who plays Black: human or engine")
	depth := flag.Int("depth", engine.DefaultDepth, "engine search depth in plies")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the random fallback move")
	maxPlies := flag.Int("maxplies", 300, "stop engine play after this many plies (0 = no limit)")
	history := flag.String("history", ".negachess_history", "readline history file")
	flag.Parse()

	var players [2]player
	var err error
	if players[0], err = parsePlayer(*white); err != nil {
		log.Fatalf("-white: %v", err)
	}
	if players[1], err = parsePlayer(*black); err != nil {
		log.Fatalf("-black: %v", err)
	}
	if *depth < 0 || *depth > engine.MaxDepth {
		log.Fatalf("depth must be in 0..%d, got %d", engine.MaxDepth, *depth)
	}

	s := newSession(players, *depth, *maxPlies, rand.New(rand.NewSource(*seed)), os.Stdout)
	s.color = term.IsTerminal(int(os.Stdout.Fd()))

	var in lineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          s.prompt(),
			HistoryFile:     *history,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			log.Fatalf("readline: %v", err)
		}
		defer rl.Close()
		in = rl
		fmt.Println("Type 'help' for commands")
	} else {
		in = &scannerReader{sc: bufio.NewScanner(os.Stdin)}
	}

	run(s, in)
}

func run(s *session, in lineReader) {
	s.start()
	for {
		in.SetPrompt(s.prompt())
		line, err := in.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}
		if s.handle(line) {
			return
		}
	}
}
