package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/montplusa/atropos/pkg/ai/minimax"
	"github.com/montplusa/atropos/pkg/game"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("ATROPOS_DEBUG") == "1" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: atropos '<board>'")
		os.Exit(2)
	}

	state, err := game.ParseState(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ai := minimax.New(minimax.DefaultConfig(), nil)
	m, err := ai.ChooseMove(state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if m.IsDummy() {
		fmt.Fprintln(os.Stderr, "error: no playable cell left")
		os.Exit(1)
	}
	fmt.Print(m)
}
