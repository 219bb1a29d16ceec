package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/montplusa/atropos/pkg/ai/minimax"
	"github.com/montplusa/atropos/pkg/ai/neural"
	"github.com/montplusa/atropos/pkg/ai/random"
	"github.com/montplusa/atropos/pkg/ai/trivial"
	"github.com/montplusa/atropos/pkg/game"
)

func main() {
	// Parse command line flags
	episodes := flag.Int("episodes", 1000, "Number of training episodes")
	batchSize := flag.Int("batch", 256, "Examples per network update")
	reportInterval := flag.Int("report", 50, "Report progress and save every N episodes")
	name := flag.String("name", "sample", "Name of the network")
	output := flag.String("output", "", "Output weights file (default <name>.json)")
	weights := flag.String("weights", "", "Start from an existing weights file")
	initialTemp := flag.Float64("temp-init", 0.3, "Initial exploration rate")
	finalTemp := flag.Float64("temp-final", 0.0, "Final exploration rate")
	boardSize := flag.Int("board", 7, "Board size (smaller is faster)")
	opponent := flag.String("opponent", "random", "Opponent AI (random|trivial|minimax)")
	learningRate := flag.Float64("lr", 0.01, "Learning rate for neural network training")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	networkConfig := neural.DefaultNetworkConfig(*boardSize)
	if *weights != "" {
		var err error
		if networkConfig, err = neural.LoadConfig(*weights); err != nil {
			log.Fatal().Err(err).Msg("failed to load weights")
		}
	}
	networkConfig.Name = *name

	ai, err := neural.New(networkConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create AI")
	}
	ai.SetLearningRate(*learningRate)

	var opp game.AI
	switch *opponent {
	case "random":
		opp = random.New()
	case "trivial":
		opp = trivial.New()
	case "minimax":
		opp = minimax.New(minimax.DefaultConfig(), nil)
	default:
		log.Fatal().Str("opponent", *opponent).Msg("unknown opponent")
	}

	path := *output
	if path == "" {
		path = *name + ".json"
	}

	stats, err := ai.Train(neural.TrainingConfig{
		Episodes:           *episodes,
		BatchSize:          *batchSize,
		ReportInterval:     *reportInterval,
		Output:             path,
		InitialTemperature: *initialTemp,
		FinalTemperature:   *finalTemp,
		Opponent:           opp,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	fmt.Printf("Training complete: W:%d L:%d D:%d, weights saved to %s\n",
		stats.Wins, stats.Losses, stats.Draws, path)
}
