package neural

import (
	"fmt"
	"time"

	"github.com/patrikeh/go-deep/training"
	"github.com/rs/zerolog/log"

	"github.com/montplusa/atropos/pkg/game"
)

// TrainingConfig specifies parameters for self-play training
type TrainingConfig struct {
	Episodes           int     // Number of self-play games
	BatchSize          int     // Examples collected before each network update
	ReportInterval     int     // How often to report progress and save weights
	Output             string  // Path of the saved weights
	InitialTemperature float64 // Starting exploration rate
	FinalTemperature   float64 // Final exploration rate
	Opponent           game.AI // Opponent AI for self-play
}

// TrainingStats tracks metrics during training
type TrainingStats struct {
	Wins       int
	Losses     int
	Draws      int
	TotalTurns int
	StartTime  time.Time
}

// Train plays Episodes games against the opponent, swapping seats every game,
// and fits the network to the final outcome seen from each mover.
func (n *NeuralAI) Train(config TrainingConfig) (TrainingStats, error) {
	stats := TrainingStats{StartTime: time.Now()}
	if config.ReportInterval <= 0 {
		return stats, fmt.Errorf("report interval must be greater than 0")
	}
	if config.BatchSize <= 0 {
		return stats, fmt.Errorf("batch size must be greater than 0")
	}
	if config.Opponent == nil {
		return stats, fmt.Errorf("opponent is required")
	}

	log.Info().
		Str("opponent", config.Opponent.Name()).
		Int("episodes", config.Episodes).
		Int("batch", config.BatchSize).
		Float64("temp-init", config.InitialTemperature).
		Float64("temp-final", config.FinalTemperature).
		Msg("self-play-training")

	var trainingData training.Examples
	for episode := 0; episode < config.Episodes; episode++ {
		// Linear temperature decay
		progress := float64(episode) / float64(max(config.Episodes-1, 1))
		n.SetTemperature(config.InitialTemperature + (config.FinalTemperature-config.InitialTemperature)*progress)

		seat := episode % 2
		agents := [2]game.AI{n, config.Opponent}
		if seat == 1 {
			agents = [2]game.AI{config.Opponent, n}
		}
		result := game.NewGameRunner(agents[0], agents[1], n.config.BoardSize).Run()

		switch result.Winner {
		case seat:
			stats.Wins++
		case -1:
			stats.Draws++
		default:
			stats.Losses++
		}
		stats.TotalTurns += len(result.Plies)

		examples, err := gameExamples(result)
		if err != nil {
			return stats, err
		}
		trainingData = append(trainingData, examples...)

		// Train the network periodically
		if len(trainingData) >= config.BatchSize {
			trainStart := time.Now()
			trainingData.Shuffle()
			trainer := training.NewTrainer(training.NewSGD(n.config.LearningRate, 0.5, 0.0, false), 0)
			iterations := len(trainingData)/config.BatchSize + 1
			trainer.Train(n.network, trainingData, nil, iterations)
			log.Debug().
				Int("examples", len(trainingData)).
				Str("elapsed", formatDuration(time.Since(trainStart))).
				Msg("trained-batch")
			trainingData = nil
		}

		if (episode+1)%config.ReportInterval == 0 || episode == config.Episodes-1 {
			played := episode + 1
			log.Info().
				Int("episode", played).
				Int("wins", stats.Wins).
				Int("losses", stats.Losses).
				Int("draws", stats.Draws).
				Float64("win-rate", float64(stats.Wins)/float64(played)*100).
				Float64("avg-turns", float64(stats.TotalTurns)/float64(played)).
				Str("elapsed", formatDuration(time.Since(stats.StartTime))).
				Msg("training-progress")

			if config.Output != "" {
				if err := SaveConfig(config.Output, n.Config()); err != nil {
					return stats, err
				}
			}
		}
	}
	return stats, nil
}

// gameExamples labels every position of a finished game with the final
// outcome for the player who produced it.
func gameExamples(result game.BattleResult) (training.Examples, error) {
	state, err := game.ParseState(result.Initial)
	if err != nil {
		return nil, err
	}
	examples := make(training.Examples, 0, len(result.Plies))
	for _, ply := range result.Plies {
		if state, err = state.Apply(ply.Move); err != nil {
			return nil, err
		}
		reward := 0.0
		switch result.Winner {
		case ply.Player:
			reward = 1
		case 1 - ply.Player:
			reward = -1
		}
		examples = append(examples, training.Example{
			Input:    stateToFeatures(state),
			Response: []float64{reward},
		})
	}
	return examples, nil
}

// formatDuration returns a human-readable string for a duration
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
