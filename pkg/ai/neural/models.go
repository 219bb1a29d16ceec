package neural

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/patrikeh/go-deep"
	"lukechampine.com/frand"

	"github.com/montplusa/atropos/pkg/game"
)

// NetworkConfig defines the neural network architecture
type NetworkConfig struct {
	Name         string        `json:"name"`
	BoardSize    int           `json:"board_size"`
	InputSize    int           `json:"input_size"`
	HiddenLayers []int         `json:"hidden_layers"`
	LearningRate float64       `json:"learning_rate"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

func DefaultNetworkConfig(boardSize int) NetworkConfig {
	return NetworkConfig{
		Name:         "default",
		BoardSize:    boardSize,
		InputSize:    featureSize(boardSize),
		HiddenLayers: []int{64, 32},
		LearningRate: 0.01,
	}
}

// NeuralAI implements game.AI with a value network. The network predicts the
// outcome for the player who made the last move: +1 win, -1 loss.
type NeuralAI struct {
	network     *deep.Neural
	config      NetworkConfig
	temperature float64 // probability of an exploratory random move
}

// New creates a NeuralAI with optional pre-trained weights
func New(config NetworkConfig) (*NeuralAI, error) {
	if config.BoardSize < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", config.BoardSize)
	}
	if want := featureSize(config.BoardSize); config.InputSize != want {
		return nil, fmt.Errorf("input size %d does not match board size %d (want %d)",
			config.InputSize, config.BoardSize, want)
	}

	layout := append([]int{}, config.HiddenLayers...)
	layout = append(layout, 1) // Output: single evaluation score

	network := deep.NewNeural(&deep.Config{
		Inputs:     config.InputSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.1, 0.0),
		Bias:       true,
	})

	// Apply loaded weights if any
	if config.Weights != nil {
		network.ApplyWeights(config.Weights)
	}

	return &NeuralAI{network: network, config: config}, nil
}

func (n *NeuralAI) Name() string {
	return fmt.Sprintf("neural (%s)", n.config.Name)
}

// SetTemperature sets the exploration rate used while training
func (n *NeuralAI) SetTemperature(temp float64) {
	n.temperature = temp
}

// SetLearningRate sets the learning rate for the neural network
func (n *NeuralAI) SetLearningRate(lr float64) {
	n.config.LearningRate = lr
}

// Config returns the configuration with the current weights
func (n *NeuralAI) Config() NetworkConfig {
	c := n.config
	c.Weights = n.network.Dump().Weights
	return c
}

// Evaluate returns the predicted outcome for the player who just moved
func (n *NeuralAI) Evaluate(state game.State) float64 {
	return n.network.Predict(stateToFeatures(state))[0]
}

// ChooseMove plays the non-losing move with the best predicted outcome
func (n *NeuralAI) ChooseMove(state game.State) (game.Move, error) {
	if state.Size() != n.config.BoardSize {
		return game.Move{}, fmt.Errorf("network trained for size %d, board is %d", n.config.BoardSize, state.Size())
	}
	moves := state.SafeMoves()
	if len(moves) == 0 {
		if m, ok := state.AnyMove(); ok {
			return m, nil
		}
		return game.Move{}, fmt.Errorf("neural: no free cell")
	}
	if n.temperature > 0 && frand.Float64() < n.temperature {
		return moves[frand.Intn(len(moves))], nil
	}

	best, bestValue := moves[0], -1e9
	for _, m := range moves {
		next, err := state.Apply(m)
		if err != nil {
			return game.Move{}, err
		}
		if v := n.Evaluate(next); v > bestValue {
			best, bestValue = m, v
		}
	}
	return best, nil
}

func featureSize(boardSize int) int {
	interior := boardSize * (boardSize + 1) / 2
	return interior*len(game.Colors) + 1
}

// stateToFeatures encodes every playable cell as a one-hot color triple,
// followed by a flag telling whether the next player is bound to the
// neighborhood of the last move.
func stateToFeatures(state game.State) []float64 {
	features := make([]float64, featureSize(state.Size()))
	idx := 0
	state.Board.EachInterior(func(c game.Coord) bool {
		if color := state.Board.At(c); color != game.Uncolored {
			features[idx+int(color)-1] = 1
		}
		idx += len(game.Colors)
		return true
	})
	if state.MustPlayAdjacent() {
		features[idx] = 1
	}
	return features
}

// LoadConfig reads a network configuration saved by SaveConfig
func LoadConfig(path string) (NetworkConfig, error) {
	var config NetworkConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("decode %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes config as JSON
func SaveConfig(path string, config NetworkConfig) error {
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
