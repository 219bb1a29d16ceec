package minimax

import (
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/montplusa/atropos/pkg/game"
)

// MinimaxAI picks moves with a depth-limited minimax search.
type MinimaxAI struct {
	cfg   Config
	rng   Source
	nodes atomic.Int64
}

// New returns a MinimaxAI. A nil rng selects DefaultSource.
func New(cfg Config, rng Source) *MinimaxAI {
	if rng == nil {
		rng = DefaultSource()
	}
	return &MinimaxAI{cfg: cfg, rng: rng}
}

func (ai *MinimaxAI) Name() string {
	return "minimax"
}

// Config returns the search parameters.
func (ai *MinimaxAI) Config() Config {
	return ai.cfg
}

// ChooseMove searches the position as the maximizer at full depth.
func (ai *MinimaxAI) ChooseMove(state game.State) (game.Move, error) {
	return ai.BestMove(state, ai.cfg.MaxDepth, Maximizer)
}

// BestMove returns the best move for side with the given depth budget.
//
// A call with depth >= Config.MaxDepth is a top-level call and always yields
// a concrete placement when the board has a free cell. Deeper calls may
// return a dummy move that only carries a score.
func (ai *MinimaxAI) BestMove(state game.State, depth int, side Side) (game.Move, error) {
	root := depth >= ai.cfg.MaxDepth
	if !root {
		return ai.bestMove(state, depth, side, false)
	}
	ai.nodes.Store(0)
	m, err := ai.bestMove(state, depth, side, true)
	if err != nil {
		return game.Move{}, err
	}
	log.Debug().
		Int("depth", depth).
		Str("side", side.String()).
		Int64("nodes", ai.nodes.Load()).
		Str("move", m.String()).
		Int("score", m.Score).
		Msg("best-move")
	return m, nil
}

// Score evaluates m played on state by side, looking depth plies ahead.
func (ai *MinimaxAI) Score(state game.State, m game.Move, depth int, side Side) (int, error) {
	if depth <= 0 {
		return 0, nil
	}
	next, err := state.Apply(m)
	if err != nil {
		return 0, err
	}
	reply, err := ai.bestMove(next, depth-1, side.Flip(), false)
	if err != nil {
		return 0, err
	}
	return reply.Score, nil
}

func (ai *MinimaxAI) bestMove(state game.State, depth int, side Side, root bool) (game.Move, error) {
	ai.nodes.Add(1)
	cfg := ai.cfg
	b := state.Board

	if state.LastMove == nil {
		return game.NewMove(game.Red, b.CoordAt(1, 1)), nil
	}
	last := state.LastMove.Coord()

	children, anyFree := game.ChildMoves(b, last)
	if !anyFree {
		free := b.CountFree()
		if free > cfg.EndgameTactic && !root {
			return game.DummyMove(cfg.FreeMoveScore * side.Sign()), nil
		}
		children = game.FreeMoves(b)
		if root && free > cfg.EndgameTactic {
			depth = cfg.WideDepth
		}
	}

	if len(children) == 0 {
		if root {
			if m, ok := game.FallbackMove(b, last); ok {
				return m.WithScore(cfg.LoseScore * side.Sign()), nil
			}
		}
		return game.DummyMove(cfg.LoseScore * side.Sign()), nil
	}

	scores, err := ai.scoreChildren(state, children, depth, side, root && cfg.Parallel)
	if err != nil {
		return game.Move{}, err
	}

	best := game.DummyMove(-side.Sign() * cfg.Sentinel)
	for i, child := range children {
		child.Score = scores[i]
		if side.Better(child.Score, best.Score) {
			best = child
		}
		if child.Score == best.Score && ai.rng.Intn(100) < cfg.TieBreakPercent {
			best = child
		}
	}
	return best, nil
}

// scoreChildren scores children in order. In parallel mode each child is
// searched in its own goroutine; the result slice keeps the child order so the
// caller merges them exactly as a sequential scan would.
func (ai *MinimaxAI) scoreChildren(state game.State, children []game.Move, depth int, side Side, parallel bool) ([]int, error) {
	scores := make([]int, len(children))
	if !parallel {
		for i, c := range children {
			s, err := ai.Score(state, c, depth, side)
			if err != nil {
				return nil, err
			}
			scores[i] = s
		}
		return scores, nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range children {
		i, c := i, c
		g.Go(func() error {
			s, err := ai.Score(state, c, depth, side)
			scores[i] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
