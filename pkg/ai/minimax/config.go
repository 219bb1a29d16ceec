package minimax

// Default search parameters.
const (
	// MaxDepth is the depth budget of the top-level call.
	MaxDepth = 4
	// EndgameTactic is the free-cell count above which a free move is scored
	// with FreeMoveScore instead of being expanded.
	EndgameTactic = 6
	// WideDepth replaces the budget when the top-level call has to enumerate
	// free moves on a board with more than EndgameTactic free cells.
	WideDepth = 2
	// FreeMoveScore rewards the side that receives a free move.
	FreeMoveScore = 5
	// LoseScore is the score of a forced loss, seen by the maximizer.
	LoseScore = -10
	// Sentinel bounds every reachable score.
	Sentinel = 100
	// TieBreakPercent is the chance that an equally scored child replaces
	// the current best.
	TieBreakPercent = 10
)

// Config holds the tunables of the search.
type Config struct {
	MaxDepth        int  `json:"max_depth"`
	EndgameTactic   int  `json:"endgame_tactic"`
	WideDepth       int  `json:"wide_depth"`
	FreeMoveScore   int  `json:"free_move_score"`
	LoseScore       int  `json:"lose_score"`
	Sentinel        int  `json:"sentinel"`
	TieBreakPercent int  `json:"tie_break_percent"`
	Parallel        bool `json:"parallel"` // evaluate top-level children concurrently
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:        MaxDepth,
		EndgameTactic:   EndgameTactic,
		WideDepth:       WideDepth,
		FreeMoveScore:   FreeMoveScore,
		LoseScore:       LoseScore,
		Sentinel:        Sentinel,
		TieBreakPercent: TieBreakPercent,
	}
}
