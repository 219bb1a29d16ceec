package game

// AI はゲーム用エージェントのインターフェース
type AI interface {
	// 名前
	Name() string
	// 手番の局面で置く手を選ぶ
	ChooseMove(state State) (Move, error)
}
