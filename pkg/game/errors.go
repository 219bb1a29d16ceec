package game

import "errors"

var (
	// ErrMalformedInput は盤面文字列が解釈できないときのエラー
	ErrMalformedInput = errors.New("malformed input")
	// ErrIllegalPlacement は着色済みや盤外のマスに置こうとしたときのエラー
	ErrIllegalPlacement = errors.New("illegal placement")
)
