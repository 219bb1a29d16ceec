//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/montplusa/atropos/pkg/ai/minimax"
	"github.com/montplusa/atropos/pkg/game"
	"github.com/montplusa/atropos/pkg/game/debug"
)

// atroposMove(board) は次の一手 "(c,x,y,z)" を返す。失敗時は {error: "..."}
func atroposMove(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return map[string]interface{}{"error": "expected one board argument"}
	}
	state, err := game.ParseState(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	m, err := minimax.New(minimax.DefaultConfig(), nil).ChooseMove(state)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	if m.IsDummy() {
		return map[string]interface{}{"error": "no playable cell left"}
	}
	return m.String()
}

func setDebug(this js.Value, args []js.Value) interface{} {
	debug.Enabled = len(args) > 0 && args[0].Truthy()
	return nil
}

func main() {
	js.Global().Set("atroposMove", js.FuncOf(atroposMove))
	js.Global().Set("atroposDebug", js.FuncOf(setDebug))
	select {} // ブロック
}
