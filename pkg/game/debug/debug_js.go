//go:build js && wasm

package debug

import (
	"fmt"
	"syscall/js"
)

// Enabled が false の間はブラウザのコンソールに出さない
var Enabled = false

func Log(format string, args ...any) {
	if !Enabled {
		return
	}
	js.Global().Get("console").Call("debug", "[atropos] "+fmt.Sprintf(format, args...))
}
