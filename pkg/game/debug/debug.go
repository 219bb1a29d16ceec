//go:build !(js && wasm)

package debug

import "github.com/rs/zerolog/log"

// Log は探索や対戦の途中経過を debug レベルで出す
func Log(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}
