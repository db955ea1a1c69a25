package engine

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger routes engine diagnostics to l. The default logger discards
// everything.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "engine").Logger()
}
