package logger

import "io"

var (
	FlagVerboseCount int  // -V, -VV
	FlagQuiet        bool // --quiet/-q
	FlagSilent       bool // --silent/-s
	FlagJSON         bool // --json, for CI
	FlagNoColor      bool // --no-color
)

// ConfigureLoggerTo applies the CLI flags with w as the console writer.
func ConfigureLoggerTo(w io.Writer) {
	out := w
	var level string
	switch {
	case FlagSilent:
		level = "error"
		out = io.Discard
	case FlagQuiet:
		level = "error"
	case FlagVerboseCount > 0:
		level = "debug"
	default:
		level = "info"
	}

	Configure(Options{
		Level: level,
		JSON:  FlagJSON,
		Color: !FlagJSON && !FlagNoColor,
		Out:   out,
	})
}
