package config

// Verbosity controls how much diagnostic detail a rendered report includes.
type Verbosity int

const (
	// VerbosityMinimal omits traces entirely and prints a hint on how to
	// enable them.
	VerbosityMinimal Verbosity = iota
	// VerbosityShort includes captured traces without source snippets.
	VerbosityShort
	// VerbosityFull additionally includes source snippets around visible
	// frames.
	VerbosityFull
)

// Environment variables read by the verbosity and capture policies. They
// override the corresponding Settings fields when set.
const (
	// EnvTrace governs trace detail for panics and, unless EnvLibTrace is
	// set, for library errors too.
	EnvTrace = "DEBRIEF_TRACE"
	// EnvLibTrace overrides EnvTrace for library errors only.
	EnvLibTrace = "DEBRIEF_LIB_TRACE"
	// EnvSpans disables span capture when set to "0" or "false".
	EnvSpans = "DEBRIEF_SPANS"
	// EnvShowHidden disables stack frame filtering when set to anything
	// but "0".
	EnvShowHidden = "DEBRIEF_SHOW_HIDDEN"
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityShort:
		return "short"
	case VerbosityFull:
		return "full"
	default:
		return "minimal"
	}
}

// ParseVerbosity interprets the raw text of a trace setting: "full" selects
// VerbosityFull, empty or "0" selects VerbosityMinimal, any other value
// selects VerbosityShort.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "full":
		return VerbosityFull
	case "", "0":
		return VerbosityMinimal
	default:
		return VerbosityShort
	}
}
