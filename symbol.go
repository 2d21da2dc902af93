package zint

import "strconv"

// OutputOptions is a bitset of caller-requested rendering behaviors.
type OutputOptions int

const (
	// BarcodeStdout writes the plotted output to standard output instead
	// of OutFile.
	BarcodeStdout OutputOptions = 1 << iota
	// BoldText requests a bold font weight for human-readable text, where
	// the symbology's Extendable rule permits it.
	BoldText
	// SmallText forces bold applicability regardless of Extendable (see
	// design note §9's bold predicate).
	SmallText
)

// Has reports whether every bit in mask is set.
func (o OutputOptions) Has(mask OutputOptions) bool {
	return o&mask == mask
}

// Symbol is the resolved vector barcode handed to an output backend: the
// symbology driving layout rules, the vector graph to render, and the
// caller-supplied colors, options, and output destination. It owns no
// persistent state beyond these fields; the vector graph is borrowed
// read-only by the emf package.
type Symbol struct {
	Symbology Symbology
	Vector    *VectorGraph

	// ECI is the symbol-level Extended Channel Interpretation, resolved
	// by ResolveSegmentECI from a message's segments (0 means "use the
	// symbology's default ECI", see Symbology.DefaultECI).
	ECI int

	FgColour Color
	BgColour Color

	OutputOptions OutputOptions
	OutFile       string

	// ErrTxt is populated with a short numeric-tag failure message
	// ("NNN: message") on error, in addition to the Go error a backend's
	// Plot function returns directly, so a caller presenting diagnostics
	// to an end user has a short, stable string to show instead of a
	// wrapped Go error chain.
	ErrTxt string
}

// SetError records a short numeric-tag message in ErrTxt, following the
// "NNN: message" convention of the original backend.
func (s *Symbol) SetError(tag int, message string) {
	s.ErrTxt = strconv.Itoa(tag) + ": " + message
}
