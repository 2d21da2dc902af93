// Package zint is a Go implementation of the output pipeline of a barcode
// symbology library: an Extended Channel Interpretation (ECI) text
// transcoder (package eci) and an Enhanced Metafile (EMF) vector-graphics
// serializer (package emf), sharing the Symbol value defined here.
package zint

// Symbology identifies a barcode standard. Only the subset of behavior
// that the ECI/EMF output pipeline branches on is modeled here: default
// ECI selection (DefaultECI), the bold-text predicate (Extendable), the
// colored-fill rendering mode (BARCODE_ULTRA), and the bullseye circle
// interleave (BARCODE_MAXICODE).
type Symbology int

const (
	SymbologyCode128 Symbology = iota
	SymbologyCode39
	SymbologyCode93
	SymbologyCodabar
	SymbologyITF
	SymbologyEAN13
	SymbologyEAN8
	SymbologyUPCA
	SymbologyUPCE
	SymbologyQRCode
	SymbologyPDF417
	SymbologyDataMatrix
	SymbologyAztec
	SymbologyMaxicode
	SymbologyGridMatrix
	SymbologyUPNQR
	SymbologyUltra
)

// String returns the canonical zint backend name of the symbology.
func (s Symbology) String() string {
	switch s {
	case SymbologyCode128:
		return "CODE128"
	case SymbologyCode39:
		return "CODE39"
	case SymbologyCode93:
		return "CODE93"
	case SymbologyCodabar:
		return "CODABAR"
	case SymbologyITF:
		return "ITF"
	case SymbologyEAN13:
		return "EANX"
	case SymbologyEAN8:
		return "EANX"
	case SymbologyUPCA:
		return "UPCA"
	case SymbologyUPCE:
		return "UPCE"
	case SymbologyQRCode:
		return "QRCODE"
	case SymbologyPDF417:
		return "PDF417"
	case SymbologyDataMatrix:
		return "DATAMATRIX"
	case SymbologyAztec:
		return "AZTEC"
	case SymbologyMaxicode:
		return "MAXICODE"
	case SymbologyGridMatrix:
		return "GRIDMATRIX"
	case SymbologyUPNQR:
		return "UPNQR"
	case SymbologyUltra:
		return "ULTRA"
	default:
		return "UNKNOWN"
	}
}

// nonExtendable lists the symbologies whose human-readable text is fixed
// width and cannot grow to accommodate a bold font (ported from zint's
// is_extendable(): UPC/EAN-family symbologies print the check digit and
// add-on text in a layout fixed by the standard itself).
var nonExtendable = map[Symbology]bool{
	SymbologyEAN13: true,
	SymbologyEAN8:  true,
	SymbologyUPCA:  true,
	SymbologyUPCE:  true,
	SymbologyITF:   true,
}

// Extendable reports whether the symbology's human-readable text may grow
// to accommodate a bold font. See the bold-text rule in design note §9:
// bold is applied only when BoldText is set and either the symbology is
// not Extendable, or SmallText forces it regardless.
func (s Symbology) Extendable() bool {
	return !nonExtendable[s]
}

// DefaultECI returns the ECI a segment with no explicit ECI falls back to
// for this symbology, used by BestECISegs to suppress gratuitous ECI
// switches back to the symbology's own default.
func (s Symbology) DefaultECI() int {
	switch s {
	case SymbologyGridMatrix:
		return 29
	case SymbologyUPNQR:
		return 4
	default:
		return 3
	}
}
