package zint

import "github.com/zintgo/zint/eci"

// ResolveSegmentECI assigns an ECI to every segment in segs that doesn't
// already carry an explicit one, using sym.Symbology's default ECI to
// decide when a resolved ECI can be left implicit (see
// eci.BestECISegs). If the first segment receives an ECI this way, it is
// also recorded as sym.ECI, mirroring the original's symbol->eci
// assignment. It returns the first ECI assigned, or 0 if none could be
// (some segment's text converts under no candidate ECI and is not valid
// UTF-8 either).
func ResolveSegmentECI(sym *Symbol, segs []eci.Segment) eci.ID {
	first := eci.BestECISegs(eci.ID(sym.Symbology.DefaultECI()), segs)
	if len(segs) > 0 && segs[0].ECI != 0 {
		sym.ECI = int(segs[0].ECI)
	}
	return first
}
