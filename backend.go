package zint

import "fmt"

// PlotFunc renders a resolved Symbol through an output backend (e.g. the
// emf package's Plot) at the given clockwise rotation in degrees.
type PlotFunc func(sym *Symbol, rotateAngle int) error

var backends = map[string]PlotFunc{}

// RegisterBackend registers a rendering backend under name. Backend
// packages call this from their own init(), so that new back-ends (SVG, PNG, PS, EPS — outside this module's scope) can be
// added without changing Plot's caller.
func RegisterBackend(name string, fn PlotFunc) {
	backends[name] = fn
}

// Plot dispatches to the backend registered under name.
func Plot(sym *Symbol, backend string, rotateAngle int) error {
	fn, ok := backends[backend]
	if !ok {
		return fmt.Errorf("zint: no backend registered for %q", backend)
	}
	return fn(sym, rotateAngle)
}
