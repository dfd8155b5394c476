package field

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	magneticThreshold = 0.05
	magneticDensity   = 10
	maxSymbolsPerSide = 15

	electricThreshold = 1
	arrowCount        = 5
	arrowPadding      = 50
)

// Symbol marks one magnetic field glyph. Out is true for a field pointing out
// of the screen (drawn as a dot), false for into it (drawn as a cross).
type Symbol struct {
	X, Y float64
	Out  bool
}

// MagneticSymbols lays out a square grid of glyphs whose side grows with |bz|.
// Weak fields draw nothing.
func MagneticSymbols(bz, width, height float64) []Symbol {
	mag := math.Abs(bz)
	if !(mag > magneticThreshold) {
		return nil
	}

	side := int(math.Sqrt(mag * magneticDensity))
	side = max(1, min(side, maxSymbolsPerSide))

	dx := width / float64(side+1)
	dy := height / float64(side+1)
	out := make([]Symbol, 0, side*side)
	for r := 1; r <= side; r++ {
		for c := 1; c <= side; c++ {
			out = append(out, Symbol{X: float64(c) * dx, Y: float64(r) * dy, Out: bz > 0})
		}
	}
	return out
}

// Arrow is a field line drawn from From to To; the head sits at To.
type Arrow struct {
	From, To cp.Vector
}

// ElectricArrows returns evenly spaced field lines along the dominant axis of
// e, pointing the way a positive charge would be pushed.
func ElectricArrows(e cp.Vector, width, height float64) []Arrow {
	if math.Abs(e.X) <= electricThreshold && math.Abs(e.Y) <= electricThreshold {
		return nil
	}

	out := make([]Arrow, 0, arrowCount)
	for i := 1; i <= arrowCount; i++ {
		var a Arrow
		if math.Abs(e.X) > math.Abs(e.Y) {
			y := height / (arrowCount + 1) * float64(i)
			a = Arrow{From: cp.Vector{X: arrowPadding, Y: y}, To: cp.Vector{X: width - arrowPadding, Y: y}}
			if e.X < 0 {
				a.From, a.To = a.To, a.From
			}
		} else {
			x := width / (arrowCount + 1) * float64(i)
			a = Arrow{From: cp.Vector{X: x, Y: arrowPadding}, To: cp.Vector{X: x, Y: height - arrowPadding}}
			if e.Y < 0 {
				a.From, a.To = a.To, a.From
			}
		}
		out = append(out, a)
	}
	return out
}
