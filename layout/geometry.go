// Package layout provides the geometric primitives and frame model shared by
// the flow layouter and the page pipeline: lengths, points, sizes, axis-pairs,
// side- and corner-quadruples, alignment, and the Frame/Region types that
// layout results are expressed in.
package layout

import "math"

// Abs is an absolute length in points. Lengths may be +Inf; arithmetic with
// +Inf saturates and comparisons treat it as greater than any finite value.
type Abs float64

const (
	Pt Abs = 1.0
	Mm Abs = 2.8346456692913
	Cm Abs = 28.346456692913
	In Abs = 72.0
)

// Inf is the canonical infinite length used for auto-sized page axes and
// unconstrained regions.
func Inf() Abs { return Abs(math.Inf(1)) }

func (a Abs) IsZero() bool     { return a == 0 }
func (a Abs) IsFinite() bool   { return !math.IsInf(float64(a), 0) }
func (a Abs) IsInfinite() bool { return math.IsInf(float64(a), 0) }

func (a Abs) Min(b Abs) Abs {
	if a < b {
		return a
	}
	return b
}

func (a Abs) Max(b Abs) Abs {
	if a > b {
		return a
	}
	return b
}

// Fits reports whether a itself (as an available budget) accommodates the
// needed length, within a small epsilon to absorb floating-point noise.
func (a Abs) Fits(needed Abs) bool {
	return needed <= a+1e-6
}

// Fr is a fractional unit (`1fr`), used for spacing that shares leftover
// space proportionally with other fractional spacers.
type Fr float64

func (f Fr) IsZero() bool { return f == 0 }

// Share computes this fractional amount's slice of `space`, given the total
// fractional sum `total` across all competing fractional items.
func (f Fr) Share(total Fr, space Abs) Abs {
	if total <= 0 {
		return 0
	}
	return Abs(float64(f) / float64(total) * float64(space))
}

// Ratio is a dimensionless fraction (e.g. a percentage expressed as 0..1+).
type Ratio float64

func (r Ratio) Resolve(whole Abs) Abs { return Abs(float64(r) * float64(whole)) }

// Point is a 2D position in frame-local coordinates.
type Point struct {
	X, Y Abs
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) IsZero() bool      { return p.X == 0 && p.Y == 0 }

func PointWithX(x Abs) Point { return Point{X: x} }
func PointWithY(y Abs) Point { return Point{Y: y} }

// Size is a width/height pair.
type Size struct {
	Width, Height Abs
}

func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

func (s Size) Min(o Size) Size {
	return Size{Width: s.Width.Min(o.Width), Height: s.Height.Min(o.Height)}
}

func (s Size) Sum() Abs { return s.Width + s.Height }

// Axes is a generic (X, Y) pair, used for both geometric quantities (sizes,
// expansion flags) and alignment pairs.
type Axes[T any] struct {
	X, Y T
}

func NewAxes[T any](x, y T) Axes[T] { return Axes[T]{X: x, Y: y} }

func SplatAxes[T any](v T) Axes[T] { return Axes[T]{X: v, Y: v} }

// Sides is a generic (Left, Top, Right, Bottom) quadruple, used for margins,
// insets and outsets.
type Sides[T any] struct {
	Left, Top, Right, Bottom T
}

func SplatSides[T any](v T) Sides[T] {
	return Sides[T]{Left: v, Top: v, Right: v, Bottom: v}
}

// SumSides collapses a Sides[Abs] into the width/height it contributes on
// each axis (Left+Right, Top+Bottom). A free function rather than a method:
// Go methods must be declared on the generic type itself, not one concrete
// instantiation of it.
func SumSides(s Sides[Abs]) Size {
	return Size{Width: s.Left + s.Right, Height: s.Top + s.Bottom}
}

// Corners is a generic (TopLeft, TopRight, BottomRight, BottomLeft) quadruple,
// used for border radii.
type Corners[T any] struct {
	TopLeft, TopRight, BottomRight, BottomLeft T
}

func SplatCorners[T any](v T) Corners[T] {
	return Corners[T]{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

// Relative is a length with both an absolute and a ratio component,
// resolved against a base length.
type Relative struct {
	Abs   Abs
	Ratio Ratio
}

func RelAbs(a Abs) Relative { return Relative{Abs: a} }

func (r Relative) IsZero() bool { return r.Abs == 0 && r.Ratio == 0 }

func (r Relative) RelativeTo(base Abs) Abs {
	return r.Abs + r.Ratio.Resolve(base)
}

// FixedAlignment is a resolved, direction-independent vertical or horizontal
// alignment: Start, Center or End.
type FixedAlignment int

const (
	AlignStart FixedAlignment = iota
	AlignCenter
	AlignEnd
)

// Position returns the offset within `free` extra space that this alignment
// implies (0 for Start, free/2 for Center, free for End).
func (a FixedAlignment) Position(free Abs) Abs {
	switch a {
	case AlignCenter:
		return free / 2
	case AlignEnd:
		return free
	default:
		return 0
	}
}

// Max returns the stronger of the two alignments under the total order
// Start < Center < End. Used by the flow commit's monotonic "ruler".
func (a FixedAlignment) Max(b FixedAlignment) FixedAlignment {
	if b > a {
		return b
	}
	return a
}

// Inv returns the opposite horizontal alignment (Start<->End, Center fixed).
func (a FixedAlignment) Inv() FixedAlignment {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	default:
		return AlignCenter
	}
}

// Alignment pairs a horizontal and vertical FixedAlignment.
type Alignment = Axes[FixedAlignment]

// Dir is a text/layout direction.
type Dir int

const (
	LTR Dir = iota
	RTL
	TTB
	BTT
)

func (d Dir) IsPositive() bool { return d == LTR || d == TTB }

// Axis is the generic main/cross axis a Dir runs along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Axis reports which geometric axis this direction runs along.
func (d Dir) Axis() Axis {
	if d == LTR || d == RTL {
		return AxisX
	}
	return AxisY
}

// Other returns the axis perpendicular to this one.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}
