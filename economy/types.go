package economy

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateEndowment is returned when an endowment cannot span a
// non-degenerate Edgeworth box: a component is zero, negative, NaN or ±Inf.
var ErrDegenerateEndowment = errors.New("economy: degenerate endowment")

// Utility is a scalar utility over two goods. Implementations must be pure:
// the same (x, y) always yields the same value.
type Utility interface {
	Eval(x, y float64) float64
}

// UtilityFunc adapts an ordinary function to the Utility interface.
type UtilityFunc func(x, y float64) float64

// Eval calls f(x, y).
func (f UtilityFunc) Eval(x, y float64) float64 { return f(x, y) }

// Point is agent A's bundle: X units of the first good, Y of the second.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Endowment holds the initial bundles of both agents.
type Endowment struct {
	AX float64 `json:"ax" yaml:"ax"`
	AY float64 `json:"ay" yaml:"ay"`
	BX float64 `json:"bx" yaml:"bx"`
	BY float64 `json:"by" yaml:"by"`
}

// Validate reports ErrDegenerateEndowment (wrapped with the offending field)
// unless every component is finite and strictly positive.
func (e Endowment) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{{"ax", e.AX}, {"ay", e.AY}, {"bx", e.BX}, {"by", e.BY}}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrDegenerateEndowment, f.name)
		}
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrDegenerateEndowment, f.name, f.v)
		}
	}

	return nil
}

// A returns agent A's initial bundle, which is also the endowment point
// drawn in the box.
func (e Endowment) A() Point { return Point{X: e.AX, Y: e.AY} }

// Box returns the Edgeworth box spanned by the aggregate endowment.
// Call Validate first; Box does not check its input.
func (e Endowment) Box() Box {
	return Box{TotalX: e.AX + e.BX, TotalY: e.AY + e.BY}
}

// Box is the set of feasible allocations [0, TotalX] × [0, TotalY].
type Box struct {
	TotalX float64 `json:"total_x" yaml:"total_x"`
	TotalY float64 `json:"total_y" yaml:"total_y"`
}

// NewBox returns a Box after checking both sides are finite and positive.
func NewBox(totalX, totalY float64) (Box, error) {
	b := Box{TotalX: totalX, TotalY: totalY}
	if err := b.Validate(); err != nil {
		return Box{}, err
	}

	return b, nil
}

// Validate reports ErrDegenerateEndowment if a side is non-positive or non-finite.
func (b Box) Validate() error {
	if !(b.TotalX > 0) || math.IsInf(b.TotalX, 0) {
		return fmt.Errorf("%w: total_x must be finite and > 0, got %g", ErrDegenerateEndowment, b.TotalX)
	}
	if !(b.TotalY > 0) || math.IsInf(b.TotalY, 0) {
		return fmt.Errorf("%w: total_y must be finite and > 0, got %g", ErrDegenerateEndowment, b.TotalY)
	}

	return nil
}

// Complement returns agent B's bundle when agent A holds p.
func (b Box) Complement(p Point) Point {
	return Point{X: b.TotalX - p.X, Y: b.TotalY - p.Y}
}

// Center is the allocation that splits both goods evenly.
func (b Box) Center() Point {
	return Point{X: b.TotalX / 2, Y: b.TotalY / 2}
}

// Contains reports whether p lies strictly inside the box shrunk by margin on
// every side. A zero margin is the open box.
func (b Box) Contains(p Point, margin float64) bool {
	return p.X > margin && p.X < b.TotalX-margin &&
		p.Y > margin && p.Y < b.TotalY-margin
}
