// SPDX-License-Identifier: MIT
// Package: zhot/diagram
//
// point.go — the fixed-precision 2D point value type.

package diagram

import (
	"fmt"
	"math"
)

// coordinate precision: two decimal places, fixed for the whole package.
const precisionFactor = 100

// Round2 rounds v to two decimal places, the precision every coordinate
// in this package carries. Exported because label sizing shares it.
func Round2(v float64) float64 {
	return math.Round(v*precisionFactor) / precisionFactor
}

// Point is an immutable 2D coordinate. Both components are rounded to two
// decimal places at construction, so equal inputs always compare equal and
// layouts are reproducible across platforms.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point, applying the package precision to both axes.
func NewPoint(x, y float64) Point {
	return Point{X: Round2(x), Y: Round2(y)}
}

// String renders the point as "(x, y)" with its stored precision.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
