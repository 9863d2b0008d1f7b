// SPDX-License-Identifier: MIT
// Package: zhot/diagram
//
// layout.go — even circular placement with exact cardinal anchors.
//
// Determinism contract:
//   • Layout(n, size) is a pure function; equal inputs ⇒ equal output.
//   • Cardinal angles (0°, 90°, 180°, 270°) are placed by exact branches,
//     never through the trigonometric path. This is a precision device,
//     not a shortcut: sin/cos would land ~1e-14 off the canvas axis and
//     markers on the border would clip by a sub-pixel.

package diagram

import (
	"fmt"
	"math"
)

// MinPoints is the smallest ring Layout will place. Below three points
// there is no circle to arrange.
const MinPoints = 3

// fullCircle is one full turn in degrees.
const fullCircle = 360.0

// Cardinal angles, degrees clockwise from north.
const (
	angleNorth = 0.0
	angleEast  = 90.0
	angleSouth = 180.0
	angleWest  = 270.0
)

// roundHalf returns round(size/2): the diagram (backdrop) radius.
func roundHalf(size int) float64 {
	return math.Round(float64(size) / 2)
}

// roundNth returns round(diagramRadius/n): the per-marker radius.
func roundNth(diagramRadius float64, n int) float64 {
	return math.Round(diagramRadius / float64(n))
}

// Layout places n points at equal angular steps of 360°/n on a square
// canvas of size px, clockwise from north. The ring radius is
// H = R - r where R = round(size/2) is the diagram radius and
// r = round(R/n) the per-marker radius, so markers stay inside the border.
//
// Returns ErrTooFewPoints for n < MinPoints and ErrBadCanvasSize when the
// canvas is non-positive or too small for n distinct markers.
//
// Complexity: O(n) time, O(n) space.
func Layout(n, size int) ([]Point, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("diagram.Layout: n=%d: %w", n, ErrTooFewPoints)
	}
	if size <= 0 {
		return nil, fmt.Errorf("diagram.Layout: size=%d: %w", size, ErrBadCanvasSize)
	}

	diagramRadius := roundHalf(size)
	markerRadius := roundNth(diagramRadius, n)
	if markerRadius < 1 {
		return nil, fmt.Errorf("diagram.Layout: size=%d too small for %d markers: %w",
			size, n, ErrBadCanvasSize)
	}
	// Distance from the canvas center to each marker center.
	hypotenuse := diagramRadius - markerRadius

	slice := fullCircle / float64(n)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, placePoint(float64(i)*slice, float64(size), diagramRadius, markerRadius, hypotenuse))
	}
	return points, nil
}

// placePoint resolves one angle (degrees clockwise from north) to a canvas
// position. Cardinal anchors first, exactly; everything else reduces into
// its quadrant and combines H·sin/H·cos with the quadrant's sign/axis map.
func placePoint(angle, size, diagramRadius, markerRadius, hypotenuse float64) Point {
	switch angle {
	case angleNorth, fullCircle:
		return NewPoint(diagramRadius, markerRadius)
	case angleEast:
		return NewPoint(size-markerRadius, diagramRadius)
	case angleSouth:
		return NewPoint(diagramRadius, size-markerRadius)
	case angleWest:
		return NewPoint(markerRadius, diagramRadius)
	}

	radians := math.Pi * math.Mod(angle, angleEast) / 180
	opposite := hypotenuse * math.Sin(radians)
	adjacent := hypotenuse * math.Cos(radians)
	switch {
	case angle < angleEast: // NE quadrant
		return NewPoint(diagramRadius+opposite, diagramRadius-adjacent)
	case angle < angleSouth: // SE quadrant
		return NewPoint(diagramRadius+adjacent, diagramRadius+opposite)
	case angle < angleWest: // SW quadrant
		return NewPoint(diagramRadius-opposite, diagramRadius+adjacent)
	default: // NW quadrant
		return NewPoint(diagramRadius-adjacent, diagramRadius-opposite)
	}
}
