package diagram_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/zhot/diagram"
	"github.com/stretchr/testify/require"
)

// TestLayout_Errors verifies the fail-fast input checks.
func TestLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		size int
		err  error
	}{
		{"Zero", 0, 1000, diagram.ErrTooFewPoints},
		{"Two", 2, 1000, diagram.ErrTooFewPoints},
		{"NoCanvas", 3, 0, diagram.ErrBadCanvasSize},
		{"NegativeCanvas", 3, -10, diagram.ErrBadCanvasSize},
		{"MarkerRoundsToZero", 5, 4, diagram.ErrBadCanvasSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := diagram.Layout(tc.n, tc.size)
			if !errors.Is(err, tc.err) {
				t.Errorf("Layout(%d, %d) error = %v; want %v", tc.n, tc.size, err, tc.err)
			}
		})
	}
}

// TestLayout_CardinalAnchors pins the exact-branch behavior: with four
// points on a 1000px canvas (r = round(500/4) = 125), the markers sit
// precisely on the axes, not a floating-point hair off them.
func TestLayout_CardinalAnchors(t *testing.T) {
	points, err := diagram.Layout(4, 1000)
	require.NoError(t, err)

	require.Equal(t, []diagram.Point{
		{X: 500, Y: 125}, // north
		{X: 875, Y: 500}, // east
		{X: 500, Y: 875}, // south
		{X: 125, Y: 500}, // west
	}, points)
}

// TestLayout_Triangle pins the trigonometric path for N=3, S=1000:
// R=500, r=round(500/3)=167, H=333.
func TestLayout_Triangle(t *testing.T) {
	points, err := diagram.Layout(3, 1000)
	require.NoError(t, err)

	require.Equal(t, []diagram.Point{
		{X: 500, Y: 167},      // north, exact branch
		{X: 788.39, Y: 666.5}, // 120°: (R + H·cos30°, R + H·sin30°)
		{X: 211.61, Y: 666.5}, // 240°: (R − H·sin60°, R + H·cos60°)
	}, points)
}

// TestLayout_ScalesWithCanvas: rescaling the canvas by k scales every
// coordinate by k. With n=5 and S=1000 all radii divide exactly, so k=3
// keeps the geometry proportional to within coordinate rounding.
func TestLayout_ScalesWithCanvas(t *testing.T) {
	const k = 3
	base, err := diagram.Layout(5, 1000)
	require.NoError(t, err)
	scaled, err := diagram.Layout(5, 1000*k)
	require.NoError(t, err)

	for i := range base {
		require.InDelta(t, base[i].X*k, scaled[i].X, 0.02, "point %d X", i)
		require.InDelta(t, base[i].Y*k, scaled[i].Y, 0.02, "point %d Y", i)
	}
}

// TestLayout_CenteredOnCanvas: even angular spacing means the marker
// centroid coincides with the canvas center (S/2, S/2).
func TestLayout_CenteredOnCanvas(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9, 21} {
		points, err := diagram.Layout(n, 1000)
		require.NoError(t, err)
		require.Len(t, points, n)

		var sumX, sumY float64
		for _, p := range points {
			sumX += p.X
			sumY += p.Y
		}
		require.InDelta(t, 500, sumX/float64(n), 0.1, "n=%d centroid X", n)
		require.InDelta(t, 500, sumY/float64(n), 0.1, "n=%d centroid Y", n)
	}
}

// TestNewPoint_Precision: construction rounds both axes to two decimals.
func TestNewPoint_Precision(t *testing.T) {
	p := diagram.NewPoint(1.0061, 2.994999)
	require.Equal(t, diagram.Point{X: 1.01, Y: 2.99}, p)
	require.Equal(t, "(1.01, 2.99)", p.String())
}
