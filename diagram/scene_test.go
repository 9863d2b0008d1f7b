package diagram_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/katalvlaran/zhot/diagram"
	"github.com/katalvlaran/zhot/tournament"
	"github.com/stretchr/testify/require"
)

// sceneFixture builds catalog+tournament+layout for n moves on a 1000px canvas.
func sceneFixture(t *testing.T, n int) (*catalog.Catalog, *tournament.Tournament, []diagram.Point) {
	t.Helper()
	records := make([]catalog.Record, n)
	for i := range records {
		records[i] = catalog.Record{Name: fmt.Sprintf("M%d", i)}
	}
	cat, err := catalog.New(records)
	require.NoError(t, err)
	tour, err := tournament.Build(cat)
	require.NoError(t, err)
	points, err := diagram.Layout(n, 1000)
	require.NoError(t, err)
	return cat, tour, points
}

// TestAssemble_EdgeCount: one edge per win, N(N-1)/2 in total.
func TestAssemble_EdgeCount(t *testing.T) {
	for n := 3; n <= 21; n += 2 {
		cat, tour, points := sceneFixture(t, n)
		scene, err := diagram.Assemble(cat, tour, points, 1000)
		require.NoError(t, err)
		require.Len(t, scene.Edges, n*(n-1)/2, "n=%d", n)
	}
}

// TestAssemble_EdgesMatchRelation: every edge is a win and every win is
// an edge, index-keyed.
func TestAssemble_EdgesMatchRelation(t *testing.T) {
	cat, tour, points := sceneFixture(t, 7)
	scene, err := diagram.Assemble(cat, tour, points, 1000)
	require.NoError(t, err)

	seen := make(map[diagram.Edge]bool, len(scene.Edges))
	for _, e := range scene.Edges {
		require.True(t, tour.Beats(e.From, e.To), "edge %v is not a win", e)
		require.False(t, seen[e], "edge %v duplicated", e)
		seen[e] = true
	}
}

// TestAssemble_Sizing pins the scalar layout parameters for N=3, S=1000:
// R=500, r=167, text size r/3.
func TestAssemble_Sizing(t *testing.T) {
	cat, tour, points := sceneFixture(t, 3)
	scene, err := diagram.Assemble(cat, tour, points, 1000)
	require.NoError(t, err)

	require.Equal(t, 1000, scene.Size)
	require.Equal(t, 500.0, scene.DiagramRadius)
	require.Equal(t, 167.0, scene.MarkerRadius)
	require.InDelta(t, 167.0/3, scene.TextSize, 1e-9)
	require.Equal(t, points, scene.Points)
}

// TestAssemble_Labels checks anchor downshift and target width scaling,
// including the 12-rune cap for long names.
func TestAssemble_Labels(t *testing.T) {
	cat, err := catalog.New([]catalog.Record{
		{Name: "Scissors"},                 // 8 runes
		{Name: "Rock"},                     // 4 runes
		{Name: "Enormous Move Name Here"},  // > 12 runes, capped
	})
	require.NoError(t, err)
	tour, err := tournament.Build(cat)
	require.NoError(t, err)
	points, err := diagram.Layout(3, 1000)
	require.NoError(t, err)

	scene, err := diagram.Assemble(cat, tour, points, 1000)
	require.NoError(t, err)
	require.Len(t, scene.Labels, 3)

	// r=167, text size 55.666…, downshift 13.916… → rounded anchor.
	require.Equal(t, "Scissors", scene.Labels[0].Text)
	require.Equal(t, diagram.NewPoint(points[0].X, points[0].Y+scene.TextSize/4), scene.Labels[0].Anchor)

	// 8/12 of the padded diameter: round2(1.9·167·8/12).
	require.Equal(t, 211.53, scene.Labels[0].TargetWidth)
	// 4/12: round2(1.9·167·4/12).
	require.Equal(t, 105.77, scene.Labels[1].TargetWidth)
	// Capped at the full padded diameter: round2(1.9·167).
	require.Equal(t, 317.3, scene.Labels[2].TargetWidth)
}

// TestAssemble_PointDeficitFails: a move without a position is a hard error.
func TestAssemble_PointDeficitFails(t *testing.T) {
	cat, tour, points := sceneFixture(t, 5)
	_, err := diagram.Assemble(cat, tour, points[:4], 1000)
	require.ErrorIs(t, err, diagram.ErrPointCountMismatch)
}

// TestAssemble_PointSurplusWarnsAndProceeds: the documented leniency —
// extra points are reported through the diagnostic hook and ignored.
func TestAssemble_PointSurplusWarnsAndProceeds(t *testing.T) {
	cat, tour, _ := sceneFixture(t, 3)
	points, err := diagram.Layout(5, 1000)
	require.NoError(t, err)

	var warnings []string
	scene, err := diagram.Assemble(cat, tour, points, 1000,
		diagram.WithDiagnostic(func(msg string) { warnings = append(warnings, msg) }))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Len(t, scene.Points, 3)
	require.Len(t, scene.Labels, 3)
}

// TestAssemble_BadCanvas: a non-positive canvas is rejected before any work.
func TestAssemble_BadCanvas(t *testing.T) {
	cat, tour, points := sceneFixture(t, 3)
	_, err := diagram.Assemble(cat, tour, points, 0)
	require.ErrorIs(t, err, diagram.ErrBadCanvasSize)
}

// TestWithDiagnostic_NilPanics: option constructors validate eagerly.
func TestWithDiagnostic_NilPanics(t *testing.T) {
	require.Panics(t, func() { diagram.WithDiagnostic(nil) })
}
