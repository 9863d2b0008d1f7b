// SPDX-License-Identifier: MIT
// Package: zhot/diagram
//
// scene.go — DiagramScene assembly: points + relation edges + sizing.
//
// Design contract (strict):
//   • Assemble reads the catalog, the tournament relation and a point set;
//     it mutates none of them and returns plain data.
//   • Edges reuse the relation's index-keyed view: geometry needs positions,
//     not names or verbs.
//   • A surplus of points over moves is a non-fatal inconsistency: the
//     diagnostic hook fires and assembly proceeds (documented leniency).
//     A deficit is a hard error — a move without a position cannot be drawn.

package diagram

import (
	"fmt"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/katalvlaran/zhot/tournament"
)

// Label sizing constants, kept in one place so backends and tests agree.
const (
	// MaxLabelRunes caps how many runes participate in width scaling;
	// longer names are squeezed into the same target width.
	MaxLabelRunes = 12

	// labelWidthFactor scales the marker diameter down a little so label
	// text keeps padding inside its marker circle.
	labelWidthFactor = 1.9

	// textSizeDivisor derives the font size from the marker radius.
	textSizeDivisor = 3

	// baselineDivisor derives the downward baseline shift from the font
	// size, vertically centering text in its marker.
	baselineDivisor = 4
)

// Edge is one beats pair by move index: From defeats To.
type Edge struct {
	From, To int
}

// Label is the sizing data for one move's name at its marker.
type Label struct {
	// Text is the move's display name, unabridged.
	Text string
	// Anchor is the middle-anchored text position: the marker center
	// shifted down by TextSize/4 so the glyphs sit on the visual center.
	Anchor Point
	// TargetWidth is the width (px) the renderer must fit the text into:
	// round2(1.9 · r · min(runes, MaxLabelRunes)/MaxLabelRunes).
	TargetWidth float64
}

// Scene is the renderable description of a game diagram: everything a
// drawing backend needs and nothing it does not. Constructed on demand,
// never persisted.
type Scene struct {
	// Size is the square canvas side in px.
	Size int
	// DiagramRadius is the backdrop circle radius, round(Size/2).
	DiagramRadius float64
	// MarkerRadius is each move's circle radius, round(DiagramRadius/N).
	MarkerRadius float64
	// TextSize is the label font size, MarkerRadius/3.
	TextSize float64
	// Points are the marker centers, index-aligned with the catalog.
	Points []Point
	// Edges hold one entry per win: (From, To) means From beats To.
	// len(Edges) == N(N-1)/2 for a valid relation.
	Edges []Edge
	// Labels are index-aligned with Points.
	Labels []Label
}

// Assemble composes a catalog, its beats relation and a point layout into
// a Scene for a canvas of size px. The points must be index-aligned with
// the catalog (as produced by Layout(cat.Len(), size)).
//
// Errors: ErrPointCountMismatch when len(points) < cat.Len(),
// ErrBadCanvasSize for a non-positive size. More points than moves emits
// a diagnostic through WithDiagnostic and continues.
//
// Complexity: O(N²) time (the edge set), O(N²) space.
func Assemble(cat *catalog.Catalog, tour *tournament.Tournament, points []Point, size int, opts ...Option) (*Scene, error) {
	if size <= 0 {
		return nil, fmt.Errorf("diagram.Assemble: size=%d: %w", size, ErrBadCanvasSize)
	}
	cfg := newConfig(opts...)

	n := cat.Len()
	if len(points) < n {
		return nil, fmt.Errorf("diagram.Assemble: %d points for %d moves: %w",
			len(points), n, ErrPointCountMismatch)
	}
	if len(points) > n {
		// Legacy leniency: report, then draw the n points that have moves.
		cfg.diagnostic(fmt.Sprintf("diagram: %d points for %d moves; ignoring the surplus", len(points), n))
		points = points[:n]
	}

	diagramRadius := roundHalf(size)
	markerRadius := roundNth(diagramRadius, n)
	textSize := markerRadius / textSizeDivisor

	edges := make([]Edge, 0, n*(n-1)/2)
	labels := make([]Label, n)
	for i := 0; i < n; i++ {
		for _, j := range tour.DefeatsIndex(i) {
			edges = append(edges, Edge{From: i, To: j})
		}
		labels[i] = newLabel(cat.Move(i).Name, points[i], markerRadius, textSize)
	}

	return &Scene{
		Size:          size,
		DiagramRadius: diagramRadius,
		MarkerRadius:  markerRadius,
		TextSize:      textSize,
		Points:        points,
		Edges:         edges,
		Labels:        labels,
	}, nil
}

// newLabel computes one label's anchor and target width from the marker
// geometry. Width scales linearly with the rune count up to MaxLabelRunes
// and is capped there, so long names shrink instead of overflowing.
func newLabel(text string, center Point, markerRadius, textSize float64) Label {
	runes := len([]rune(text))
	if runes > MaxLabelRunes {
		runes = MaxLabelRunes
	}
	coeff := float64(runes) / MaxLabelRunes
	return Label{
		Text:        text,
		Anchor:      NewPoint(center.X, center.Y+textSize/baselineDivisor),
		TargetWidth: Round2(labelWidthFactor * markerRadius * coeff),
	}
}
