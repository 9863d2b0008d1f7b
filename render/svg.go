// SPDX-License-Identifier: MIT
// Package: zhot/render
//
// svg.go — the SVG drawing backend for diagram scenes.

package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"

	"github.com/katalvlaran/zhot/diagram"
)

// ErrNilScene indicates SVG was handed no scene to draw.
// Usage: if errors.Is(err, ErrNilScene) { /* assemble a scene first */ }.
var ErrNilScene = errors.New("render: nil scene")

// Presentation constants. Values follow the reference picture: a grey
// frame, a darkgrey backdrop, black relation lines, white move markers.
const (
	borderStroke = `stroke="grey" stroke-width="10" fill="darkgrey"`
	circleStroke = `stroke="grey" stroke-width="1px" fill="darkgrey"`
	lineStroke   = `stroke="black"`
	markerStroke = `stroke="grey" stroke-width="2px" fill="white"`
)

// SVG writes scene to w as a complete SVG document.
//
// Draw order matters and is fixed: border, backdrop circle, relation
// lines, move markers, labels — so markers cover line endpoints and
// labels sit on top of their markers.
//
// Complexity: O(N²) output size (one line element per beats pair).
func SVG(w io.Writer, scene *diagram.Scene) error {
	if scene == nil {
		return fmt.Errorf("render.SVG: %w", ErrNilScene)
	}

	size := float64(scene.Size)
	canvas := svg.New(w)
	canvas.Start(size, size)

	// Shared font size for every label, as a stylesheet rule.
	canvas.Def()
	canvas.Style("text/css", fmt.Sprintf("text { font-size: %gpx; }", scene.TextSize))
	canvas.DefEnd()

	canvas.Rect(0, 0, size, size, borderStroke)
	canvas.Circle(scene.DiagramRadius, scene.DiagramRadius, scene.DiagramRadius, circleStroke)

	for _, e := range scene.Edges {
		from, to := scene.Points[e.From], scene.Points[e.To]
		canvas.Line(from.X, from.Y, to.X, to.Y, lineStroke)
	}

	for i, p := range scene.Points {
		canvas.Circle(p.X, p.Y, scene.MarkerRadius, markerStroke)

		label := scene.Labels[i]
		canvas.Text(label.Anchor.X, label.Anchor.Y, label.Text,
			fmt.Sprintf(`text-anchor="middle" textLength="%gpx" lengthAdjust="spacingAndGlyphs"`,
				label.TargetWidth))
	}

	canvas.End()
	return nil
}

// SVGFile renders scene into the file at path, creating or truncating it.
func SVGFile(path string, scene *diagram.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render.SVGFile: %w", err)
	}
	if err := SVG(f, scene); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render.SVGFile: %w", err)
	}
	return nil
}
