// Package render draws a diagram.Scene as an SVG vector image: a bordered
// square canvas, the backdrop circle, one line per beats pair, one marker
// circle per move, and each move's name fitted into its marker.
//
// The package consumes the scene as plain data and owns nothing but
// presentation: colors, stroke widths and the CSS font rule. Geometry and
// the edge set come ready-made from the diagram package.
package render
