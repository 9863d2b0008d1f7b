// Package diagram lays out a zhot game's moves on a circle and assembles
// the geometric scene a rendering backend needs to draw the rules.
//
// Layout places N markers at equal angular steps of 360°/N around a square
// canvas, clockwise from north. The four cardinal directions are placed by
// exact branches rather than through sin/cos, so markers at the canvas
// edges never drift off-pixel and clip the border. Every coordinate is
// rounded to two decimal places at construction, making the layout
// reproducible bit-for-bit for equal inputs.
//
// Assemble combines the layout with a tournament relation into a Scene:
// points, beats edges, circle sizes, and label sizing. The Scene is plain
// data; drawing it (SVG, terminal, anything else) is a backend concern —
// see the render package for the SVG one.
package diagram
