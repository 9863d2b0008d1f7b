// SPDX-License-Identifier: MIT
// Package: zhot/diagram
//
// errors.go — sentinel errors for layout and scene assembly.
//
// Error policy mirrors the rest of the module: package-level sentinels,
// %w wrapping with call context, errors.Is for branching, no panics.

package diagram

import "errors"

// ErrTooFewPoints indicates a layout request for fewer than MinPoints
// markers. Parity is NOT checked here: layout is pure geometry and an
// even ring is still a valid picture.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("diagram: too few points")

// ErrBadCanvasSize indicates a non-positive canvas size, or one so small
// the marker radius rounds to zero.
// Usage: if errors.Is(err, ErrBadCanvasSize) { /* enlarge the canvas */ }.
var ErrBadCanvasSize = errors.New("diagram: bad canvas size")

// ErrPointCountMismatch indicates Assemble received fewer points than the
// catalog has moves, leaving some move without a position. (The reverse —
// more points than moves — is a documented leniency: a diagnostic is
// emitted and assembly proceeds with the surplus ignored.)
// Usage: if errors.Is(err, ErrPointCountMismatch) { /* re-run Layout */ }.
var ErrPointCountMismatch = errors.New("diagram: point count below move count")
