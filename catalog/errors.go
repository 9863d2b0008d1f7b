// SPDX-License-Identifier: MIT
// Package: zhot/catalog
//
// errors.go — sentinel errors for catalog construction.
//
// Error policy (strict):
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Sentinels carry no parameters; constructors attach context via %w.
//   • Catalog construction never panics and never returns a partial result.

package catalog

import "errors"

// ErrEvenMoveCount indicates an even number of moves was supplied.
// Fairness requires an odd count: only then can the remaining N-1 moves
// split into equal "defeats" and "defeated-by" halves for every move.
// Usage: if errors.Is(err, ErrEvenMoveCount) { /* ask for one more move */ }.
var ErrEvenMoveCount = errors.New("catalog: move count must be odd")

// ErrTooFewMoves indicates fewer than MinMoves moves were supplied.
// A one- or two-move game has no meaningful beats relation.
// Usage: if errors.Is(err, ErrTooFewMoves) { /* report invalid size */ }.
var ErrTooFewMoves = errors.New("catalog: too few moves")

// ErrBlankMoveName indicates a move name that is empty after trimming.
// Usage: if errors.Is(err, ErrBlankMoveName) { /* fix the input row */ }.
var ErrBlankMoveName = errors.New("catalog: blank move name")

// ErrDuplicateMoveName indicates two moves share the same name.
// Names are compared case-sensitively; "Rock" and "rock" may coexist.
// Usage: if errors.Is(err, ErrDuplicateMoveName) { /* dedupe the list */ }.
var ErrDuplicateMoveName = errors.New("catalog: duplicate move name")
