// Package tournament derives the balanced beats relation of a zhot game
// from a move catalog's cyclic order.
//
// 🎯 The parity rule
//
// For N moves (N odd, N ≥ 3), move i defeats the move at (i+o) mod N for
// every odd offset o in {1, 3, …, N-2}. Because N is odd, the odd and even
// offsets split the other N-1 moves into two equal halves, so:
//
//   - every move beats exactly (N-1)/2 others,
//   - every move loses to exactly (N-1)/2 others,
//   - no pair of moves ever beats each other (antisymmetry),
//   - no move beats itself (irreflexivity).
//
// This is the direct generalization of Scissors-Paper-Rock (N=3: each move
// beats exactly one other) to any odd move count.
//
// The relation is computed once, as index pairs; the name+verb view used by
// the interactive game is derived from those pairs by catalog lookup. Keeping
// a single derivation removes any chance of the two views drifting apart.
//
// Everything here is pure and deterministic: a Tournament is immutable after
// Build and safe to share across goroutines.
package tournament
