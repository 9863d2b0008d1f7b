// SPDX-License-Identifier: MIT
// Package: zhot/tournament
//
// matrix.go — dense matrix view of the beats relation.
//
// The dominance matrix is the adjacency matrix of the tournament digraph:
// a compact, order-stable view used by balance checks and diagnostics.

package tournament

// Dominance returns the N×N adjacency matrix of the relation:
// cell [i][j] is 1 when move i defeats move j, else 0. The diagonal is
// always 0 (irreflexivity) and m[i][j]+m[j][i] == 1 for every i ≠ j
// (antisymmetry over a complete pairing).
//
// Complexity: O(N²) time and space.
func (t *Tournament) Dominance() [][]int {
	n := len(t.defeats)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for _, j := range t.defeats[i] {
			m[i][j] = 1
		}
	}
	return m
}

// WinCounts returns the per-move row sums of the dominance matrix.
// For a valid tournament every entry equals (N-1)/2.
// Complexity: O(N²).
func (t *Tournament) WinCounts() []int {
	counts := make([]int, len(t.defeats))
	for i, row := range t.defeats {
		counts[i] = len(row)
	}
	return counts
}

// LossCounts returns the per-move column sums of the dominance matrix.
// For a valid tournament every entry equals (N-1)/2.
// Complexity: O(N²).
func (t *Tournament) LossCounts() []int {
	counts := make([]int, len(t.defeats))
	for _, row := range t.defeats {
		for _, j := range row {
			counts[j]++
		}
	}
	return counts
}
