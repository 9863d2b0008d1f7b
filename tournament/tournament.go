// SPDX-License-Identifier: MIT
// Package: zhot/tournament
//
// tournament.go — Build and the Tournament relation type.
//
// Design contract (strict):
//   • Build is the single entry-point; same catalog ⇒ identical Tournament.
//   • The relation is stored once, index-keyed; Defeats derives names/verbs
//     by lookup. There is no second computation to keep in sync.
//   • No panics at runtime; validation failures return sentinel errors
//     from the catalog package (the catalog owns input-shape semantics).

package tournament

import (
	"fmt"

	"github.com/katalvlaran/zhot/catalog"
)

// DefaultVerb pairs a winner with a defeated move when the winner's
// declared verb list is exhausted (or was never supplied).
const DefaultVerb = "beats"

// Defeat is one name-keyed entry of the beats relation: the defeated
// move's display name and the verb describing the defeat.
type Defeat struct {
	Loser string
	Verb  string
}

// Tournament is the balanced beats relation over a catalog's moves.
// Immutable after Build; safe for concurrent readers.
type Tournament struct {
	cat     *catalog.Catalog
	defeats [][]int // defeats[i] = ordered indices move i beats
}

// Build derives the beats relation for cat.
//
// For each move i the defeated indices are (i+o) mod N for every odd
// o in [1, N), in increasing-offset order. The catalog constructor already
// guarantees N is odd and ≥ 3; Build re-checks the parity invariant so a
// hand-rolled or future catalog path cannot smuggle in an unfair game.
//
// Complexity: O(N²) time and space (the full relation has N(N-1)/2 pairs).
func Build(cat *catalog.Catalog) (*Tournament, error) {
	if cat == nil {
		return nil, fmt.Errorf("tournament.Build: nil catalog: %w", catalog.ErrTooFewMoves)
	}
	n := cat.Len()
	if n < catalog.MinMoves {
		return nil, fmt.Errorf("tournament.Build: %d moves: %w", n, catalog.ErrTooFewMoves)
	}
	if n%2 == 0 {
		return nil, fmt.Errorf("tournament.Build: %d moves: %w", n, catalog.ErrEvenMoveCount)
	}

	defeats := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, 0, (n-1)/2)
		for o := 1; o < n; o += 2 {
			row = append(row, (i+o)%n)
		}
		defeats[i] = row
	}

	return &Tournament{cat: cat, defeats: defeats}, nil
}

// Len returns the move count N. O(1).
func (t *Tournament) Len() int { return len(t.defeats) }

// DefeatsIndex returns the ordered indices defeated by move i.
// The caller must not mutate the returned slice. O(1).
func (t *Tournament) DefeatsIndex(i int) []int { return t.defeats[i] }

// Defeats returns the name-keyed view for move i: each defeated move's
// name paired with the winner's k-th declared verb, falling back to
// DefaultVerb once the verb list runs out. Order matches DefeatsIndex.
// Complexity: O(N).
func (t *Tournament) Defeats(i int) []Defeat {
	verbs := t.cat.Move(i).Verbs
	out := make([]Defeat, len(t.defeats[i]))
	for k, j := range t.defeats[i] {
		verb := DefaultVerb
		if k < len(verbs) {
			verb = verbs[k]
		}
		out[k] = Defeat{Loser: t.cat.Move(j).Name, Verb: verb}
	}
	return out
}

// Beats reports whether move i defeats move j. O((N-1)/2).
func (t *Tournament) Beats(i, j int) bool {
	for _, x := range t.defeats[i] {
		if x == j {
			return true
		}
	}
	return false
}

// Verb returns the phrase for "i defeats j" ("Scissors cuts Paper."),
// or "" when i does not defeat j. Complexity: O(N).
func (t *Tournament) Verb(i, j int) string {
	for k, x := range t.defeats[i] {
		if x != j {
			continue
		}
		verbs := t.cat.Move(i).Verbs
		if k < len(verbs) {
			return verbs[k]
		}
		return DefaultVerb
	}
	return ""
}

// Result formats the outcome sentence for "i defeats j", e.g.
// "Scissors cuts Paper." The pair must be in the relation; a pair outside
// it yields the empty string (callers decide rounds via Beats first).
func (t *Tournament) Result(i, j int) string {
	verb := t.Verb(i, j)
	if verb == "" {
		return ""
	}
	return t.cat.Move(i).Name + " " + verb + " " + t.cat.Move(j).Name + "."
}
