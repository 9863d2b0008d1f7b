// SPDX-License-Identifier: MIT
// Package: zhot/catalog
//
// types.go — Move, Record and Catalog types plus the validating constructor.
//
// Design contract (strict):
//   • New is the single construction path; every Catalog in the program is valid.
//   • A Catalog is immutable after New returns; accessors copy nothing mutable.
//   • Determinism: the declared record order IS the catalog order; Move.Index
//     is the position in that order and is stable for the catalog's lifetime.

package catalog

import (
	"fmt"
	"strings"
)

// MinMoves is the smallest meaningful move count. With fewer than three
// moves the beats relation degenerates (no move can both win and lose).
const MinMoves = 3

// Record is one declared move before validation: the display name and an
// optional ordered verb list ("cuts", "wraps", ...) paired later with the
// moves it defeats. A short or empty verb list is valid; missing verbs
// fall back to a default at relation-build time.
type Record struct {
	Name  string
	Verbs []string
}

// Move is one validated entry of a Catalog.
//
// Name is unique within the catalog (case-sensitive). Index is the 0-based
// position in declared order. Verbs is the declared verb list, possibly
// shorter than the number of moves this one defeats.
type Move struct {
	Name  string
	Index int
	Verbs []string
}

// Catalog is an ordered, immutable sequence of validated moves.
// The zero value is not usable; construct with New, FromCSVFile or Default.
type Catalog struct {
	moves []Move
}

// New validates the records and builds a Catalog.
//
// Validation order (first failure wins):
//  1. len(records) ≥ MinMoves        → ErrTooFewMoves
//  2. len(records) odd               → ErrEvenMoveCount
//  3. every name non-blank           → ErrBlankMoveName
//  4. every name unique              → ErrDuplicateMoveName
//
// Complexity: O(N) time, O(N) space. Never returns a partial catalog.
func New(records []Record) (*Catalog, error) {
	if len(records) < MinMoves {
		return nil, fmt.Errorf("catalog.New: got %d moves, need at least %d: %w",
			len(records), MinMoves, ErrTooFewMoves)
	}
	if len(records)%2 == 0 {
		return nil, fmt.Errorf("catalog.New: got %d moves: %w", len(records), ErrEvenMoveCount)
	}

	moves := make([]Move, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog.New: record %d: %w", i, ErrBlankMoveName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("catalog.New: record %d (%q): %w", i, name, ErrDuplicateMoveName)
		}
		seen[name] = struct{}{}

		// Verbs are copied so later mutation of the input cannot leak in.
		verbs := make([]string, 0, len(rec.Verbs))
		for _, v := range rec.Verbs {
			if v = strings.TrimSpace(v); v != "" {
				verbs = append(verbs, v)
			}
		}
		moves[i] = Move{Name: name, Index: i, Verbs: verbs}
	}

	return &Catalog{moves: moves}, nil
}

// Len returns the move count N. O(1).
func (c *Catalog) Len() int { return len(c.moves) }

// Move returns the move at index i in declared order.
// The index must be in [0, Len()); out-of-range access is a programmer
// error and panics like any slice access.
func (c *Catalog) Move(i int) Move { return c.moves[i] }

// Names returns the move names in declared order as a fresh slice.
// Complexity: O(N).
func (c *Catalog) Names() []string {
	names := make([]string, len(c.moves))
	for i, m := range c.moves {
		names[i] = m.Name
	}
	return names
}

// String joins the move names with commas, matching the option prompt of
// the interactive game ("Scissors, Paper, Rock").
func (c *Catalog) String() string {
	return strings.Join(c.Names(), ", ")
}
