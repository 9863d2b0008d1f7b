package catalog_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/stretchr/testify/require"
)

func recs(names ...string) []catalog.Record {
	out := make([]catalog.Record, len(names))
	for i, n := range names {
		out[i] = catalog.Record{Name: n}
	}
	return out
}

// TestNew_ShapeErrors verifies fail-fast validation: no partial catalog
// is ever produced for an invalid move list.
func TestNew_ShapeErrors(t *testing.T) {
	cases := []struct {
		name    string
		records []catalog.Record
		err     error
	}{
		{"Empty", nil, catalog.ErrTooFewMoves},
		{"One", recs("Rock"), catalog.ErrTooFewMoves},
		{"Two", recs("Rock", "Paper"), catalog.ErrTooFewMoves},
		{"Four", recs("a", "b", "c", "d"), catalog.ErrEvenMoveCount},
		{"Blank", recs("Rock", "  ", "Paper"), catalog.ErrBlankMoveName},
		{"Duplicate", recs("Rock", "Paper", "Rock"), catalog.ErrDuplicateMoveName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := catalog.New(tc.records)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.records, err, tc.err)
			}
			if c != nil {
				t.Errorf("New(%v) returned a partial catalog alongside an error", tc.records)
			}
		})
	}
}

// TestNew_CaseSensitiveNames: "Rock" and "rock" are distinct moves.
func TestNew_CaseSensitiveNames(t *testing.T) {
	c, err := catalog.New(recs("Rock", "rock", "Paper"))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
}

// TestNew_OrderAndIndices pins declared order as catalog order.
func TestNew_OrderAndIndices(t *testing.T) {
	c, err := catalog.New([]catalog.Record{
		{Name: "Scissors", Verbs: []string{"cuts"}},
		{Name: "Paper", Verbs: []string{"wraps"}},
		{Name: "Rock", Verbs: []string{"blunts"}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Scissors", "Paper", "Rock"}, c.Names())
	for i := 0; i < c.Len(); i++ {
		require.Equal(t, i, c.Move(i).Index)
	}
	require.Equal(t, []string{"wraps"}, c.Move(1).Verbs)
	require.Equal(t, "Scissors, Paper, Rock", c.String())
}

// TestNew_TrimsNamesAndVerbs: surrounding whitespace never reaches the game.
func TestNew_TrimsNamesAndVerbs(t *testing.T) {
	c, err := catalog.New([]catalog.Record{
		{Name: " Rock ", Verbs: []string{" blunts ", ""}},
		{Name: "Paper"},
		{Name: "Scissors"},
	})
	require.NoError(t, err)
	require.Equal(t, "Rock", c.Move(0).Name)
	require.Equal(t, []string{"blunts"}, c.Move(0).Verbs)
}

func TestDefault(t *testing.T) {
	c := catalog.Default()
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"Scissors", "Paper", "Rock"}, c.Names())
}
