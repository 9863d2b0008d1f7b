// SPDX-License-Identifier: MIT
// Package: zhot/catalog
//
// csv.go — the CSV loader and the default three-move game.
//
// Input format: one move per row, first field the name, remaining fields
// the ordered verb list. Blank rows are skipped. Shape validation happens
// in New, so a malformed file surfaces the same sentinels as any other
// construction path.

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// FromReader parses CSV rows from r and builds a Catalog.
// Rows may have ragged field counts (verbs are optional per move).
// Complexity: O(file size).
func FromReader(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // verb lists vary in length
	reader.TrimLeadingSpace = true

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog.FromReader: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		records = append(records, Record{Name: row[0], Verbs: row[1:]})
	}

	return New(records)
}

// FromCSVFile opens path and delegates to FromReader.
func FromCSVFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.FromCSVFile: %w", err)
	}
	defer f.Close()

	c, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("catalog.FromCSVFile %q: %w", path, err)
	}
	return c, nil
}

// Default returns the classic three-move game. It cannot fail: the record
// list is a compile-time constant shape that New always accepts.
func Default() *Catalog {
	c, err := New([]Record{
		{Name: "Scissors", Verbs: []string{"cuts"}},
		{Name: "Paper", Verbs: []string{"wraps"}},
		{Name: "Rock", Verbs: []string{"blunts"}},
	})
	if err != nil {
		// Unreachable for the fixed list above.
		panic(fmt.Sprintf("catalog.Default: %v", err))
	}
	return c
}
