// Package catalog defines the ordered move list that drives a zhot game:
// the Move and Catalog types, fail-fast shape validation, the CSV loader,
// and the classic Scissors/Paper/Rock default.
//
// A Catalog is immutable once constructed and safe for any number of
// concurrent readers. Construction is the only place shape errors can
// surface:
//
//	ErrEvenMoveCount     - the move count is even (the game would be unfair).
//	ErrTooFewMoves       - fewer than MinMoves moves were supplied.
//	ErrBlankMoveName     - a move name is empty or whitespace-only.
//	ErrDuplicateMoveName - two moves share the same (case-sensitive) name.
//
// No partial catalog is ever produced: every constructor returns either a
// fully valid Catalog or a sentinel error to branch on with errors.Is.
package catalog
