// Package game is the interactive round engine: it parses player input
// into tagged actions, resolves rounds through the tournament relation,
// formats the outcome phrases, and keeps score.
//
// The engine is deliberately I/O-free: it consumes strings and returns
// strings, leaving prompting and printing to the process (see cmd/zhot).
// Randomness (the opponent's move, the flavor remark) flows through a
// seedable RNG supplied via functional options, so whole sessions replay
// deterministically under a fixed seed.
package game
