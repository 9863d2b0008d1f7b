// Package zhot generalizes Scissors-Paper-Rock to any odd number of named
// moves, with a guaranteed-fair beats relation and a circular rules diagram.
//
// 🚀 What is zhot?
//
//	A small, deterministic library plus two commands:
//		• catalog/    — the validated, ordered move list (CSV loader, defaults)
//		• tournament/ — the balanced beats relation from the cyclic parity rule
//		• diagram/    — circular layout with exact cardinal anchors + the scene
//		• render/     — the SVG backend drawing the scene
//		• game/       — the interactive round engine (parse, resolve, score)
//		• config/     — optional zhot.toml settings
//		• cmd/zhot        — play in the terminal, save the diagram as SVG
//		• cmd/zhot-view   — view the rules diagram inside the terminal
//
// ✨ Why the odd move count?
//
// With N moves (N odd), stepping an odd distance around the declared order
// always wins and an even distance always loses, so every move beats exactly
// (N-1)/2 others and loses to the other (N-1)/2 — a perfectly fair
// round-robin for ANY odd N, from the classic 3 up.
//
// Quick start:
//
//	cat     := catalog.Default()            // Scissors, Paper, Rock
//	tour, _ := tournament.Build(cat)
//	tour.Result(2, 0)                       // "Rock blunts Scissors."
//
// Everything in the core is pure and single-threaded; a built catalog,
// relation or scene is immutable and safe to share between goroutines.
package zhot
