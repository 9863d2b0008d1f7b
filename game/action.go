// SPDX-License-Identifier: MIT
// Package: zhot/game
//
// action.go — player input parsed into an explicit tagged variant.
//
// A played move and an admin request (quit, score, rules, ...) are
// different kinds, not different shapes of one "move" type; dispatch is
// an explicit switch on Action.Kind, never attribute probing.

package game

import (
	"strings"

	"github.com/katalvlaran/zhot/catalog"
)

// ActionKind discriminates what the player asked for.
type ActionKind int

const (
	// ActionUnknown is unparseable input; the caller re-prompts.
	ActionUnknown ActionKind = iota
	// ActionPlay plays the move held in Action.Move.
	ActionPlay
	// ActionQuit ends the session (empty input, "exit", "quit").
	ActionQuit
	// ActionScore reports the tally ("score", "points").
	ActionScore
	// ActionRounds reports the round count ("rounds", "length").
	ActionRounds
	// ActionRules prints the rules ("help", "moves", "rules", "?").
	ActionRules
	// ActionDiagram renders the rules diagram ("dia", "diagram").
	ActionDiagram
)

// Action is one parsed player input. Move is a catalog index, meaningful
// only when Kind == ActionPlay.
type Action struct {
	Kind ActionKind
	Move int
}

// adminWords maps each admin keyword to its action kind.
var adminWords = map[string]ActionKind{
	"exit": ActionQuit, "quit": ActionQuit,
	"score": ActionScore, "points": ActionScore,
	"rounds": ActionRounds, "length": ActionRounds,
	"help": ActionRules, "moves": ActionRules, "rules": ActionRules, "?": ActionRules,
	"dia": ActionDiagram, "diagram": ActionDiagram,
}

// Parse maps raw player input to an Action. Admin keywords win first;
// otherwise the input matches a move when it is a case-insensitive
// substring of the move's name ("sci" → "Scissors"), first declared match
// wins. Empty input quits, anything else is ActionUnknown.
//
// Complexity: O(N · len(input)).
func Parse(input string, cat *catalog.Catalog) Action {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Action{Kind: ActionQuit}
	}
	if kind, ok := adminWords[strings.ToLower(trimmed)]; ok {
		return Action{Kind: kind}
	}

	folded := strings.ToLower(trimmed)
	for i := 0; i < cat.Len(); i++ {
		if strings.Contains(strings.ToLower(cat.Move(i).Name), folded) {
			return Action{Kind: ActionPlay, Move: i}
		}
	}
	return Action{Kind: ActionUnknown}
}
