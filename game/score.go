// SPDX-License-Identifier: MIT
// Package: zhot/game
//
// score.go — the running human-vs-AI tally.

package game

import "fmt"

// Score is the running tally of a session. The zero value is a fresh game.
type Score struct {
	Human int
	AI    int
}

// Upshot summarizes who is ahead, from the AI's voice.
func (s Score) Upshot() string {
	switch {
	case s.AI > s.Human:
		return "I win."
	case s.Human > s.AI:
		return "You win."
	default:
		return "We have tied."
	}
}

// String reports the tally, from the AI's voice.
func (s Score) String() string {
	return fmt.Sprintf("You have scored %d and I have scored %d.", s.Human, s.AI)
}
