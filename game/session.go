// SPDX-License-Identifier: MIT
// Package: zhot/game
//
// session.go — the round engine and its seedable configuration.
//
// Determinism policy: the AI’s move and the
// flavor remark are the only stochastic choices; both draw from the
// session RNG, so WithSeed replays a whole session move-for-move.

package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/katalvlaran/zhot/tournament"
)

// Flavor remarks appended to round outcomes, from the AI's voice.
var (
	victoriousRemarks = []string{"Heheh.", "The round is mine!", "I win.", "You loser."}
	concedingRemarks  = []string{"OK.", "Drat!", "You’ve won that one.", "Dammit.", "Argh!"}
)

// Option customizes a Session before play begins.
type Option func(*Session)

// WithSeed locks the session RNG to a deterministic stream.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil to surface programmer
// error early; prefer WithSeed for reproducible sessions.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("game: WithRand(nil)")
	}
	return func(s *Session) { s.rng = r }
}

// Session holds a running game: the catalog, its relation, the tally and
// the RNG. Not safe for concurrent use; one session belongs to one player.
type Session struct {
	cat    *catalog.Catalog
	tour   *tournament.Tournament
	score  Score
	rounds int
	rng    *rand.Rand
}

// NewSession builds a session over cat. The relation is derived here, so
// an invalid catalog path surfaces before the first prompt.
func NewSession(cat *catalog.Catalog, opts ...Option) (*Session, error) {
	tour, err := tournament.Build(cat)
	if err != nil {
		return nil, fmt.Errorf("game.NewSession: %w", err)
	}
	s := &Session{cat: cat, tour: tour}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s, nil
}

// Catalog returns the session's move catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Tournament returns the session's beats relation.
func (s *Session) Tournament() *tournament.Tournament { return s.tour }

// Score returns the current tally.
func (s *Session) Score() Score { return s.score }

// Rounds returns how many rounds have been resolved.
func (s *Session) Rounds() int { return s.rounds }

// Outcome is one resolved round, ready for printing.
type Outcome struct {
	// Moves narrates what was played ("You play X and I play Y. ").
	Moves string
	// Result is the verdict sentence plus a flavor remark, or
	// "Stalemate." on a tie.
	Result string
	// HumanPoint/AIPoint carry the round's scoring (at most one is true).
	HumanPoint bool
	AIPoint    bool
}

// PlayRound resolves the human's move (a catalog index) against a random
// AI move, updates the tally and the round count, and returns the
// narration. The index must come from Parse; out-of-range input is a
// programmer error and panics like any slice access.
func (s *Session) PlayRound(human int) Outcome {
	return s.Resolve(human, s.rng.Intn(s.cat.Len()))
}

// Resolve is the deterministic core of PlayRound: it rules on a fixed
// human/AI move pair. Only the flavor remark still draws from the RNG.
func (s *Session) Resolve(human, ai int) Outcome {
	out := Outcome{
		Moves: fmt.Sprintf("You play %s and I play %s. ", s.cat.Move(human).Name, s.cat.Move(ai).Name),
	}
	switch {
	case human == ai:
		out.Result = "Stalemate."
	case s.tour.Beats(ai, human):
		out.Result = s.tour.Result(ai, human) + " " + s.pick(victoriousRemarks)
		out.AIPoint = true
		s.score.AI++
	default:
		// The relation is total over distinct pairs: not beaten ⇒ beats.
		out.Result = s.tour.Result(human, ai) + " " + s.pick(concedingRemarks)
		out.HumanPoint = true
		s.score.Human++
	}
	s.rounds++
	return out
}

// pick draws one remark from list via the session RNG.
func (s *Session) pick(list []string) string {
	return list[s.rng.Intn(len(list))]
}

// Rules renders the full rule sheet: every "X verb Y." line in catalog
// order, plus the admin-word hint.
func (s *Session) Rules() string {
	var b strings.Builder
	b.WriteString("\nRules of the game:\n")
	for i := 0; i < s.cat.Len(); i++ {
		for _, d := range s.tour.Defeats(i) {
			fmt.Fprintf(&b, "%s %s %s.\n", s.cat.Move(i).Name, d.Verb, d.Loser)
		}
	}
	b.WriteString("\nMake one of these moves, or use ‘score’, ‘rounds’, ‘help’ or ‘exit’.")
	return b.String()
}
