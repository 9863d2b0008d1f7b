package tournament_test

import (
	"fmt"

	"github.com/katalvlaran/zhot/catalog"
	"github.com/katalvlaran/zhot/tournament"
)

// ExampleBuild shows the classic three-move game: each move beats exactly
// one other, and the relation closes into a cycle.
func ExampleBuild() {
	cat := catalog.Default()
	tour, _ := tournament.Build(cat)

	for i := 0; i < cat.Len(); i++ {
		for _, d := range tour.Defeats(i) {
			fmt.Printf("%s %s %s.\n", cat.Move(i).Name, d.Verb, d.Loser)
		}
	}
	// Output:
	// Scissors cuts Paper.
	// Paper wraps Rock.
	// Rock blunts Scissors.
}

// ExampleTournament_Dominance prints the adjacency view of a five-move game.
func ExampleTournament_Dominance() {
	cat, _ := catalog.New([]catalog.Record{
		{Name: "Scissors"}, {Name: "Paper"}, {Name: "Rock"},
		{Name: "Lizard"}, {Name: "Spock"},
	})
	tour, _ := tournament.Build(cat)

	for _, row := range tour.Dominance() {
		fmt.Println(row)
	}
	// Output:
	// [0 1 0 1 0]
	// [0 0 1 0 1]
	// [1 0 0 1 0]
	// [0 1 0 0 1]
	// [1 0 1 0 0]
}
