package network_test

import (
	"fmt"

	"github.com/katalvlaran/crntk/network"
)

// ExampleParseString parses Michaelis–Menten kinetics and prints the
// stoichiometry rows, one per reaction.
func ExampleParseString() {
	n, err := network.ParseString("E + S <-> ES -> E + P")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rows, species := n.Stoichiometry()
	fmt.Println(species)
	for i, row := range rows {
		fmt.Printf("%-12s %v\n", n.ReactionString(i), row.Dense(len(species)))
	}

	// Output:
	// [E ES P S]
	// E + S -> ES  [-1 1 0 -1]
	// ES -> E + S  [1 -1 0 1]
	// ES -> E + P  [1 -1 1 0]
}
