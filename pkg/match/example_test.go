package match_test

import (
	"fmt"

	"github.com/matzehuels/giftmatch/pkg/match"
)

func ExampleCheckSolvable() {
	participants := []match.Participant{
		{Name: "alice", Exclusions: []string{"bob"}},
		{Name: "bob"},
		{Name: "carol"},
	}

	result := match.CheckSolvable(participants)
	fmt.Println("possible:", result.Possible)
	fmt.Println("reason:", result.Reason)
	// Output:
	// possible: true
	// reason: valid assignment exists
}

func ExampleGenerate() {
	// With two participants the only valid assignment is the swap.
	participants := []match.Participant{
		{Name: "alice"},
		{Name: "bob"},
	}

	assignments, err := match.Generate(participants, &match.Options{Seed: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range assignments {
		fmt.Printf("%s gives to %s\n", a.Giver, a.Receiver)
	}
	// Output:
	// alice gives to bob
	// bob gives to alice
}

func ExampleComputeStats() {
	participants := []match.Participant{
		{Name: "alice"},
		{Name: "bob", Exclusions: []string{"alice", "carol"}},
		{Name: "carol"},
	}

	stats := match.ComputeStats(participants)
	for _, ps := range stats.Participants {
		fmt.Printf("%s: %d of %d receivers available\n",
			ps.Name, ps.AvailableReceivers, stats.TotalParticipants-1)
	}
	// Output:
	// bob: 0 of 2 receivers available
	// alice: 2 of 2 receivers available
	// carol: 2 of 2 receivers available
}
