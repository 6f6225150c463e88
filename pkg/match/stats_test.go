package match

import "testing"

func TestComputeStats(t *testing.T) {
	participants := []Participant{
		p("alice"),
		p("bob", "alice", "carol"),
		p("carol", "alice"),
		p("dave"),
	}

	stats := ComputeStats(participants)

	if stats.TotalParticipants != 4 {
		t.Fatalf("TotalParticipants = %d, want 4", stats.TotalParticipants)
	}
	if len(stats.Participants) != 4 {
		t.Fatalf("len(Participants) = %d, want 4", len(stats.Participants))
	}

	// Sorted descending by constraint level; equal levels keep input order.
	wantOrder := []string{"bob", "carol", "alice", "dave"}
	for i, want := range wantOrder {
		if got := stats.Participants[i].Name; got != want {
			t.Errorf("Participants[%d] = %s, want %s", i, got, want)
		}
	}

	for _, ps := range stats.Participants {
		if got, want := ps.AvailableReceivers, (4-1)-ps.Exclusions; got != want {
			t.Errorf("%s: AvailableReceivers = %d, want %d", ps.Name, got, want)
		}
		if ps.ConstraintLevel < 0 || ps.ConstraintLevel > 1 {
			t.Errorf("%s: ConstraintLevel = %f, want within [0, 1]", ps.Name, ps.ConstraintLevel)
		}
	}

	if got := stats.Participants[0]; got.Exclusions != 2 || got.ConstraintLevel != 2.0/3.0 {
		t.Errorf("bob: Exclusions = %d, ConstraintLevel = %f", got.Exclusions, got.ConstraintLevel)
	}
}

func TestComputeStatsSmallGroups(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		stats := ComputeStats(nil)
		if stats.TotalParticipants != 0 || len(stats.Participants) != 0 {
			t.Errorf("stats = %+v, want empty", stats)
		}
	})

	t.Run("SingleGuardsDivideByZero", func(t *testing.T) {
		stats := ComputeStats([]Participant{p("alice", "ghost")})
		if got := stats.Participants[0].ConstraintLevel; got != 0 {
			t.Errorf("ConstraintLevel = %f, want 0 for a group of one", got)
		}
	})
}

func TestComputeStatsIsReadOnly(t *testing.T) {
	participants := []Participant{p("alice", "bob"), p("bob")}
	before := len(participants[0].Exclusions)

	_ = ComputeStats(participants)
	_ = ComputeStats(participants)

	if len(participants[0].Exclusions) != before {
		t.Error("ComputeStats mutated its input")
	}
}
