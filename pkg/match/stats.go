package match

import "slices"

// ParticipantStats reports constraint pressure for one participant.
type ParticipantStats struct {
	Name               string
	Exclusions         int     // size of the participant's exclusion list
	AvailableReceivers int     // (n-1) - Exclusions
	ConstraintLevel    float64 // Exclusions / (n-1), in [0, 1] for well-formed groups
}

// Stats is the diagnostics report of [ComputeStats].
type Stats struct {
	TotalParticipants int
	Participants      []ParticipantStats // sorted descending by ConstraintLevel
}

// ComputeStats derives per-participant constraint-pressure statistics for
// display and debugging. It is pure and runs no search; the numbers feed
// prioritization and reporting only, never correctness decisions.
//
// ConstraintLevel is 0 for groups of one, where "share of others
// excluded" has no denominator.
func ComputeStats(participants []Participant) Stats {
	n := len(participants)
	stats := Stats{
		TotalParticipants: n,
		Participants:      make([]ParticipantStats, n),
	}

	for i, p := range participants {
		excluded := len(p.Exclusions)
		level := 0.0
		if n > 1 {
			level = float64(excluded) / float64(n-1)
		}
		stats.Participants[i] = ParticipantStats{
			Name:               p.Name,
			Exclusions:         excluded,
			AvailableReceivers: (n - 1) - excluded,
			ConstraintLevel:    level,
		}
	}

	slices.SortStableFunc(stats.Participants, func(a, b ParticipantStats) int {
		switch {
		case a.ConstraintLevel > b.ConstraintLevel:
			return -1
		case a.ConstraintLevel < b.ConstraintLevel:
			return 1
		default:
			return 0
		}
	})

	return stats
}
