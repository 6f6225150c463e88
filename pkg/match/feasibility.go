package match

import "fmt"

// Reason strings returned by [CheckSolvable] for outcomes that do not
// reference a particular participant.
const (
	// ReasonTooFew is returned for groups with fewer than two members.
	ReasonTooFew = "need at least 2 participants"

	// ReasonSolvable is returned when a complete valid assignment exists.
	ReasonSolvable = "valid assignment exists"

	// ReasonUnsatisfiable is returned when every participant has options
	// individually but no complete assignment exists.
	ReasonUnsatisfiable = "the combination of exclusions makes an assignment impossible; participants need to remove some exclusions"
)

// Feasibility is the verdict of [CheckSolvable]. Reason is always set and
// is meant for display to the group, not for programmatic dispatch.
type Feasibility struct {
	Possible bool
	Reason   string
}

// CheckSolvable decides whether a complete valid assignment exists for
// the group. It never fails: malformed-but-reachable inputs (empty list,
// single participant) come back as an infeasible verdict with a reason
// rather than an error.
//
// Cheap necessary conditions are checked first, in order:
//
//  1. fewer than two participants
//  2. a giver whose exclusions rule out every receiver, named in Reason
//  3. a receiver excluded by every giver, named in Reason
//
// Only when all of them pass does the exhaustive backtracking search run.
// The search is deterministic and uncapped, so a negative answer is a
// proof: no assignment exists, not "none was found in time".
func CheckSolvable(participants []Participant) Feasibility {
	if len(participants) < 2 {
		return Feasibility{Possible: false, Reason: ReasonTooFew}
	}

	c, err := NewCompatibility(participants)
	if err != nil {
		return Feasibility{Possible: false, Reason: ReasonTooFew}
	}

	for i := 0; i < c.Len(); i++ {
		if c.GiverDegree(i) == 0 {
			return Feasibility{
				Possible: false,
				Reason:   fmt.Sprintf("%s has no valid receiver: their exclusions rule out everyone else", c.Name(i)),
			}
		}
	}
	for j := 0; j < c.Len(); j++ {
		if c.ReceiverDegree(j) == 0 {
			return Feasibility{
				Possible: false,
				Reason:   fmt.Sprintf("%s cannot receive a gift: every other participant excludes them", c.Name(j)),
			}
		}
	}

	if solve(c, inputOrder(c.Len()), nil) == nil {
		return Feasibility{Possible: false, Reason: ReasonUnsatisfiable}
	}
	return Feasibility{Possible: true, Reason: ReasonSolvable}
}
