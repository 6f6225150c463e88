package match

import "errors"

// ErrNoParticipants is returned by [NewCompatibility] and [Generate] when
// the participant list is nil. Empty and singleton lists are not an error
// at this layer - they are rejected by [CheckSolvable] with a reason.
var ErrNoParticipants = errors.New("participant list must not be nil")

// Compatibility is the directed "giver may be assigned receiver" relation
// over a participant group, indexed by position in the input slice.
//
// The relation holds for a pair (i, j) iff i != j and participant j's name
// does not appear in participant i's exclusion list. The diagonal is
// always false - nobody gives to themselves.
//
// A Compatibility is built fresh per call and never mutated afterwards,
// so it is safe to share across goroutines.
type Compatibility struct {
	names []string
	ok    [][]bool
}

// NewCompatibility builds the compatibility relation for a group.
// Returns ErrNoParticipants if the list is nil.
func NewCompatibility(participants []Participant) (*Compatibility, error) {
	if participants == nil {
		return nil, ErrNoParticipants
	}

	n := len(participants)
	c := &Compatibility{
		names: make([]string, n),
		ok:    make([][]bool, n),
	}
	for i, p := range participants {
		c.names[i] = p.Name
	}

	for i, p := range participants {
		banned := make(map[string]struct{}, len(p.Exclusions))
		for _, name := range p.Exclusions {
			banned[name] = struct{}{}
		}

		row := make([]bool, n)
		for j := range participants {
			if i == j {
				continue
			}
			if _, excluded := banned[c.names[j]]; excluded {
				continue
			}
			row[j] = true
		}
		c.ok[i] = row
	}

	return c, nil
}

// Len returns the number of participants in the relation.
func (c *Compatibility) Len() int { return len(c.names) }

// Name returns the display name of the participant at index i.
func (c *Compatibility) Name(i int) string { return c.names[i] }

// Compatible reports whether the giver may be assigned the receiver.
func (c *Compatibility) Compatible(giver, receiver int) bool {
	return c.ok[giver][receiver]
}

// GiverDegree returns how many receivers the giver may be assigned.
// A degree of zero means the group is unsolvable.
func (c *Compatibility) GiverDegree(giver int) int {
	count := 0
	for _, ok := range c.ok[giver] {
		if ok {
			count++
		}
	}
	return count
}

// ReceiverDegree returns how many givers may be assigned the receiver.
func (c *Compatibility) ReceiverDegree(receiver int) int {
	count := 0
	for giver := range c.ok {
		if c.ok[giver][receiver] {
			count++
		}
	}
	return count
}
