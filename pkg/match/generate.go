package match

import (
	"errors"
	"math/rand"
	"slices"
	"time"
)

var (
	// ErrTooFewParticipants is returned by [Generate] for groups with
	// fewer than two members, for which no assignment can exist.
	ErrTooFewParticipants = errors.New("need at least 2 participants")

	// ErrAttemptsExhausted is returned by [Generate] when every
	// randomized attempt failed. Because each attempt is a complete
	// search, this only happens on genuinely unsolvable groups; callers
	// that already confirmed feasibility with [CheckSolvable] should
	// treat it as retryable or re-run the checker before giving up.
	ErrAttemptsExhausted = errors.New("no valid assignment found within the attempt budget")
)

// DefaultAttempts is the number of randomized search attempts [Generate]
// makes before reporting ErrAttemptsExhausted.
const DefaultAttempts = 100

// Options configures [Generate]. The zero value is usable; use
// [DefaultOptions] for explicit defaults.
type Options struct {
	// Attempts caps the number of randomized search attempts.
	// Values <= 0 fall back to DefaultAttempts.
	Attempts int

	// Seed seeds the random source. Zero means seed from the clock,
	// which is what production callers want; tests pass a fixed seed
	// for reproducible assignments.
	Seed int64

	// Fallback runs one final deterministic exhaustive search after all
	// randomized attempts failed, trading variety for a guaranteed
	// result on solvable groups.
	Fallback bool
}

// DefaultOptions returns the options Generate uses when passed nil.
func DefaultOptions() *Options {
	return &Options{Attempts: DefaultAttempts}
}

// Generate produces one valid assignment for the group, chosen with
// randomized variety: repeated calls on the same group return different
// valid assignments rather than a single canonical one.
//
// Givers are visited most-constrained-first (ascending count of
// compatible receivers, input order breaking ties); the order is computed
// once and reused across attempts. Within each attempt the backtracking
// search shuffles the candidate receivers uniformly at every decision
// point, so each attempt is a complete search over a randomly reordered
// branch space.
//
// Returns ErrNoParticipants for nil input, ErrTooFewParticipants for
// groups smaller than two, and ErrAttemptsExhausted when all attempts
// fail (see that error for what it implies).
func Generate(participants []Participant, opts *Options) ([]Assignment, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	c, err := NewCompatibility(participants)
	if err != nil {
		return nil, err
	}
	if c.Len() < 2 {
		return nil, ErrTooFewParticipants
	}

	order := inputOrder(c.Len())
	slices.SortStableFunc(order, func(a, b int) int {
		return c.GiverDegree(a) - c.GiverDegree(b)
	})

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if assigned := solve(c, order, rng); assigned != nil {
			return bind(participants, assigned), nil
		}
	}

	if opts.Fallback {
		if assigned := solve(c, order, nil); assigned != nil {
			return bind(participants, assigned), nil
		}
	}

	return nil, ErrAttemptsExhausted
}

// bind converts a receiver-index vector into the public assignment list,
// one entry per giver in input order.
func bind(participants []Participant, assigned []int) []Assignment {
	out := make([]Assignment, len(participants))
	for i, p := range participants {
		out[i] = Assignment{
			GiverID:  p.ID,
			Giver:    p.Name,
			Receiver: participants[assigned[i]].Name,
		}
	}
	return out
}
