package match

import (
	"strings"
	"testing"
)

func p(name string, exclusions ...string) Participant {
	return Participant{Name: name, Exclusions: exclusions}
}

func TestCheckSolvable(t *testing.T) {
	tests := []struct {
		name         string
		participants []Participant
		wantPossible bool
		wantReason   string // exact match when set
		reasonNames  string // substring match when set
	}{
		{
			name:         "Empty",
			participants: []Participant{},
			wantPossible: false,
			wantReason:   ReasonTooFew,
		},
		{
			name:         "Single",
			participants: []Participant{p("alice")},
			wantPossible: false,
			wantReason:   ReasonTooFew,
		},
		{
			name:         "Pair",
			participants: []Participant{p("alice"), p("bob")},
			wantPossible: true,
			wantReason:   ReasonSolvable,
		},
		{
			name:         "TrioNoExclusions",
			participants: []Participant{p("alice"), p("bob"), p("carol")},
			wantPossible: true,
			wantReason:   ReasonSolvable,
		},
		{
			name: "GiverExcludesEveryone",
			participants: []Participant{
				p("alice", "bob", "carol", "dave"),
				p("bob"),
				p("carol"),
				p("dave"),
			},
			wantPossible: false,
			reasonNames:  "alice",
		},
		{
			name: "ReceiverExcludedByEveryone",
			participants: []Participant{
				p("alice", "dave"),
				p("bob", "dave"),
				p("carol", "dave"),
				p("dave"),
			},
			wantPossible: false,
			reasonNames:  "dave",
		},
		{
			name: "GloballyUnsatisfiable",
			// Everyone has someone to give to and someone to receive
			// from, but bob and carol both depend on giving to alice,
			// and only one of them can.
			participants: []Participant{
				p("alice"),
				p("bob", "carol"),
				p("carol", "bob"),
			},
			wantPossible: false,
			wantReason:   ReasonUnsatisfiable,
		},
		{
			name: "TightButSolvable",
			participants: []Participant{
				p("alice", "bob"),
				p("bob", "carol"),
				p("carol", "alice"),
			},
			wantPossible: true,
			wantReason:   ReasonSolvable,
		},
		{
			name: "UnknownExclusionsIgnored",
			participants: []Participant{
				p("alice", "santa", "rudolph"),
				p("bob", "santa"),
			},
			wantPossible: true,
			wantReason:   ReasonSolvable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckSolvable(tt.participants)
			if got.Possible != tt.wantPossible {
				t.Fatalf("Possible = %v, want %v (reason: %q)", got.Possible, tt.wantPossible, got.Reason)
			}
			if tt.wantReason != "" && got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if tt.reasonNames != "" && !strings.Contains(got.Reason, tt.reasonNames) {
				t.Errorf("Reason = %q, want it to name %q", got.Reason, tt.reasonNames)
			}
		})
	}
}

func TestCheckSolvableNilInput(t *testing.T) {
	got := CheckSolvable(nil)
	if got.Possible {
		t.Fatalf("Possible = true for nil input")
	}
	if got.Reason != ReasonTooFew {
		t.Errorf("Reason = %q, want %q", got.Reason, ReasonTooFew)
	}
}

func TestNewCompatibility(t *testing.T) {
	t.Run("NilInput", func(t *testing.T) {
		if _, err := NewCompatibility(nil); err != ErrNoParticipants {
			t.Fatalf("err = %v, want ErrNoParticipants", err)
		}
	})

	t.Run("DiagonalAlwaysFalse", func(t *testing.T) {
		c, err := NewCompatibility([]Participant{p("alice"), p("bob"), p("carol")})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < c.Len(); i++ {
			if c.Compatible(i, i) {
				t.Errorf("Compatible(%d, %d) = true, want false", i, i)
			}
		}
	})

	t.Run("ExclusionIsOneDirectional", func(t *testing.T) {
		c, err := NewCompatibility([]Participant{p("alice", "bob"), p("bob")})
		if err != nil {
			t.Fatal(err)
		}
		if c.Compatible(0, 1) {
			t.Error("alice→bob should be incompatible")
		}
		if !c.Compatible(1, 0) {
			t.Error("bob→alice should stay compatible")
		}
	})

	t.Run("Degrees", func(t *testing.T) {
		c, err := NewCompatibility([]Participant{
			p("alice", "bob"),
			p("bob"),
			p("carol"),
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := c.GiverDegree(0); got != 1 {
			t.Errorf("GiverDegree(alice) = %d, want 1", got)
		}
		if got := c.GiverDegree(1); got != 2 {
			t.Errorf("GiverDegree(bob) = %d, want 2", got)
		}
		if got := c.ReceiverDegree(1); got != 1 {
			t.Errorf("ReceiverDegree(bob) = %d, want 1", got)
		}
	})

	t.Run("EmptyInputAllowed", func(t *testing.T) {
		c, err := NewCompatibility([]Participant{})
		if err != nil {
			t.Fatalf("err = %v, want nil for empty (non-nil) input", err)
		}
		if c.Len() != 0 {
			t.Errorf("Len = %d, want 0", c.Len())
		}
	})
}
