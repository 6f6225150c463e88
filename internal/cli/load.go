package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/giftmatch/pkg/group"
	"github.com/matzehuels/giftmatch/pkg/match"
)

// loadParticipants reads, normalizes, and validates a group file, then
// converts it to solver input. Every file-consuming command goes through
// here so they all enforce the same well-formedness contract.
func loadParticipants(ctx context.Context, path string) (*group.Group, []match.Participant, error) {
	logger := loggerFromContext(ctx)

	g, err := group.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	g.Normalize()
	if err := g.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid group file %s: %w", path, err)
	}

	participants := g.Participants()
	logger.Debugf("Loaded %d participants from %s", len(participants), path)
	return g, participants, nil
}
