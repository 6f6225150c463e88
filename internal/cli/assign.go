package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/pkg/match"
)

// assignOpts holds the command-line flags for the assign command.
type assignOpts struct {
	output   string // output file path (styled stdout if empty)
	seed     int64  // random seed, 0 means seed from the clock
	attempts int    // randomized attempt budget
	fallback bool   // deterministic fallback after all attempts fail
}

// newAssignCmd creates the assign command for drawing an assignment.
func newAssignCmd() *cobra.Command {
	opts := assignOpts{attempts: match.DefaultAttempts}

	cmd := &cobra.Command{
		Use:   "assign <group-file>",
		Short: "Draw a randomized gift assignment for a group",
		Long: `Draw one valid gift assignment for a group.

The draw is randomized: running the command twice gives different valid
assignments. Use --seed for a reproducible draw, --output to write the
result as JSON instead of printing the pairs.

Examples:
  giftmatch assign family.toml
  giftmatch assign family.toml --seed 42
  giftmatch assign family.toml -o assignment.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write assignment JSON to file (styled stdout if empty)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().IntVar(&opts.attempts, "attempts", opts.attempts, "randomized attempt budget")
	cmd.Flags().BoolVar(&opts.fallback, "fallback", false, "fall back to a deterministic search if all attempts fail")

	return cmd
}

func runAssign(cmd *cobra.Command, path string, opts *assignOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	_, participants, err := loadParticipants(ctx, path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Drawing assignment...")
	spinner.Start()
	assignments, err := match.Generate(participants, &match.Options{
		Attempts: opts.attempts,
		Seed:     opts.seed,
		Fallback: opts.fallback,
	})
	spinner.Stop()

	if err != nil {
		if errors.Is(err, match.ErrAttemptsExhausted) {
			// Tell infeasibility apart from bad luck before reporting.
			if feasibility := match.CheckSolvable(participants); !feasibility.Possible {
				printError("Not solvable: %s", feasibility.Reason)
				return fmt.Errorf("group is not solvable")
			}
			printError("No assignment found in %d attempts; the group is solvable, try again or use --fallback", opts.attempts)
		}
		return err
	}
	prog.done(fmt.Sprintf("Drew assignment for %d participants", len(assignments)))

	if opts.output != "" {
		return writeAssignmentFile(assignments, opts.output)
	}

	fmt.Println(StyleTitle.Render("Gift assignment"))
	for _, a := range assignments {
		printPair(a.Giver, a.Receiver)
	}
	return nil
}

// assignmentJSON is the on-disk shape of a drawn assignment.
type assignmentJSON struct {
	GiverID  string `json:"giver_id,omitempty"`
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

func writeAssignmentFile(assignments []match.Assignment, path string) error {
	out := make([]assignmentJSON, len(assignments))
	for i, a := range assignments {
		out[i] = assignmentJSON{GiverID: a.GiverID, Giver: a.Giver, Receiver: a.Receiver}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	printFile(path)
	return nil
}
