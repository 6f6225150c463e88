package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/pkg/match"
	"github.com/matzehuels/giftmatch/pkg/render/pairing"
)

// Output formats for the graph command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output         string // output file path (stdout for dot if empty)
	format         string // "dot", "svg", or "png"
	withAssignment bool   // overlay a freshly drawn assignment
	seed           int64  // seed for the overlay draw
}

// newGraphCmd creates the graph command for rendering the compatibility graph.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph <group-file>",
		Short: "Render a group's compatibility graph",
		Long: `Render the "who may give to whom" graph of a group.

By default the graph is written as Graphviz DOT to stdout. With --format
svg or png the graph is rendered in-process. With --with-assignment a
fresh assignment is drawn first and overlaid on the graph: chosen arcs
bold, the remaining slack dimmed.

Examples:
  giftmatch graph family.toml
  giftmatch graph family.toml --format svg -o family.svg
  giftmatch graph family.toml --with-assignment --format png -o draw.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG && opts.format != formatPNG {
				return fmt.Errorf("unknown format %q (want dot, svg, or png)", opts.format)
			}
			if opts.format != formatDOT && opts.output == "" {
				return fmt.Errorf("--output is required for %s", opts.format)
			}
			return runGraph(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout for dot if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, or png")
	cmd.Flags().BoolVar(&opts.withAssignment, "with-assignment", false, "overlay a freshly drawn assignment")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for the overlay draw")

	return cmd
}

func runGraph(cmd *cobra.Command, path string, opts *graphOpts) error {
	ctx := cmd.Context()

	g, participants, err := loadParticipants(ctx, path)
	if err != nil {
		return err
	}

	renderOpts := pairing.Options{Title: g.Name}
	if opts.withAssignment {
		assignments, err := match.Generate(participants, &match.Options{Seed: opts.seed})
		if err != nil {
			return fmt.Errorf("draw assignment for overlay: %w", err)
		}
		renderOpts.Assignment = assignments
	}

	dot, err := pairing.ToDOT(participants, renderOpts)
	if err != nil {
		return err
	}

	if opts.format == formatDOT {
		if opts.output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(opts.output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printFile(opts.output)
		return nil
	}

	var data []byte
	switch opts.format {
	case formatSVG:
		data, err = pairing.RenderSVG(ctx, dot)
	case formatPNG:
		data, err = pairing.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(opts.output)
	return nil
}
