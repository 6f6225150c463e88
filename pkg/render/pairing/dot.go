package pairing

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/giftmatch/pkg/match"
)

// Options configures compatibility-graph rendering.
type Options struct {
	// Assignment overlays a chosen matching: its arcs are drawn bold
	// and colored, all other compatible arcs are dimmed.
	Assignment []match.Assignment

	// Title is rendered as the graph label when non-empty.
	Title string
}

// ToDOT converts a group's compatibility relation to Graphviz DOT.
// Returns an error only when the participant list is nil.
func ToDOT(participants []match.Participant, opts Options) (string, error) {
	c, err := match.NewCompatibility(participants)
	if err != nil {
		return "", err
	}

	chosen := make(map[string]string, len(opts.Assignment))
	for _, a := range opts.Assignment {
		chosen[a.Giver] = a.Receiver
	}

	var buf bytes.Buffer
	buf.WriteString("digraph exchange {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=t;\n")
	}
	buf.WriteString("\n")

	for i := 0; i < c.Len(); i++ {
		fmt.Fprintf(&buf, "  %q;\n", c.Name(i))
	}

	buf.WriteString("\n")
	for i := 0; i < c.Len(); i++ {
		for j := 0; j < c.Len(); j++ {
			if !c.Compatible(i, j) {
				continue
			}
			giver, receiver := c.Name(i), c.Name(j)
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", giver, receiver, edgeAttrs(chosen, giver, receiver))
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func edgeAttrs(chosen map[string]string, giver, receiver string) string {
	if len(chosen) == 0 {
		return ""
	}
	if chosen[giver] == receiver {
		return " [color=\"#2a9d8f\", penwidth=2.5]"
	}
	return " [color=grey80, style=dashed]"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
