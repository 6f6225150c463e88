// Package pairing renders gift-exchange compatibility graphs as
// Graphviz diagrams.
//
// The compatibility relation ("giver may give to receiver") becomes a
// directed graph: participants as boxes, one arc per compatible pair.
// When an assignment is supplied, its arcs are drawn bold and colored
// while the remaining compatible arcs are dimmed, which makes it easy to
// see how much slack a group had around the chosen matching.
//
// # Usage
//
//	dot, err := pairing.ToDOT(participants, pairing.Options{})
//	svg, err := pairing.RenderSVG(ctx, dot)
//	png, err := pairing.RenderPNG(ctx, dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering; no external graphviz installation is required.
package pairing
