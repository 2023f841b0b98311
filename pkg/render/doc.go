// Package render draws animation frames.
//
// # Overview
//
// A [Frame] is a flat list of rectangles computed from a
// [session.Snapshot]: the platform, the three pegs, and every disk including
// the one in flight. Three sinks turn a frame into output:
//
//   - [RenderSVG] writes a standalone SVG document in canvas coordinates
//   - [RenderJSON] writes the same rectangles as JSON for other front ends
//   - [RenderTerminal] rasterizes the frame onto a character grid styled
//     with lipgloss
//
// Positions are top-left corners in canvas units, y growing downward.
//
//	snap := sess.Snapshot()
//	svg := render.RenderSVG(render.NewFrame(snap), render.WithStatus())
//
// # Recursion Trees
//
// The [tree] subpackage renders the solver's call tree with Graphviz.
//
// [tree]: github.com/matzehuels/hanoi/pkg/render/tree
package render
