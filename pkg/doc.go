// Package pkg provides the core libraries for animating the Tower of Hanoi.
//
// # Overview
//
// Hanoi computes the minimal solution of the Tower of Hanoi and replays it
// one disk at a time: a disk lifts off its peg, slides across to the
// destination peg, and drops onto the stack there. The pkg directory is
// organized into three areas:
//
//  1. Domain logic: [hanoi] (sequencer and tower model), [animation]
//     (tick-driven lift/translate/drop driver) and [session] (the boundary
//     that starts, resets and ticks a run)
//  2. Output: [render] (SVG, JSON and terminal frames), [render/tree]
//     (recursion tree via Graphviz) and [io] (move list export and import)
//  3. Infrastructure: [config], [cache], [errors], [observability] and
//     [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	disk count
//	     ↓
//	[hanoi] Solve → ordered move list
//	     ↓
//	[animation] Driver (one move in flight, 3 phases per move)
//	     ↓
//	[session] Snapshot
//	     ↓
//	[render] Frame → SVG / JSON / terminal
//
// # Quick Start
//
//	sess := session.New(session.DefaultOptions())
//	if err := sess.Start(ctx, "3"); err != nil {
//	    return err // INVALID_INPUT, nothing changed
//	}
//	for sess.Tick(ctx) {
//	}
//	svg := render.RenderSVG(render.NewFrame(sess.Snapshot()), render.WithStatus())
//
// [hanoi]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/hanoi
// [animation]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/animation
// [session]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/session
// [render]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/render
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/render/tree
// [io]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hanoi/pkg/buildinfo
package pkg
