// Package animation drives the disk-by-disk replay of a move sequence.
//
// # Driver
//
// [Driver] is a tick-driven state machine with four states: [PhaseIdle],
// [PhaseLift], [PhaseTranslate] and [PhaseDrop]. It consumes moves from a
// FIFO queue one at a time. While a move is in flight the driver holds a
// single [Flight] value describing the disk, the current phase and its
// interpolated position; when Idle there is no flight at all. Because the
// driver only ever holds one flight and refuses to dequeue while it has one,
// at most one disk is ever in transit.
//
// Each call to [Driver.Tick] advances exactly one unit of progress:
//
//	Lift       straight up from the resting slot to Geometry.LiftY
//	Translate  sideways at LiftY until centered over the destination peg
//	Drop       straight down to the next free slot on the destination peg
//
// A phase with N steps spends N+1 ticks: N interpolated positions followed by
// one tick that snaps exactly to the target and enters the next phase. The
// disk is popped from its source peg when the move is dispatched and pushed
// onto the destination when Drop completes; in between it belongs to no peg.
// When a Drop completes and more moves are queued, the next move is
// dispatched in the same tick.
//
// [Driver.Cancel] is a hard stop: the queue and the flight are discarded with
// no attempt to put the disk back.
//
// # Geometry
//
// [Geometry] maps pegs and stack levels to canvas coordinates. Coordinates are
// abstract units with y growing downwards; positions describe a disk's
// top-left corner. [DefaultGeometry] uses the classic 900x475 board.
package animation
