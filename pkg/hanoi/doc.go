// Package hanoi provides the Tower of Hanoi move sequencer and the tower
// data model the animation driver mutates.
//
// # Sequencer
//
// [GenerateMoves] emits the canonical minimal move order for the standard
// recursive three-peg algorithm: move n-1 disks out of the way, move the
// largest disk, move the n-1 disks back on top of it. The result for n disks
// always holds exactly 2^n - 1 moves, see [MoveCount]. [Solve] is the usual
// entry point and moves a full stack from peg 0 to peg 2 via peg 1:
//
//	moves := hanoi.Solve(3)
//	// [0→2 0→1 2→1 0→2 1→0 1→2 0→2]
//
// The sequencer is pure. It never touches a [Tower] and has no failure modes;
// disk counts are validated before they get here.
//
// # Tower Model
//
// A [Tower] holds three peg stacks of [Disk] values. [NewTower] builds the
// initial configuration with every disk on peg 0, largest at the bottom.
// [Tower.Push] and [Tower.Pop] are the only mutators and both enforce the
// stack discipline: popping an empty peg or placing a larger disk on a smaller
// one fails with an INVARIANT_VIOLATION error.
//
// [Replay] applies a move list directly to a tower without any animation and
// is used for legality checks and headless rendering.
//
// # Recursion Tree
//
// [CallTree] records the recursion itself, one [Call] per invocation with the
// emitted move between the two sub-calls. It feeds the recursion tree
// diagram and is not needed to solve the puzzle.
package hanoi
