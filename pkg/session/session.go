// Package session is the boundary between the animation core and whatever
// presents it.
//
// A [Session] owns one tower, one animation driver and the move counter.
// Presentation code calls three operations:
//
//   - [Session.Start] validates a disk count, rebuilds the tower, computes
//     the solution and starts the driver
//   - [Session.Reset] validates a disk count and rebuilds the tower, hard
//     cancelling any run in progress
//   - [Session.Tick] advances the driver by one step, typically from a timer
//
// and reads state back through [Session.Snapshot]. Invalid input is rejected
// with an INVALID_INPUT error before anything is touched.
//
// # Usage
//
//	sess := session.New(session.DefaultOptions())
//	if err := sess.Start(ctx, "3"); err != nil {
//	    // show errors.UserMessage(err)
//	}
//	for sess.Tick(ctx) {
//	    draw(sess.Snapshot())
//	}
//
// A Session is not safe for concurrent use. The terminal player drives it
// from the bubbletea event loop; the HTTP server creates one per request.
package session

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/hanoi/pkg/animation"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/observability"
)

// DefaultDisks is the disk count of a freshly created session.
const DefaultDisks = 4

// Options configures a [Session].
type Options struct {
	Disks         int // initial setup; must lie within the accepted range
	StepsPerPhase int
	Geometry      animation.Geometry
}

// DefaultOptions returns the classic setup: four disks, 30 steps per phase.
func DefaultOptions() Options {
	return Options{
		Disks:         DefaultDisks,
		StepsPerPhase: animation.DefaultStepsPerPhase,
		Geometry:      animation.DefaultGeometry(),
	}
}

// Session is one player's tower and its animation.
type Session struct {
	opts    Options
	runID   string
	disks   int
	tower   *hanoi.Tower
	driver  *animation.Driver
	total   int
	running bool
}

// New creates a session with the initial tower already set up. An
// out-of-range Options.Disks falls back to [DefaultDisks].
func New(opts Options) *Session {
	if herrors.ValidateDiskCount(opts.Disks) != nil {
		opts.Disks = DefaultDisks
	}
	s := &Session{opts: opts}
	s.setup(opts.Disks)
	return s
}

// Start validates input, rebuilds the tower, zeroes the move counter and
// begins animating the full solution. Any run in progress is cancelled.
// On invalid input nothing changes.
func (s *Session) Start(ctx context.Context, input string) error {
	n, err := herrors.ParseDiskCount(input)
	if err != nil {
		return err
	}
	s.cancel(ctx)
	s.setup(n)

	moves := hanoi.Solve(n)
	s.total = len(moves)
	s.running = true
	observability.Animation().OnRunStart(ctx, s.runID, n, s.total)
	s.driver.Load(ctx, moves)
	return nil
}

// StartDisks is [Session.Start] for callers that already hold a number.
func (s *Session) StartDisks(ctx context.Context, n int) error {
	return s.Start(ctx, strconv.Itoa(n))
}

// Reset validates input, cancels any run in progress and rebuilds the tower
// with n disks on peg 0. The move counter goes back to zero.
func (s *Session) Reset(ctx context.Context, input string) error {
	n, err := herrors.ParseDiskCount(input)
	if err != nil {
		return err
	}
	s.cancel(ctx)
	s.setup(n)
	return nil
}

// Tick advances the animation by one step. It reports whether the run is
// still going after the step; it is a no-op returning false when idle.
func (s *Session) Tick(ctx context.Context) bool {
	if !s.running {
		return false
	}
	s.driver.Tick(ctx)
	if s.driver.Idle() && s.driver.Pending() == 0 {
		s.running = false
		observability.Animation().OnRunComplete(ctx, s.runID, s.driver.Completed(), s.driver.Ticks())
	}
	return s.running
}

// Advance fast-forwards a started run until moves drops have completed, then
// ticks ticks more. It stops early when the run finishes.
func (s *Session) Advance(ctx context.Context, moves, ticks int) {
	for s.running && s.driver.Completed() < moves {
		s.Tick(ctx)
	}
	for i := 0; i < ticks && s.running; i++ {
		s.Tick(ctx)
	}
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool { return s.running }

// MoveCount returns the number of completed moves in the current run.
func (s *Session) MoveCount() int { return s.driver.Completed() }

// Disks returns the current disk count.
func (s *Session) Disks() int { return s.disks }

// RunID identifies the current setup; it changes on every Start and Reset.
func (s *Session) RunID() string { return s.runID }

// Geometry returns the board geometry.
func (s *Session) Geometry() animation.Geometry { return s.driver.Geometry() }

// TicksPerMove returns the number of ticks a single move takes.
func (s *Session) TicksPerMove() int { return s.driver.TicksPerMove() }

func (s *Session) setup(n int) {
	s.runID = uuid.NewString()
	s.disks = n
	s.tower = hanoi.NewTower(n)
	s.driver = animation.NewDriver(s.tower,
		animation.WithGeometry(s.opts.Geometry),
		animation.WithStepsPerPhase(s.opts.StepsPerPhase),
		animation.WithRunID(s.runID),
	)
	s.total = 0
	s.running = false
}

func (s *Session) cancel(ctx context.Context) {
	if s.driver == nil {
		return
	}
	pending, inFlight := s.driver.Cancel()
	if s.running {
		observability.Animation().OnReset(ctx, s.runID, pending, inFlight)
	}
	s.running = false
}
