package animation

import (
	"context"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/observability"
)

// DefaultStepsPerPhase is the number of interpolation steps in each phase.
const DefaultStepsPerPhase = 30

// Phase is the driver state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLift
	PhaseTranslate
	PhaseDrop
)

var phaseNames = [...]string{"idle", "lift", "translate", "drop"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Flight is the disk currently in transit.
type Flight struct {
	Index    int // 1-based position of Move in the run
	Move     hanoi.Move
	Disk     hanoi.Disk
	Phase    Phase
	Start    Point // phase start
	Target   Point // phase target
	Position Point // current interpolated position
	Step     int   // next interpolation step within the phase
	Steps    int
	Ticks    int // ticks spent on this move so far
}

// Progress returns the completed fraction of the current phase in [0, 1].
func (f Flight) Progress() float64 {
	if f.Steps <= 0 || f.Step >= f.Steps {
		return 1
	}
	return float64(f.Step) / float64(f.Steps)
}

// Option configures a [Driver].
type Option func(*Driver)

// WithGeometry sets the board geometry. Defaults to [DefaultGeometry].
func WithGeometry(g Geometry) Option { return func(d *Driver) { d.geom = g } }

// WithStepsPerPhase sets the interpolation steps per phase. Values below 1
// are ignored.
func WithStepsPerPhase(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.steps = n
		}
	}
}

// WithRunID tags hook events emitted by the driver.
func WithRunID(id string) Option { return func(d *Driver) { d.runID = id } }

// Driver replays moves against a tower one disk at a time. It is not safe for
// concurrent use; a single event loop owns it.
type Driver struct {
	tower *hanoi.Tower
	geom  Geometry
	steps int
	runID string

	queue      []hanoi.Move
	flight     *Flight
	dispatched int
	completed  int
	ticks      int
}

// NewDriver creates an idle driver that animates moves on t.
func NewDriver(t *hanoi.Tower, opts ...Option) *Driver {
	d := &Driver{
		tower: t,
		geom:  DefaultGeometry(),
		steps: DefaultStepsPerPhase,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load appends moves to the queue. An idle driver dispatches the first move
// immediately, so the next Tick already animates it.
func (d *Driver) Load(ctx context.Context, moves []hanoi.Move) {
	d.queue = append(d.queue, moves...)
	if d.flight == nil {
		d.dispatch(ctx)
	}
}

// Tick advances the animation by one step. It reports whether any work was
// done; an idle driver with an empty queue does nothing and returns false.
func (d *Driver) Tick(ctx context.Context) bool {
	f := d.flight
	if f == nil {
		return false
	}
	d.ticks++
	f.Ticks++

	if f.Step < f.Steps {
		f.Position = Interpolate(f.Start, f.Target, f.Step, f.Steps)
		f.Step++
		return true
	}

	f.Position = f.Target
	switch f.Phase {
	case PhaseLift:
		over := Point{X: d.geom.PegX(f.Move.To) - d.geom.DiskWidth(f.Disk.Size)/2, Y: d.geom.LiftY}
		d.enter(ctx, PhaseTranslate, over)
	case PhaseTranslate:
		slot := Point{X: f.Position.X, Y: d.geom.SlotY(d.tower.Count(f.Move.To))}
		d.enter(ctx, PhaseDrop, slot)
	case PhaseDrop:
		d.land(ctx)
	}
	return true
}

// Cancel discards the queue and any in-flight disk. It returns what was
// dropped so callers can report it.
func (d *Driver) Cancel() (pending int, inFlight bool) {
	pending, inFlight = len(d.queue), d.flight != nil
	d.queue = nil
	d.flight = nil
	return pending, inFlight
}

// Phase returns the current state.
func (d *Driver) Phase() Phase {
	if d.flight == nil {
		return PhaseIdle
	}
	return d.flight.Phase
}

// Flight returns a copy of the in-flight disk state, if any.
func (d *Driver) Flight() (Flight, bool) {
	if d.flight == nil {
		return Flight{}, false
	}
	return *d.flight, true
}

// Idle reports whether no disk is in flight.
func (d *Driver) Idle() bool { return d.flight == nil }

// Pending returns the number of queued moves not yet dispatched.
func (d *Driver) Pending() int { return len(d.queue) }

// Completed returns the number of finished moves.
func (d *Driver) Completed() int { return d.completed }

// Ticks returns the number of ticks that did work.
func (d *Driver) Ticks() int { return d.ticks }

// Geometry returns the board geometry.
func (d *Driver) Geometry() Geometry { return d.geom }

// StepsPerPhase returns the interpolation steps per phase.
func (d *Driver) StepsPerPhase() int { return d.steps }

// TicksPerMove returns the ticks one complete move takes.
func (d *Driver) TicksPerMove() int { return 3 * (d.steps + 1) }

func (d *Driver) dispatch(ctx context.Context) {
	if len(d.queue) == 0 {
		return
	}
	m := d.queue[0]
	d.queue = d.queue[1:]
	d.dispatched++

	level := d.tower.Count(m.From) - 1
	disk, err := d.tower.Pop(m.From)
	if err != nil {
		// The queue and the tower disagree; only a sequencer bug gets here.
		panic(herrors.Wrap(herrors.ErrCodeInvariant, err, "move %d (%s) dispatched against an empty peg", d.dispatched, m))
	}

	start := d.geom.RestingPosition(m.From, level, disk)
	d.flight = &Flight{
		Index:    d.dispatched,
		Move:     m,
		Disk:     disk,
		Phase:    PhaseLift,
		Start:    start,
		Target:   Point{X: start.X, Y: d.geom.LiftY},
		Position: start,
		Steps:    d.steps,
	}

	hooks := observability.Animation()
	hooks.OnMoveStart(ctx, d.runID, d.dispatched, int(m.From), int(m.To), disk.Size)
	hooks.OnPhaseChange(ctx, d.runID, d.dispatched, PhaseLift.String())
}

func (d *Driver) enter(ctx context.Context, p Phase, target Point) {
	f := d.flight
	f.Phase = p
	f.Start = f.Position
	f.Target = target
	f.Step = 0
	observability.Animation().OnPhaseChange(ctx, d.runID, f.Index, p.String())
}

func (d *Driver) land(ctx context.Context) {
	f := d.flight
	if err := d.tower.Push(f.Move.To, f.Disk); err != nil {
		panic(herrors.Wrap(herrors.ErrCodeInvariant, err, "move %d (%s) landed illegally", f.Index, f.Move))
	}
	d.completed++
	d.flight = nil
	observability.Animation().OnMoveComplete(ctx, d.runID, f.Index, int(f.Move.From), int(f.Move.To), f.Disk.Size, f.Ticks)

	d.dispatch(ctx)
}
