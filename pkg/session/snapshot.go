package session

import (
	"github.com/matzehuels/hanoi/pkg/animation"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Snapshot is a read-only copy of a session's visible state.
type Snapshot struct {
	RunID      string
	Disks      int
	Pegs       [hanoi.NumPegs][]hanoi.Disk // bottom to top
	Flight     *animation.Flight           // nil when idle
	Phase      animation.Phase
	MoveCount  int
	TotalMoves int
	Pending    int
	Running    bool
	Geometry   animation.Geometry
}

// Done reports whether a run finished with every move applied.
func (s Snapshot) Done() bool {
	return !s.Running && s.TotalMoves > 0 && s.MoveCount == s.TotalMoves
}

// Snapshot copies the current state. Pegs do not contain the in-flight disk.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:      s.runID,
		Disks:      s.disks,
		Phase:      s.driver.Phase(),
		MoveCount:  s.driver.Completed(),
		TotalMoves: s.total,
		Pending:    s.driver.Pending(),
		Running:    s.running,
		Geometry:   s.driver.Geometry(),
	}
	for p := range snap.Pegs {
		snap.Pegs[p] = s.tower.Disks(hanoi.Peg(p))
	}
	if f, ok := s.driver.Flight(); ok {
		snap.Flight = &f
	}
	return snap
}

// DiskPositions returns the top-left corner of every resting disk, keyed by
// size, plus the in-flight disk at its interpolated position.
func (s Snapshot) DiskPositions() map[int]animation.Point {
	out := make(map[int]animation.Point, s.Disks)
	for p, stack := range s.Pegs {
		for level, d := range stack {
			out[d.Size] = s.Geometry.RestingPosition(hanoi.Peg(p), level, d)
		}
	}
	if s.Flight != nil {
		out[s.Flight.Disk.Size] = s.Flight.Position
	}
	return out
}
