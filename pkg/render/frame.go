package render

import (
	"fmt"

	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/session"
)

// Board colors, matching the classic wooden look.
const (
	PegFill        = "#D2691E" // chocolate
	PegStroke      = "#8B4513" // saddle brown
	PlatformFill   = "#CD853F" // peru
	PlatformStroke = "#A0522D" // sienna
	DiskStroke     = "#000000"
	DiskRadius     = 8.0
)

// Rect is an axis-aligned rectangle; X and Y are its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// DiskRect is a disk placed on the canvas.
type DiskRect struct {
	Rect
	Size     int
	Color    string
	Peg      hanoi.Peg // resting peg; for the in-flight disk the source peg
	Level    int       // stack level, -1 while in flight
	InFlight bool
}

// Frame is everything needed to draw one animation frame.
type Frame struct {
	Width, Height float64
	Platform      Rect
	Pegs          [hanoi.NumPegs]Rect
	Disks         []DiskRect // resting disks peg by peg bottom up, in-flight disk last

	RunID      string
	DiskCount  int
	Phase      string
	MoveCount  int
	TotalMoves int
	Running    bool
}

// NewFrame lays out the board for a snapshot.
func NewFrame(s session.Snapshot) Frame {
	g := s.Geometry
	f := Frame{
		Width:  g.Width(),
		Height: g.Height(),
		Platform: Rect{
			X: g.PlatformX, Y: g.BaselineY,
			W: g.PlatformWidth, H: g.PlatformHeight,
		},
		RunID:      s.RunID,
		DiskCount:  s.Disks,
		Phase:      s.Phase.String(),
		MoveCount:  s.MoveCount,
		TotalMoves: s.TotalMoves,
		Running:    s.Running,
	}
	for p := range f.Pegs {
		f.Pegs[p] = Rect{
			X: g.PegX(hanoi.Peg(p)) - g.PegWidth/2,
			Y: g.BaselineY - g.PegHeight,
			W: g.PegWidth,
			H: g.PegHeight,
		}
	}

	f.Disks = make([]DiskRect, 0, s.Disks)
	for p, stack := range s.Pegs {
		for level, d := range stack {
			pos := g.RestingPosition(hanoi.Peg(p), level, d)
			f.Disks = append(f.Disks, DiskRect{
				Rect:  Rect{X: pos.X, Y: pos.Y, W: g.DiskWidth(d.Size), H: g.DiskHeight},
				Size:  d.Size,
				Color: d.Color(),
				Peg:   hanoi.Peg(p),
				Level: level,
			})
		}
	}
	if fl := s.Flight; fl != nil {
		f.Disks = append(f.Disks, DiskRect{
			Rect:     Rect{X: fl.Position.X, Y: fl.Position.Y, W: g.DiskWidth(fl.Disk.Size), H: g.DiskHeight},
			Size:     fl.Disk.Size,
			Color:    fl.Disk.Color(),
			Peg:      fl.Move.From,
			Level:    -1,
			InFlight: true,
		})
	}
	return f
}

// Status is the one-line summary shown under the board.
func (f Frame) Status() string {
	switch {
	case f.Running:
		return fmt.Sprintf("Moves: %d / %d (%s)", f.MoveCount, f.TotalMoves, f.Phase)
	case f.TotalMoves > 0 && f.MoveCount == f.TotalMoves:
		return fmt.Sprintf("Moves: %d / %d (solved)", f.MoveCount, f.TotalMoves)
	default:
		return fmt.Sprintf("Moves: %d", f.MoveCount)
	}
}
