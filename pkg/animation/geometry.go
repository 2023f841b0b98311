package animation

import (
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Point is a canvas position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Interpolate returns the linear interpolation between start and target at
// step out of total. Step 0 yields start and any step >= total yields target
// exactly, so chained phases never accumulate floating-point drift.
func Interpolate(start, target Point, step, total int) Point {
	if step >= total {
		return target
	}
	if step <= 0 {
		return start
	}
	t := float64(step) / float64(total)
	return Point{
		X: start.X + (target.X-start.X)*t,
		Y: start.Y + (target.Y-start.Y)*t,
	}
}

// Geometry describes the board layout.
type Geometry struct {
	BaselineY      float64 // top edge of the platform; disks rest on it
	LiftY          float64 // y of a lifted disk's top edge, the same for every peg
	DiskHeight     float64
	FirstPegX      float64 // center of peg 0
	PegSpacing     float64 // distance between peg centers
	DiskBaseWidth  float64
	DiskWidthStep  float64 // width added per size class
	PegWidth       float64
	PegHeight      float64
	PlatformX      float64
	PlatformWidth  float64
	PlatformHeight float64
}

// DefaultGeometry returns the classic board layout.
func DefaultGeometry() Geometry {
	return Geometry{
		BaselineY:      450,
		LiftY:          150,
		DiskHeight:     24,
		FirstPegX:      150,
		PegSpacing:     300,
		DiskBaseWidth:  30,
		DiskWidthStep:  25,
		PegWidth:       18,
		PegHeight:      220,
		PlatformX:      75,
		PlatformWidth:  750,
		PlatformHeight: 25,
	}
}

// Validate checks that sizes are positive and that a lifted disk clears the
// top of every peg.
func (g Geometry) Validate() error {
	switch {
	case g.DiskHeight <= 0:
		return herrors.New(herrors.ErrCodeInvalidConfig, "disk height must be positive")
	case g.PegSpacing <= 0:
		return herrors.New(herrors.ErrCodeInvalidConfig, "peg spacing must be positive")
	case g.DiskBaseWidth <= 0 || g.DiskWidthStep < 0:
		return herrors.New(herrors.ErrCodeInvalidConfig, "disk widths must be positive")
	case g.PegWidth <= 0 || g.PegHeight <= 0:
		return herrors.New(herrors.ErrCodeInvalidConfig, "peg size must be positive")
	case g.LiftY < 0 || g.LiftY >= g.BaselineY-g.PegHeight:
		return herrors.New(herrors.ErrCodeInvalidConfig, "lift height %.0f must be above the peg tops (y < %.0f)", g.LiftY, g.BaselineY-g.PegHeight)
	}
	return nil
}

// PegX returns the x coordinate of peg p's center.
func (g Geometry) PegX(p hanoi.Peg) float64 {
	return g.FirstPegX + float64(p)*g.PegSpacing
}

// DiskWidth returns the width of a disk of the given size.
func (g Geometry) DiskWidth(size int) float64 {
	return g.DiskBaseWidth + float64(size)*g.DiskWidthStep
}

// SlotY returns the top edge of a disk resting at the given stack level,
// where level 0 sits on the platform.
func (g Geometry) SlotY(level int) float64 {
	return g.BaselineY - float64(level+1)*g.DiskHeight
}

// RestingPosition returns the top-left corner of d resting on peg p at level.
func (g Geometry) RestingPosition(p hanoi.Peg, level int, d hanoi.Disk) Point {
	return Point{X: g.PegX(p) - g.DiskWidth(d.Size)/2, Y: g.SlotY(level)}
}

// Width returns the canvas width: pegs are centered with equal margins.
func (g Geometry) Width() float64 {
	return 2*g.FirstPegX + float64(hanoi.NumPegs-1)*g.PegSpacing
}

// Height returns the canvas height including the platform.
func (g Geometry) Height() float64 {
	return g.BaselineY + g.PlatformHeight + g.DiskHeight
}
