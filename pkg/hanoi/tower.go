package hanoi

import (
	herrors "github.com/matzehuels/hanoi/pkg/errors"
)

// diskPalette mirrors the classic disk colors: crimson, dark orange, yellow,
// forest green, dodger blue and dark violet.
var diskPalette = [...]string{
	"#DC143C",
	"#FF8C00",
	"#FFFF00",
	"#228B22",
	"#1E90FF",
	"#9400D3",
}

// Disk is a single disk. Size 1 is the smallest.
type Disk struct {
	Size int `json:"size" yaml:"size"`
}

// Color returns the disk's fill color as a hex string. Colors are indexed by
// size modulo the palette length, so a six-disk tower starts over at crimson
// for its largest disk.
func (d Disk) Color() string {
	return diskPalette[d.Size%len(diskPalette)]
}

// Tower holds the three peg stacks. The zero value is an empty tower.
//
// Stacks are ordered bottom to top. Tower is not safe for concurrent use;
// the animation driver is its only mutator.
type Tower struct {
	pegs [NumPegs][]Disk
}

// NewTower builds the initial configuration for n disks: all on peg 0,
// largest at the bottom.
func NewTower(n int) *Tower {
	t := &Tower{}
	if n <= 0 {
		return t
	}
	t.pegs[Source] = make([]Disk, 0, n)
	for size := n; size > 0; size-- {
		t.pegs[Source] = append(t.pegs[Source], Disk{Size: size})
	}
	return t
}

// Push places d on top of peg p. Placing a disk on a smaller one violates
// the tower invariant and leaves the tower unchanged.
func (t *Tower) Push(p Peg, d Disk) error {
	if !p.Valid() {
		return herrors.New(herrors.ErrCodeInvariant, "no such peg: %d", p)
	}
	if top, ok := t.Peek(p); ok && top.Size < d.Size {
		return herrors.New(herrors.ErrCodeInvariant, "cannot place disk %d on disk %d (peg %d)", d.Size, top.Size, p)
	}
	t.pegs[p] = append(t.pegs[p], d)
	return nil
}

// Pop removes and returns the top disk of peg p.
func (t *Tower) Pop(p Peg) (Disk, error) {
	if !p.Valid() {
		return Disk{}, herrors.New(herrors.ErrCodeInvariant, "no such peg: %d", p)
	}
	stack := t.pegs[p]
	if len(stack) == 0 {
		return Disk{}, herrors.New(herrors.ErrCodeInvariant, "peg %d is empty", p)
	}
	d := stack[len(stack)-1]
	t.pegs[p] = stack[:len(stack)-1]
	return d, nil
}

// Peek returns the top disk of peg p without removing it.
func (t *Tower) Peek(p Peg) (Disk, bool) {
	if !p.Valid() || len(t.pegs[p]) == 0 {
		return Disk{}, false
	}
	return t.pegs[p][len(t.pegs[p])-1], true
}

// Count returns the number of disks on peg p.
func (t *Tower) Count(p Peg) int {
	if !p.Valid() {
		return 0
	}
	return len(t.pegs[p])
}

// Disks returns a copy of peg p's stack, bottom to top.
func (t *Tower) Disks(p Peg) []Disk {
	if !p.Valid() {
		return nil
	}
	out := make([]Disk, len(t.pegs[p]))
	copy(out, t.pegs[p])
	return out
}

// Total returns the number of disks resting on any peg. A disk in flight
// is not counted.
func (t *Tower) Total() int {
	n := 0
	for _, s := range t.pegs {
		n += len(s)
	}
	return n
}
