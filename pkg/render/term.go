package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default canvas units per terminal cell. One row is exactly one disk high.
const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 24.0
)

// TermOption configures [RenderTerminal].
type TermOption func(*termRenderer)

type termRenderer struct {
	cellW, cellH float64
	status       bool
	renderer     *lipgloss.Renderer
}

// WithCellSize sets how many canvas units one character cell covers.
// Non-positive values keep the defaults.
func WithCellSize(w, h float64) TermOption {
	return func(r *termRenderer) {
		if w > 0 {
			r.cellW = w
		}
		if h > 0 {
			r.cellH = h
		}
	}
}

// WithStatusLine appends the move counter under the board.
func WithStatusLine() TermOption { return func(r *termRenderer) { r.status = true } }

// WithRenderer styles output for a specific lipgloss renderer, e.g. one
// bound to a bubbletea program's output.
func WithRenderer(lr *lipgloss.Renderer) TermOption {
	return func(r *termRenderer) { r.renderer = lr }
}

type cell struct {
	ch    rune
	style int // index into termRenderer styles; 0 is unstyled
}

const (
	styleNone = iota
	stylePeg
	stylePlatform
	styleDiskBase // disk styles follow, one per palette color seen
)

// RenderTerminal rasterizes f onto a character grid. Pegs are drawn with
// '|', the platform with '=' and each disk with its size digit on its color.
// Without color support the digits keep disks distinguishable.
func RenderTerminal(f Frame, opts ...TermOption) string {
	r := termRenderer{cellW: DefaultCellWidth, cellH: DefaultCellHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.renderer == nil {
		r.renderer = lipgloss.DefaultRenderer()
	}

	cols := int(math.Ceil(f.Width / r.cellW))
	rows := int(math.Ceil(f.Height / r.cellH))
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	styles := []lipgloss.Style{
		r.renderer.NewStyle(),
		r.renderer.NewStyle().Foreground(lipgloss.Color(PegFill)),
		r.renderer.NewStyle().Foreground(lipgloss.Color(PlatformFill)),
	}
	diskStyle := map[string]int{}

	for _, p := range f.Pegs {
		r.paint(grid, p, cell{ch: '|', style: stylePeg})
	}
	r.paint(grid, f.Platform, cell{ch: '=', style: stylePlatform})
	for _, d := range f.Disks {
		idx, ok := diskStyle[d.Color]
		if !ok {
			idx = len(styles)
			diskStyle[d.Color] = idx
			styles = append(styles, r.renderer.NewStyle().
				Background(lipgloss.Color(d.Color)).
				Foreground(lipgloss.Color(DiskStroke)))
		}
		r.paint(grid, d.Rect, cell{ch: sizeRune(d.Size), style: idx})
	}

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeRow(&b, row, styles)
	}
	if r.status {
		b.WriteByte('\n')
		b.WriteString(f.Status())
	}
	return b.String()
}

// paint fills the cells covered by rect. Edges are rounded to the nearest
// cell boundary so a disk always occupies whole rows.
func (r termRenderer) paint(grid [][]cell, rect Rect, c cell) {
	r0, r1 := span(rect.Y, rect.H, r.cellH, len(grid))
	if len(grid) == 0 {
		return
	}
	c0, c1 := span(rect.X, rect.W, r.cellW, len(grid[0]))
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			grid[i][j] = c
		}
	}
}

func span(start, size, unit float64, limit int) (int, int) {
	lo := int(math.Round(start / unit))
	hi := int(math.Round((start + size) / unit))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, limit)
}

func writeRow(b *strings.Builder, row []cell, styles []lipgloss.Style) {
	var run strings.Builder
	current := styleNone
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if current == styleNone {
			b.WriteString(run.String())
		} else {
			b.WriteString(styles[current].Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range row {
		if c.style != current {
			flush()
			current = c.style
		}
		run.WriteRune(c.ch)
	}
	flush()
}

func sizeRune(size int) rune {
	if size >= 1 && size <= 9 {
		return rune('0' + size)
	}
	return '#'
}
