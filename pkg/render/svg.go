package render

import (
	"bytes"
	"fmt"
	"html"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	status     bool
	background string
}

// WithStatus adds the move counter below the board.
func WithStatus() SVGOption { return func(r *svgRenderer) { r.status = true } }

// WithBackground fills the canvas with color before drawing.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG draws f as a standalone SVG document.
func RenderSVG(f Frame, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	height := f.Height
	if r.status {
		height += statusLineHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, height, f.Width, height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(r.background))
	}

	for i, p := range f.Pegs {
		fmt.Fprintf(&buf, `  <rect id="peg-%d" class="peg" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			i, p.X, p.Y, p.W, p.H, PegFill, PegStroke)
	}
	fmt.Fprintf(&buf, `  <rect class="platform" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		f.Platform.X, f.Platform.Y, f.Platform.W, f.Platform.H, PlatformFill, PlatformStroke)

	for _, d := range f.Disks {
		class := "disk"
		if d.InFlight {
			class = "disk in-flight"
		}
		fmt.Fprintf(&buf, `  <rect id="disk-%d" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" ry="%.0f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			d.Size, class, d.X, d.Y, d.W, d.H, DiskRadius, DiskRadius, d.Color, DiskStroke)
	}

	if r.status {
		fmt.Fprintf(&buf, `  <text class="status" x="%.2f" y="%.2f" font-family="sans-serif" font-size="18" text-anchor="middle">%s</text>`+"\n",
			f.Width/2, f.Height+statusLineHeight/2, html.EscapeString(f.Status()))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

const statusLineHeight = 32.0
