package cli

import (
	"context"

	"github.com/matzehuels/hanoi/pkg/config"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/render"
	"github.com/matzehuels/hanoi/pkg/session"
)

// Frame output formats.
const (
	frameSVG  = "svg"
	frameJSON = "json"
	frameText = "text"
)

var frameFormats = []string{frameSVG, frameJSON, frameText}

// frameRequest selects a frame of an n-disk run: the moment after moves
// drops have completed, plus ticks more.
type frameRequest struct {
	disks int
	moves int
	ticks int
}

func (r frameRequest) validate() error {
	if err := herrors.ValidateDiskCount(r.disks); err != nil {
		return err
	}
	if total := hanoi.MoveCount(r.disks); r.moves < 0 || r.moves > total {
		return herrors.New(herrors.ErrCodeInvalidInput, "after must be between 0 and %d for %d disks", total, r.disks)
	}
	if r.ticks < 0 {
		return herrors.New(herrors.ErrCodeInvalidInput, "tick must not be negative")
	}
	return nil
}

// buildFrame runs a fresh session headless up to the requested point.
func buildFrame(ctx context.Context, cfg *config.Config, req frameRequest) (render.Frame, error) {
	if err := req.validate(); err != nil {
		return render.Frame{}, err
	}
	sess := session.New(cfg.SessionOptions())
	if err := sess.StartDisks(ctx, req.disks); err != nil {
		return render.Frame{}, err
	}
	sess.Advance(ctx, req.moves, req.ticks)
	return render.NewFrame(sess.Snapshot()), nil
}

// encodeFrame renders f in one of frameFormats.
func encodeFrame(cfg *config.Config, f render.Frame, format string) ([]byte, error) {
	switch format {
	case frameSVG:
		return render.RenderSVG(f, render.WithStatus()), nil
	case frameJSON:
		return render.RenderJSON(f)
	case frameText:
		out := render.RenderTerminal(f,
			render.WithCellSize(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight),
			render.WithStatusLine())
		return []byte(out + "\n"), nil
	}
	return nil, herrors.ValidateFormat(format, frameFormats...)
}
