package render

import (
	"encoding/json"
	"fmt"
)

type jsonOutput struct {
	RunID      string     `json:"run_id"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Disks      int        `json:"disks"`
	Phase      string     `json:"phase"`
	MoveCount  int        `json:"move_count"`
	TotalMoves int        `json:"total_moves"`
	Running    bool       `json:"running"`
	Platform   jsonRect   `json:"platform"`
	Pegs       []jsonRect `json:"pegs"`
	Stacks     [][]int    `json:"stacks"`
	Items      []jsonDisk `json:"items"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonDisk struct {
	jsonRect
	Size     int    `json:"size"`
	Color    string `json:"color"`
	Peg      int    `json:"peg"`
	Level    int    `json:"level"`
	InFlight bool   `json:"in_flight,omitempty"`
}

// RenderJSON exports f as a pretty-printed JSON document. Stacks lists the
// disk sizes resting on each peg bottom to top; Items carries the geometry
// of every disk, the in-flight one included.
func RenderJSON(f Frame) ([]byte, error) {
	out := jsonOutput{
		RunID:      f.RunID,
		Width:      f.Width,
		Height:     f.Height,
		Disks:      f.DiskCount,
		Phase:      f.Phase,
		MoveCount:  f.MoveCount,
		TotalMoves: f.TotalMoves,
		Running:    f.Running,
		Platform:   toJSONRect(f.Platform),
		Pegs:       make([]jsonRect, len(f.Pegs)),
		Stacks:     make([][]int, len(f.Pegs)),
		Items:      make([]jsonDisk, 0, len(f.Disks)),
	}
	for i, p := range f.Pegs {
		out.Pegs[i] = toJSONRect(p)
		out.Stacks[i] = []int{}
	}
	for _, d := range f.Disks {
		if !d.InFlight {
			out.Stacks[d.Peg] = append(out.Stacks[d.Peg], d.Size)
		}
		out.Items = append(out.Items, jsonDisk{
			jsonRect: toJSONRect(d.Rect),
			Size:     d.Size,
			Color:    d.Color,
			Peg:      int(d.Peg),
			Level:    d.Level,
			InFlight: d.InFlight,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}
	return data, nil
}

func toJSONRect(r Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
