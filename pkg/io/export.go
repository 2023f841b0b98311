package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Supported document formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats accepted by [Write].
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Document is a disk count with its move sequence.
type Document struct {
	Disks      int          `json:"disks" yaml:"disks"`
	TotalMoves int          `json:"total_moves" yaml:"total_moves"`
	Moves      []hanoi.Move `json:"moves" yaml:"moves"`
}

// NewDocument solves an n-disk tower.
func NewDocument(n int) Document {
	moves := hanoi.Solve(n)
	if moves == nil {
		moves = []hanoi.Move{}
	}
	return Document{Disks: n, TotalMoves: len(moves), Moves: moves}
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc Document, format string) error {
	switch format {
	case FormatText:
		return WriteText(w, doc)
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatYAML:
		return WriteYAML(w, doc)
	}
	return herrors.ValidateFormat(format, Formats...)
}

// WriteText writes one numbered move per line.
func WriteText(w io.Writer, doc Document) error {
	for i, m := range doc.Moves {
		if _, err := fmt.Fprintf(w, "%d %s\n", i+1, m); err != nil {
			return fmt.Errorf("write move %d: %w", i+1, err)
		}
	}
	return nil
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes doc as YAML.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes doc to a file at path.
func Export(path string, doc Document, format string) error {
	if err := herrors.ValidateFormat(format, Formats...); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return exportTo(f, path, doc, format)
}

// exportTo writes doc to w and closes it. A close failure is reported when
// the write itself succeeded.
func exportTo(w io.WriteCloser, path string, doc Document, format string) error {
	if err := Write(w, doc, format); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
