package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// ReadDocument decodes a JSON or YAML document from r. Text documents carry
// no disk count and cannot be read back.
//
// ReadDocument checks the shape of the document only: the disk count range,
// the move count, and that every peg index exists. Use [Document.Verify] to
// check that the moves are legal and solve the tower.
func ReadDocument(r io.Reader, format string) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, herrors.Wrap(herrors.ErrCodeInvalidInput, err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, herrors.Wrap(herrors.ErrCodeInvalidInput, err, "decode yaml")
		}
	default:
		return Document{}, herrors.ValidateFormat(format, FormatJSON, FormatYAML)
	}

	if err := herrors.ValidateDiskCount(doc.Disks); err != nil {
		return Document{}, err
	}
	if doc.TotalMoves != len(doc.Moves) {
		return Document{}, herrors.New(herrors.ErrCodeInvalidInput,
			"total_moves is %d but the document lists %d moves", doc.TotalMoves, len(doc.Moves))
	}
	for i, m := range doc.Moves {
		if !m.From.Valid() || !m.To.Valid() {
			return Document{}, herrors.New(herrors.ErrCodeInvalidInput, "move %d (%s): no such peg", i+1, m)
		}
	}
	return doc, nil
}

// ImportDocument reads a document from path. The format follows the file
// extension: .json, or .yaml/.yml.
func ImportDocument(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f, format)
}

// FormatFromPath maps a file extension to a document format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt":
		return FormatText, nil
	}
	return "", herrors.New(herrors.ErrCodeInvalidFormat, "cannot tell the format of %s (use .json, .yaml or .txt)", path)
}

// Verify replays the moves on a fresh tower and checks that every disk ends
// on the destination peg.
func (d Document) Verify() error {
	t := hanoi.NewTower(d.Disks)
	if err := hanoi.Replay(t, d.Moves); err != nil {
		return err
	}
	if got := t.Count(hanoi.Destination); got != d.Disks {
		return herrors.New(herrors.ErrCodeInvalidInput,
			"moves leave %d of %d disks on the destination peg", got, d.Disks)
	}
	return nil
}
