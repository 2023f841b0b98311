package io

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NewDocument(2)))
	assert.Equal(t, "1 0→1\n2 0→2\n3 1→2\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument(1)))
	assert.JSONEq(t, `{"disks":1,"total_moves":1,"moves":[{"from":0,"to":2}]}`, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewDocument(1)))
	assert.Equal(t, "disks: 1\ntotal_moves: 1\nmoves:\n  - from: 0\n    to: 2\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, NewDocument(1), "xml")
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidFormat))
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			want := NewDocument(5)
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, want, format))

			got, err := ReadDocument(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.NoError(t, got.Verify())
		})
	}
}

func TestReadDocument_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  herrors.Code
	}{
		{"malformed", `{"disks":`, herrors.ErrCodeInvalidInput},
		{"too many disks", `{"disks":7,"total_moves":0,"moves":[]}`, herrors.ErrCodeInvalidInput},
		{"count mismatch", `{"disks":1,"total_moves":2,"moves":[{"from":0,"to":2}]}`, herrors.ErrCodeInvalidInput},
		{"bad peg", `{"disks":1,"total_moves":1,"moves":[{"from":0,"to":3}]}`, herrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.input), FormatJSON)
			require.Error(t, err)
			assert.Equal(t, tt.code, herrors.GetCode(err))
		})
	}

	_, err := ReadDocument(strings.NewReader("1 0→2"), FormatText)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidFormat))
}

func TestDocument_Verify(t *testing.T) {
	illegal := Document{Disks: 2, TotalMoves: 2, Moves: []hanoi.Move{{From: 0, To: 1}, {From: 0, To: 1}}}
	err := illegal.Verify()
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvariant))

	unfinished := Document{Disks: 2, TotalMoves: 1, Moves: []hanoi.Move{{From: 0, To: 1}}}
	err = unfinished.Verify()
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidInput))
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moves.yml")

	require.NoError(t, Export(path, NewDocument(3), FormatYAML))
	doc, err := ImportDocument(path)
	require.NoError(t, err)
	assert.Equal(t, 7, doc.TotalMoves)

	_, err = ImportDocument(filepath.Join(dir, "moves.csv"))
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidFormat))

	_, err = ImportDocument(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type closeFailWriter struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (w *closeFailWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestExport_ReportsCloseError(t *testing.T) {
	flushErr := errors.New("disk full")
	w := &closeFailWriter{closeErr: flushErr}

	err := exportTo(w, "moves.json", NewDocument(2), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, flushErr)
	assert.Contains(t, err.Error(), "close moves.json")
	assert.True(t, w.closed)
}

func TestExport_WriteErrorWins(t *testing.T) {
	w := &closeFailWriter{closeErr: errors.New("close failed")}

	err := exportTo(w, "moves.xml", NewDocument(2), "xml")
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidFormat))
	assert.True(t, w.closed, "writer must be closed on write failure too")
}
