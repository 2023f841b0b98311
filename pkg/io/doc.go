// Package io reads and writes move lists.
//
// # Overview
//
// A [Document] is a solved tower: the disk count and the moves that carry
// every disk from peg 0 to peg 2. Documents can be written as plain text,
// JSON or YAML, and read back from JSON or YAML.
//
// # Formats
//
// Text lists one move per line, numbered from 1:
//
//	1 0→2
//	2 0→1
//	3 2→1
//
// JSON and YAML carry the same fields:
//
//	{
//	  "disks": 2,
//	  "total_moves": 3,
//	  "moves": [{"from": 0, "to": 1}, {"from": 0, "to": 2}, {"from": 1, "to": 2}]
//	}
//
// # Import
//
// [ReadDocument] decodes a document and [Document.Verify] replays it on a
// fresh tower, so a hand-edited or foreign file can be checked:
//
//	doc, err := io.ImportDocument("moves.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := doc.Verify(); err != nil {
//	    return err
//	}
package io
