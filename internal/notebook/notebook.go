// Package notebook parses persisted notebook documents into an ordered
// sequence of cell records. The on-disk format is a JSON object with a
// "cells" list; each cell carries a cell_type and a source that may be
// encoded either as a single string or as a list of string fragments.
package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMalformedDocument indicates the document is not a well-formed notebook:
// the root object lacks a "cells" key, or a cell lacks cell_type or source.
var ErrMalformedDocument = errors.New("malformed notebook document")

// CellKind classifies a notebook cell.
type CellKind string

const (
	CellCode     CellKind = "code"
	CellMarkdown CellKind = "markdown"
	CellOther    CellKind = "other"
)

// Cell is a single cell record parsed from a notebook document.
// Cells are immutable once parsed.
type Cell struct {
	// Index is the cell's position within the document, starting at 0.
	Index int

	// Kind classifies the cell as code, markdown, or other.
	Kind CellKind

	// Source is the cell's content with list-of-fragment sources joined.
	Source string

	// ID is a stable identifier, defaulted to "cell-<index>" when the
	// document does not provide one.
	ID string
}

type rawCell struct {
	CellType *string         `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
	ID       string          `json:"id"`
}

// Parse reads a notebook document from disk and extracts its cells in order.
// It has no side effects beyond reading the file.
func Parse(path string) ([]Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook: %w", err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	rawCells, ok := root["cells"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"cells\" key", ErrMalformedDocument)
	}

	var parsed []rawCell
	if err := json.Unmarshal(rawCells, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid \"cells\" list: %v", ErrMalformedDocument, err)
	}

	cells := make([]Cell, 0, len(parsed))
	for idx, raw := range parsed {
		if raw.CellType == nil {
			return nil, fmt.Errorf("%w: cell %d missing cell_type", ErrMalformedDocument, idx)
		}
		if raw.Source == nil {
			return nil, fmt.Errorf("%w: cell %d missing source", ErrMalformedDocument, idx)
		}

		source, err := joinSource(raw.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %v", ErrMalformedDocument, idx, err)
		}

		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("cell-%d", idx)
		}

		cells = append(cells, Cell{
			Index:  idx,
			Kind:   kindOf(*raw.CellType),
			Source: source,
			ID:     id,
		})
	}

	return cells, nil
}

// joinSource normalizes a cell source to a single string. Both encodings in
// the wild are accepted: a plain string, or an ordered list of fragments
// joined with no separator.
func joinSource(raw json.RawMessage) (string, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, nil
	}

	var fragments []string
	if err := json.Unmarshal(raw, &fragments); err == nil {
		return strings.Join(fragments, ""), nil
	}

	return "", errors.New("source is neither a string nor a list of strings")
}

func kindOf(cellType string) CellKind {
	switch cellType {
	case "code":
		return CellCode
	case "markdown":
		return CellMarkdown
	default:
		return CellOther
	}
}
