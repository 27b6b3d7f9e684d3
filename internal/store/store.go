// Package store reads and writes the native snapshot: the full drawing
// object graph, every shape and every point including pressure. It is
// the authoritative format; a drawing saved and loaded through it is
// reproduced exactly.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"PenBoard/internal/state"
)

// Save writes the drawing's full object graph to path, replacing any
// previous file. The in-memory drawing is never modified, so a failed
// save leaves it intact.
func Save(path string, d *state.Drawing) error {
	data, err := json.MarshalIndent(d.Shapes(), "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot written by Save and returns its shapes in
// order. A file that cannot be read or decoded fails outright; there is
// no partial recovery, and the caller's drawing is untouched until it
// chooses to apply the result.
func Load(path string) ([]state.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	var shapes []state.Shape
	if err := json.Unmarshal(data, &shapes); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", path, err)
	}
	for i, s := range shapes {
		if len(s.Points) == 0 {
			return nil, fmt.Errorf("store: decode %s: shape %d has no points", path, i)
		}
	}
	return shapes, nil
}
