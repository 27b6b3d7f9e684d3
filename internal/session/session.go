// Package session ties one drawing to its capture controller and its
// files on disk. The drawing is owned here and handed to collaborators
// explicitly; there is no package-level document state.
package session

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"PenBoard/internal/export"
	"PenBoard/internal/state"
	"PenBoard/internal/store"
)

// Session is one open document: the drawing, the capture controller
// feeding it, and the base path its files are written under. Every
// completed stroke saves both the native snapshot and the SVG export,
// so closing the application never loses committed work.
type Session struct {
	basePath string
	width    int
	height   int

	drawing *state.Drawing
	capture *state.Capture

	// OnStatus, when set, receives short user-facing messages about
	// save and load outcomes.
	OnStatus func(string)
}

// New creates a session saving under basePath (extensions are
// appended), with the given canvas size for the SVG export.
func New(basePath string, width, height int) *Session {
	s := &Session{
		basePath: basePath,
		width:    width,
		height:   height,
		drawing:  state.NewDrawing(),
	}
	s.capture = state.NewCapture(s.drawing)
	s.capture.OnStroke = func(shape state.Shape) {
		log.Debugf("stroke committed: %s (%d points)", shape.ID, len(shape.Points))
		s.autosave()
	}
	return s
}

func (s *Session) Drawing() *state.Drawing { return s.drawing }
func (s *Session) Capture() *state.Capture { return s.capture }

// NativePath is the snapshot file, the one read back on load.
func (s *Session) NativePath() string { return s.basePath + ".json" }

// SVGPath is the lossy vector export written alongside the snapshot.
func (s *Session) SVGPath() string { return s.basePath + ".svg" }

// PDFPath is the on-demand PDF export.
func (s *Session) PDFPath() string { return s.basePath + ".pdf" }

// Save writes the native snapshot and the SVG export, overwriting both
// files. The first failure is returned and the in-memory drawing is
// never touched.
func (s *Session) Save() error {
	if err := store.Save(s.NativePath(), s.drawing); err != nil {
		return err
	}
	if err := export.SaveSVG(s.SVGPath(), s.drawing, s.width, s.height); err != nil {
		return err
	}
	return nil
}

// ExportPDF writes the PDF export.
func (s *Session) ExportPDF() error {
	if err := export.SavePDF(s.PDFPath(), s.drawing); err != nil {
		return err
	}
	s.status(fmt.Sprintf("Exported %s", s.PDFPath()))
	return nil
}

// Load replaces the drawing with the snapshot on disk. On failure the
// current drawing is retained unchanged.
func (s *Session) Load() error {
	shapes, err := store.Load(s.NativePath())
	if err != nil {
		return err
	}
	s.capture.Reset()
	s.drawing.Reset(shapes)
	s.status(fmt.Sprintf("Loaded %d shapes", len(shapes)))
	return nil
}

// Restore is the lenient startup load: a missing or unreadable snapshot
// leaves the session with an empty drawing instead of failing.
func (s *Session) Restore() {
	if err := s.Load(); err != nil {
		log.Warnf("starting with an empty drawing: %v", err)
	}
}

// Clear removes every shape and saves the now-empty document.
func (s *Session) Clear() {
	s.drawing.Clear()
	s.capture.Reset()
	s.autosave()
}

// Undo removes the most recently committed shape and saves.
func (s *Session) Undo() {
	if s.drawing.RemoveLast() {
		s.autosave()
	}
}

func (s *Session) autosave() {
	if err := s.Save(); err != nil {
		log.Errorf("autosave failed: %v", err)
		s.status(fmt.Sprintf("Save failed: %v", err))
		return
	}
	s.status(fmt.Sprintf("Saved %d shapes", s.drawing.Len()))
}

func (s *Session) status(msg string) {
	if s.OnStatus != nil {
		s.OnStatus(msg)
	}
}
