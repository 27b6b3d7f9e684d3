package main

import (
	"flag"
	"os"
	"path/filepath"

	"PenBoard/internal/session"
	"PenBoard/internal/ui"
)

// SVG export size; document coordinates match canvas pixels 1:1.
const (
	canvasWidth  = 1920
	canvasHeight = 1080
)

func main() {
	defaultBase := filepath.Join(os.TempDir(), "penboard")
	base := flag.String("file", defaultBase, "base path for saved drawings (.json, .svg and .pdf are appended)")
	flag.Parse()

	sess := session.New(*base, canvasWidth, canvasHeight)
	sess.Restore()
	ui.RunApp(sess)
}
