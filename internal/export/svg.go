// Package export holds the lossy presentation sinks: SVG and PDF.
// Neither is read back; the native snapshot in package store is the
// format a drawing is reloaded from.
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"PenBoard/internal/state"
)

type svgPolyline struct {
	XMLName xml.Name `xml:"polyline"`
	Points  string   `xml:"points,attr"`
	Fill    string   `xml:"fill,attr"`
	Stroke  string   `xml:"stroke,attr"`
}

type svgDoc struct {
	XMLName   xml.Name      `xml:"svg"`
	Xmlns     string        `xml:"xmlns,attr"`
	Width     int           `xml:"width,attr"`
	Height    int           `xml:"height,attr"`
	ViewBox   string        `xml:"viewBox,attr"`
	Polylines []svgPolyline `xml:"polyline"`
}

// WriteSVG serializes the drawing as one polyline element per shape,
// with one vertex per point in sample order. Document coordinates match
// canvas pixels 1:1. Pressure has no representation in SVG geometry and
// is dropped.
func WriteSVG(w io.Writer, d *state.Drawing, width, height int) error {
	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   width,
		Height:  height,
		ViewBox: fmt.Sprintf("0 0 %d %d", width, height),
	}
	for _, s := range d.Shapes() {
		var pts strings.Builder
		for i, p := range s.Points {
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%g,%g", p.X, p.Y)
		}
		doc.Polylines = append(doc.Polylines, svgPolyline{
			Points: pts.String(),
			Fill:   "none",
			Stroke: "black",
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: write svg header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode svg: %w", err)
	}
	return nil
}

// SaveSVG writes the SVG export to path, replacing any previous file.
func SaveSVG(path string, d *state.Drawing, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := WriteSVG(f, d, width, height); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
