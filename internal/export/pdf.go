package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"PenBoard/internal/state"
)

// Canvas pixels are scaled down to fit an A4 page in millimeters, and a
// point's pressure picks the width of the segment leaving it.
const (
	pdfScale    = 3.0
	maxLineWide = 2.0 // mm at full pressure
)

func pdfDoc(d *state.Drawing) *gofpdf.Fpdf {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	p.SetDrawColor(0, 0, 0)

	for _, s := range d.Shapes() {
		pts := s.Points
		if len(pts) == 1 {
			// A single-point stroke still leaves a mark.
			p.SetLineWidth(float64(pts[0].Pressure) * maxLineWide)
			x, y := float64(pts[0].X)/pdfScale, float64(pts[0].Y)/pdfScale
			p.Line(x, y, x, y)
			continue
		}
		for i := 1; i < len(pts); i++ {
			p.SetLineWidth(float64(pts[i-1].Pressure) * maxLineWide)
			p.Line(
				float64(pts[i-1].X)/pdfScale, float64(pts[i-1].Y)/pdfScale,
				float64(pts[i].X)/pdfScale, float64(pts[i].Y)/pdfScale,
			)
		}
	}
	return p
}

// WritePDF renders the drawing to w as a PDF page.
func WritePDF(w io.Writer, d *state.Drawing) error {
	if err := pdfDoc(d).Output(w); err != nil {
		return fmt.Errorf("export: encode pdf: %w", err)
	}
	return nil
}

// SavePDF writes the PDF export to path, replacing any previous file.
func SavePDF(path string, d *state.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := WritePDF(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
