package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/theme"
)

// WritePDF renders the scene onto a single landscape A4 page, scaled to
// fit, and writes the document to path.
func WritePDF(path, title string, s compose.Scene, th theme.Config) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	margin := 10.0
	usableW := pageW - 2*margin
	usableH := pageH - 2*margin - 14

	totalH := s.Height + config.HeaderHeight
	if s.Width <= 0 || totalH <= 0 {
		return fmt.Errorf("empty scene")
	}
	scale := usableW / s.Width
	if h := usableH / totalH; h < scale {
		scale = h
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)

	originX := margin
	originY := margin + 14 + config.HeaderHeight*scale

	r, g, b := hexRGB(th.CanvasBackground)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(originX, margin+14, s.Width*scale, totalH*scale, "F")

	drawPDFHeader(pdf, s, th, originX, margin+14, scale)

	for _, p := range s.Prims {
		switch v := p.(type) {
		case compose.Rect:
			drawPDFRect(pdf, v, originX, originY, scale)
		case compose.Line:
			drawPDFLine(pdf, v, originX, originY, scale)
		case compose.Label:
			drawPDFLabel(pdf, v, originX, originY, scale)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func drawPDFHeader(pdf *fpdf.Fpdf, s compose.Scene, th theme.Config, x0, y0, scale float64) {
	r, g, b := hexRGB(th.HeaderForeground)
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Arial", "B", 8)
	for _, tk := range s.MonthTicks {
		if tk.Label == "" {
			continue
		}
		pdf.Text(x0+(tk.X+2)*scale, y0+5, tk.Label)
	}
	r, g, b = hexRGB(th.SubHeaderForeground)
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Arial", "", 6)
	for _, tk := range s.SubTicks {
		if tk.Label == "" {
			continue
		}
		pdf.Text(x0+(tk.X+1)*scale, y0+config.HeaderHeight*scale-1, tk.Label)
	}
}

func drawPDFRect(pdf *fpdf.Fpdf, rc compose.Rect, x0, y0, scale float64) {
	r, g, b := hexRGB(rc.Fill)
	pdf.SetFillColor(r, g, b)
	if rc.Opacity > 0 && rc.Opacity < 1 {
		pdf.SetAlpha(rc.Opacity, "Normal")
		defer pdf.SetAlpha(1, "Normal")
	}
	if rc.Radius > 0 {
		pdf.RoundedRect(x0+rc.X*scale, y0+rc.Y*scale, rc.W*scale, rc.H*scale,
			rc.Radius*scale, "1234", "F")
		return
	}
	pdf.Rect(x0+rc.X*scale, y0+rc.Y*scale, rc.W*scale, rc.H*scale, "F")
}

func drawPDFLine(pdf *fpdf.Fpdf, l compose.Line, x0, y0, scale float64) {
	r, g, b := hexRGB(l.Colour)
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(l.Width * scale)
	if l.Dashed {
		pdf.SetDashPattern([]float64{1, 1}, 0)
		defer pdf.SetDashPattern([]float64{}, 0)
	}
	pdf.Line(x0+l.X1*scale, y0+l.Y1*scale, x0+l.X2*scale, y0+l.Y2*scale)
}

func drawPDFLabel(pdf *fpdf.Fpdf, l compose.Label, x0, y0, scale float64) {
	r, g, b := hexRGB(l.Colour)
	pdf.SetTextColor(r, g, b)
	style := ""
	if l.Bold {
		style = "B"
	}
	pdf.SetFont("Arial", style, 7)
	pdf.Text(x0+l.X*scale, y0+(l.Y+3)*scale, l.Text)
}
