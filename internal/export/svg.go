// Package export renders a composed scene to static documents. The TUI
// rasterizes the same scene at cell resolution; these backends keep the
// float pixel geometry.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/theme"
)

// WriteSVG emits the scene as an SVG document: a header strip with the
// tick labels, then every primitive in its paint order.
func WriteSVG(w io.Writer, s compose.Scene, th theme.Config) error {
	var buf bytes.Buffer

	header := config.HeaderHeight
	totalH := s.Height + header

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		s.Width, totalH, s.Width, totalH)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		s.Width, totalH, th.CanvasBackground)

	writeHeader(&buf, s, th)

	fmt.Fprintf(&buf, `  <g transform="translate(0 %.0f)">`+"\n", header)
	for _, p := range s.Prims {
		switch v := p.(type) {
		case compose.Rect:
			writeRect(&buf, v)
		case compose.Line:
			writeLine(&buf, v)
		case compose.Label:
			writeLabel(&buf, v)
		}
	}
	fmt.Fprintf(&buf, "  </g>\n</svg>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// SaveSVG writes the scene to path.
func SaveSVG(path string, s compose.Scene, th theme.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()
	return WriteSVG(f, s, th)
}

func writeHeader(buf *bytes.Buffer, s compose.Scene, th theme.Config) {
	for _, tk := range s.MonthTicks {
		if tk.Label == "" {
			continue
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="16" font-family="sans-serif" font-size="12" font-weight="bold" fill="%s">%s</text>`+"\n",
			tk.X+4, th.HeaderForeground, escape(tk.Label))
	}
	for _, tk := range s.SubTicks {
		if tk.Label == "" {
			continue
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.0f" font-family="sans-serif" font-size="10" fill="%s">%s</text>`+"\n",
			tk.X+2, config.HeaderHeight-8, th.SubHeaderForeground, escape(tk.Label))
	}
}

func writeRect(buf *bytes.Buffer, r compose.Rect) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"`,
		r.X, r.Y, r.W, r.H, r.Fill)
	if r.Opacity > 0 && r.Opacity < 1 {
		fmt.Fprintf(buf, ` fill-opacity="%.2f"`, r.Opacity)
	}
	if r.Radius > 0 {
		fmt.Fprintf(buf, ` rx="%.1f"`, r.Radius)
	}
	fmt.Fprintf(buf, "/>\n")
}

func writeLine(buf *bytes.Buffer, l compose.Line) {
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"`,
		l.X1, l.Y1, l.X2, l.Y2, l.Colour, l.Width)
	if l.Dashed {
		fmt.Fprintf(buf, ` stroke-dasharray="4 3"`)
	}
	if l.Glow {
		fmt.Fprintf(buf, ` opacity="0.9"`)
	}
	fmt.Fprintf(buf, "/>\n")
}

func writeLabel(buf *bytes.Buffer, l compose.Label) {
	weight := ""
	if l.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11"%s fill="%s">%s</text>`+"\n",
		l.X, l.Y+4, weight, l.Colour, escape(l.Text))
}

func escape(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// hexRGB converts a hex colour to 0..255 channels. Unparseable input
// maps to mid grey rather than failing the export.
func hexRGB(hex string) (int, int, int) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 128, 128, 128
	}
	return int(c.R * 255), int(c.G * 255), int(c.B * 255)
}
