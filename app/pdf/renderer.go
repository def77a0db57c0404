package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Renderer converts the assembled report text into a paginated PDF with
// a title block, heading blocks, and body paragraphs.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var headingMarkers = []string{"🔷", "🔹", "✅"}

// Render produces the PDF bytes for one report.
func (r *Renderer) Render(content, dateStr string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	// Core fonts are Latin-1; translate what can be translated and let
	// the rest degrade instead of failing the run.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(31, 78, 121)
	doc.CellFormat(0, 10, tr(fmt.Sprintf("Daily Banking Digest - %s", dateStr)), "", 1, "C", false, 0, "")
	doc.Ln(6)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			doc.Ln(2)
			continue
		}

		if isHeading(line) {
			doc.SetFont("Helvetica", "B", 11)
			doc.SetTextColor(46, 89, 132)
		} else {
			doc.SetFont("Helvetica", "", 10)
			doc.SetTextColor(0, 0, 0)
		}

		doc.MultiCell(0, 5, tr(stripMarkers(line)), "", "L", false)
		doc.Ln(1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func isHeading(line string) bool {
	for _, marker := range headingMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// stripMarkers removes the emoji markers the generative pass uses as
// section cues; they have no Latin-1 representation.
func stripMarkers(line string) string {
	for _, marker := range headingMarkers {
		line = strings.ReplaceAll(line, marker, "")
	}
	return strings.TrimSpace(line)
}
