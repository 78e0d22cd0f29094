// Package listpdf renders an ordered to-do list as a one-column PDF.
package listpdf

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "DejaVuSansCondensed"
	lineHeight = 7.0
)

// DejaVu covers Latin, Cyrillic and Greek, so labels print as typed.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	fontItalic []byte
)

// Document is what gets printed.
type Document struct {
	Title     string
	Subtitle  string
	Items     []string
	CreatedAt time.Time
}

// Renderer turns a Document into PDF bytes.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

type renderer struct {
	pageSize string
}

// New returns a Renderer producing portrait pages of the given size ("A4", "Letter").
func New(pageSize string) Renderer {
	if pageSize == "" {
		pageSize = "A4"
	}
	return renderer{pageSize: pageSize}
}

func (r renderer) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", r.pageSize, "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", fontRegular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fontBold)
	pdf.AddUTF8FontFromBytes(fontFamily, "I", fontItalic)

	pdf.SetTitle(doc.Title, true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "L", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont(fontFamily, "I", 10)
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 12)
	if len(doc.Items) == 0 {
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, lineHeight, "No tasks.", "", 1, "L", false, 0, "")
	}
	for i, item := range doc.Items {
		pdf.MultiCell(0, lineHeight, fmt.Sprintf("%d. %s", i+1, item), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("listpdf: %w", err)
	}
	return buf.Bytes(), nil
}
