package qrpdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	codeSize      = 300 // rendered QR edge, in points
	captionOffset = 20  // gap between image bottom and caption
	captionHeight = 16
	verticalLift  = 50 // image sits above center to leave room for the caption
)

// Generator composes a PDF with one page per identifier: the QR code
// centered with the raw identifier as a caption beneath it.
type Generator struct {
	render func(text string) ([]byte, error)
}

func NewGenerator() *Generator {
	return &Generator{
		render: func(text string) ([]byte, error) {
			return qrcode.Encode(text, qrcode.Medium, codeSize)
		},
	}
}

// NewGeneratorWithRenderer substitutes the QR rendering step; used by tests.
func NewGeneratorWithRenderer(render func(string) ([]byte, error)) *Generator {
	return &Generator{render: render}
}

// Generate renders the identifiers into a single PDF in input order.
// Identical input yields identical page content; the raw bytes may differ
// between runs because of container metadata such as the creation date.
func (g *Generator) Generate(ids []string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 12)

	for i, id := range ids {
		png, err := g.render(id)
		if err != nil {
			return nil, fmt.Errorf("failed to render code for %s: %w", id, err)
		}

		pdf.AddPage()

		pageW, pageH := pdf.GetPageSize()
		x := (pageW - codeSize) / 2
		y := (pageH-codeSize)/2 - verticalLift

		imgName := fmt.Sprintf("code-%d", i)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
		pdf.ImageOptions(imgName, x, y, codeSize, codeSize, false, opts, 0, "")

		pdf.SetXY(0, y+codeSize+captionOffset)
		pdf.CellFormat(pageW, captionHeight, id, "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to compose document: %w", err)
	}

	return buf.Bytes(), nil
}
