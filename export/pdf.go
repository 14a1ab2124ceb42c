// Package export renders merged shopping-list rows into a downloadable PDF.
// The aggregation core only supplies ordered summary rows; everything visual
// lives here.
package export

import (
	"bytes"
	"strconv"

	"recipehub/entity"

	"github.com/jung-kurt/gofpdf"
)

// Column headers and title, fixed literals of the document contract.
const (
	docTitle     = "Список покупок"
	columnName   = "Ингредиент"
	columnUnit   = "Система измерения"
	columnAmount = "Количество"
)

// Renderer turns summary rows into a binary document.
type Renderer interface {
	Render(rows []entity.SummaryRow) ([]byte, error)
}

// PDFRenderer renders an A4 table with a title and a fixed header row.
// fontDir must hold the cp1251 code-page map used to write the Cyrillic
// header with the built-in fonts.
type PDFRenderer struct {
	fontDir string
}

// NewPDFRenderer creates and returns a new PDFRenderer.
func NewPDFRenderer(fontDir string) *PDFRenderer {
	return &PDFRenderer{fontDir: fontDir}
}

// Render writes one header row and one body row per summary entry, in the
// order given. Row order is the aggregator's responsibility.
func (r *PDFRenderer) Render(rows []entity.SummaryRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", r.fontDir)
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(docTitle), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	colWidths := [3]float64{80, 60, 40}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(200, 200, 200)
	for i, header := range [3]string{columnName, columnUnit, columnAmount} {
		pdf.CellFormat(colWidths[i], 10, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetFillColor(245, 245, 220)
	for _, row := range rows {
		pdf.CellFormat(colWidths[0], 8, tr(row.Name), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[1], 8, tr(row.MeasurementUnit), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[2], 8, strconv.Itoa(row.Amount), "1", 0, "C", true, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
