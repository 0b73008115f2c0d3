package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFExporter renders tabular exports as PDF documents. A nil *PDFExporter
// means PDF export is switched off; handlers answer 501 in that case.
type PDFExporter struct{}

// NewPDFExporter creates a PDFExporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render draws the header and rows as a simple table on landscape A4 pages
func (e *PDFExporter) Render(title string, header []string, rows [][]string) (*bytes.Buffer, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(header))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range header {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf, nil
}
