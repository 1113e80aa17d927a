// Package report renders read-only projections of the catalog into
// page-oriented documents. The data is already validated by the time it
// arrives here.
package report

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"tienda/internal/product"
)

// Renderer turns the full product list into a document byte stream.
type Renderer interface {
	Render(products []product.Product) ([]byte, error)
}

// PDF renders an A4 table report: ID, Name, Description, Price.
type PDF struct{}

func (PDF) Render(products []product.Product) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Product Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{20, 45, 70, 35}
	headers := []string{"ID", "Name", "Description", "Price"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range products {
		pdf.CellFormat(widths[0], 7, strconv.FormatInt(p.ID, 10), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, p.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, p.Description, "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, p.Price.StringFixed(2), "B", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
