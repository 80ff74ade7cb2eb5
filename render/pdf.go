package render

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/npillmayer/braille"
)

// PDF writes an A4 document showing the source text and its cells.
// Rows of cells wrap at the right margin and continue on new pages.
func PDF(w io.Writer, cells []braille.Cell, text, title string, opts Options) error {
	cells = prepare(cells, opts)
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252 for the core fonts
	pdf.SetTitle(title, true)
	pdf.SetCreator("braille", false)
	pdf.SetCreationDate(time.Now())
	pdf.SetMargins(opts.PDFMargin, opts.PDFMargin, opts.PDFMargin)
	pdf.SetAutoPageBreak(true, opts.PDFMargin)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	textW := pageW - 2*opts.PDFMargin

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(textW, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(textW, 7, tr("Texto:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(textW, 6, tr(text), "", "L", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(textW, 7, tr("Representación Braille:"), "", 1, "L", false, 0, "")

	// cells are placed by hand, so automatic page breaks must not interfere
	pdf.SetAutoPageBreak(false, 0)
	left := opts.PDFMargin + opts.PDFDotRadius
	right := pageW - opts.PDFMargin - opts.PDFDotSpacing - opts.PDFDotRadius
	bottom := pageH - opts.PDFMargin - 2*opts.PDFDotSpacing - opts.PDFDotRadius
	x, y := left, pdf.GetY()+opts.PDFDotSpacing
	for _, c := range cells {
		if x > right {
			x, y = left, y+opts.PDFLineHeight
		}
		if y > bottom {
			pdf.AddPage()
			x, y = left, opts.PDFMargin+opts.PDFDotRadius
		}
		drawPDFCell(pdf, c, x, y, opts)
		x += opts.PDFCellStep
	}

	pdf.SetTextColor(96, 96, 96)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(opts.PDFMargin, pageH-opts.PDFMargin/2, fmt.Sprintf("Total de celdas: %d", len(cells)))
	return pdf.Output(w)
}

func drawPDFCell(pdf *fpdf.Fpdf, c braille.Cell, x, y float64, opts Options) {
	pdf.SetLineWidth(0.2)
	for d := 1; d <= 6; d++ {
		col, row := dotPosition(d)
		cx := x + float64(col)*opts.PDFDotSpacing
		cy := y + float64(row)*opts.PDFDotSpacing
		if c.Has(d) {
			pdf.SetFillColor(0, 0, 0)
			pdf.Circle(cx, cy, opts.PDFDotRadius, "F")
			continue
		}
		pdf.SetDrawColor(192, 192, 192)
		pdf.Circle(cx, cy, opts.PDFDotRadius, "D")
	}
}
