/*
Package render draws Braille cells as images and printable documents.

Renderers consume a finished cell sequence and never look into the tables
that produced it. A blank cell is drawn without raised dots; inactive dot
positions are outlined so that the cell grid stays visible.
*/
package render

import "github.com/npillmayer/braille"

// Options hold the geometry of rendered cells.
//
// PNG geometry is given in pixels, PDF geometry in millimetres.
type Options struct {
	CellWidth     float64 // px
	CellHeight    float64 // px
	DotRadius     float64 // px
	Margin        float64 // px, around the row of cells
	Spacing       float64 // px, between cells
	CaptionHeight float64 // px, reserved above the cells if a caption is given
	CellsPerRow   int     // PNG cells per row before wrapping, 0 puts all cells in one row

	PDFCellStep   float64 // mm, horizontal distance of cells
	PDFLineHeight float64 // mm, vertical distance of cell rows
	PDFDotRadius  float64 // mm
	PDFDotSpacing float64 // mm, distance of dot columns and rows
	PDFMargin     float64 // mm, page margin

	// Mirror prepares cells for embossing from the back of the sheet: the
	// dots of every cell are mirrored and the order of the cells is reversed.
	Mirror bool
}

// DefaultOptions returns the standard geometry.
func DefaultOptions() Options {
	return Options{
		CellWidth:     40,
		CellHeight:    60,
		DotRadius:     6,
		Margin:        20,
		Spacing:       10,
		CaptionHeight: 40,
		CellsPerRow:   40,
		PDFCellStep:   15,
		PDFLineHeight: 30,
		PDFDotRadius:  2,
		PDFDotSpacing: 5,
		PDFMargin:     20,
	}
}

// dotPosition is the (column, row) of dot d, both counting from 0.
// Dots 1–3 form the left column top to bottom, 4–6 the right column.
func dotPosition(d int) (col, row int) {
	return (d - 1) / 3, (d - 1) % 3
}

func prepare(cells []braille.Cell, opts Options) []braille.Cell {
	if opts.Mirror {
		return braille.Mirror(cells)
	}
	return cells
}
