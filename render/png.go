package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/npillmayer/braille"
)

// PNG draws cells in rows of opts.CellsPerRow and writes the image as PNG.
// If caption is not empty, it is printed above the cells.
func PNG(w io.Writer, cells []braille.Cell, caption string, opts Options) error {
	cells = prepare(cells, opts)
	cols, rows := grid(len(cells), opts.CellsPerRow)
	width := 2*opts.Margin + float64(cols)*opts.CellWidth + float64(max(cols-1, 0))*opts.Spacing
	height := 2*opts.Margin + float64(rows)*opts.CellHeight + float64(rows-1)*opts.Spacing
	top := opts.Margin
	if caption != "" {
		height += opts.CaptionHeight
		top += opts.CaptionHeight
	}
	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if caption != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(caption, width/2, opts.Margin+opts.CaptionHeight/2, 0.5, 0.5)
	}
	dc.SetLineWidth(1)
	for i, c := range cells {
		x := opts.Margin + float64(i%cols)*(opts.CellWidth+opts.Spacing)
		y := top + float64(i/cols)*(opts.CellHeight+opts.Spacing)
		drawCell(dc, c, x, y, opts)
	}
	return dc.EncodePNG(w)
}

// grid returns the number of columns and rows for n cells. There is always
// at least one row, so that an empty image keeps the height of a cell.
func grid(n, perRow int) (cols, rows int) {
	if perRow <= 0 || n <= perRow {
		return n, 1
	}
	return perRow, (n + perRow - 1) / perRow
}

func drawCell(dc *gg.Context, c braille.Cell, x, y float64, opts Options) {
	for d := 1; d <= 6; d++ {
		col, row := dotPosition(d)
		cx := x + opts.CellWidth/3 + float64(col)*opts.CellWidth/3
		cy := y + opts.CellHeight/4 + float64(row)*opts.CellHeight/4
		dc.DrawCircle(cx, cy, opts.DotRadius)
		if c.Has(d) {
			dc.SetRGB(0, 0, 0)
			dc.Fill()
			continue
		}
		dc.SetRGB(1, 1, 1)
		dc.FillPreserve()
		dc.SetRGB(0.75, 0.75, 0.75)
		dc.Stroke()
	}
}
