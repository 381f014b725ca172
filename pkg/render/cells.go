package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	CellWidth  = 8.0  // viewport units per terminal column
	CellHeight = 16.0 // viewport units per terminal row, cells are about twice as tall as wide
)

// Cells rasterizes draw requests into terminal cells.
type Cells struct {
	Screen     tcell.Screen
	Background tcell.Color
}

func NewCells(screen tcell.Screen) *Cells {
	return &Cells{Screen: screen, Background: tcell.ColorBlack}
}

// ViewportSize is the viewport a cols x rows terminal stands for.
func ViewportSize(cols, rows int) (int, int) {
	return int(float64(cols) * CellWidth), int(float64(rows) * CellHeight)
}

// CellCenter maps a terminal cell back into viewport coordinates.
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// DrawCircle fills every cell whose centre lies inside the circle. Circles smaller
// than a cell still mark the cell they sit in.
func (c *Cells) DrawCircle(req DrawRequest) {
	if req.Alpha <= 0 {
		return
	}
	cols, rows := c.Screen.Size()
	rgba := WithAlpha(req.Color, req.Alpha)
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))).
		Background(c.Background)

	minCol := int(math.Floor((req.X - req.Radius) / CellWidth))
	maxCol := int(math.Floor((req.X + req.Radius) / CellWidth))
	minRow := int(math.Floor((req.Y - req.Radius) / CellHeight))
	maxRow := int(math.Floor((req.Y + req.Radius) / CellHeight))

	drawn := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if col < 0 || row < 0 || col >= cols || row >= rows {
				continue
			}
			cx, cy := CellCenter(col, row)
			if math.Hypot(cx-req.X, cy-req.Y) <= req.Radius {
				c.Screen.SetContent(col, row, '█', nil, style)
				drawn = true
			}
		}
	}
	if drawn {
		return
	}

	col := int(math.Floor(req.X / CellWidth))
	row := int(math.Floor(req.Y / CellHeight))
	if col >= 0 && row >= 0 && col < cols && row < rows {
		c.Screen.SetContent(col, row, '•', nil, style)
	}
}

// Text writes s starting at (col, row), clipped to the screen.
func (c *Cells) Text(col, row int, s string, fg tcell.Color) {
	cols, rows := c.Screen.Size()
	if row < 0 || row >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(c.Background)
	for _, r := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			c.Screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}
