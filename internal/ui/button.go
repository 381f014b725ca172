// internal/ui/button.go
package ui

import (
	"image"

	"go-dodge/internal/config"
	"go-dodge/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a centred label.
type Button struct {
	Rect image.Rectangle
	Text string
	face font.Face
}

// NewButton creates a button centred on (cx, cy).
func NewButton(cx, cy int, label string, face font.Face) *Button {
	return &Button{
		Rect: image.Rect(cx-config.ButtonWidth/2, cy-config.ButtonHeight/2, cx+config.ButtonWidth/2, cy+config.ButtonHeight/2),
		Text: label,
		face: face,
	}
}

// Contains reports whether the point is inside the button
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button, highlighted when the cursor is over it.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg, stroke := config.ButtonColor, render.DarkenColor(config.PanelStroke)
	if hovered {
		bg, stroke = config.ButtonHover, config.PanelStroke
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, stroke, true)

	bounds := text.BoundString(b.face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.face, tx, ty, config.ButtonTextColor)
}
