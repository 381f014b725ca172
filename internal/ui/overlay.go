package ui

import (
	"image"

	"go-dodge/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Overlay is the centred panel used for the start and game-over screens.
type Overlay struct {
	Title     string
	Button    *Button
	titleFace font.Face
}

func NewOverlay(title, buttonLabel string, titleFace, buttonFace font.Face) *Overlay {
	return &Overlay{
		Title:     title,
		Button:    NewButton(0, 0, buttonLabel, buttonFace),
		titleFace: titleFace,
	}
}

// Layout centres the panel on a screen of the given size. Call it before Draw and hit tests.
func (o *Overlay) Layout(width, height int) {
	cx, cy := width/2, height/2
	o.Button.Rect = image.Rect(
		cx-config.ButtonWidth/2, cy+config.ButtonOffsetY-config.ButtonHeight/2,
		cx+config.ButtonWidth/2, cy+config.ButtonOffsetY+config.ButtonHeight/2,
	)
}

// Clicked reports whether (x, y) hits the button.
func (o *Overlay) Clicked(x, y int) bool {
	return o.Button.Contains(x, y)
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := b.Dx()/2, b.Dy()/2

	px := float32(cx - config.PanelWidth/2)
	py := float32(cy - config.PanelHeight/2)
	vector.DrawFilledRect(screen, px, py, config.PanelWidth, config.PanelHeight, config.PanelColor, true)
	vector.StrokeRect(screen, px, py, config.PanelWidth, config.PanelHeight, 2, config.PanelStroke, true)

	bounds := text.BoundString(o.titleFace, o.Title)
	text.Draw(screen, o.Title, o.titleFace, cx-bounds.Dx()/2-bounds.Min.X, cy+config.TitleOffsetY, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	o.Button.Draw(screen, o.Button.Contains(mx, my))
}
