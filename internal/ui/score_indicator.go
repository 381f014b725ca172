package ui

import (
	"fmt"

	"go-dodge/internal/config"
	"go-dodge/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator shows the running score. It only learns about changes through ScoreChanged events.
type ScoreIndicator struct {
	X, Y  int
	label string
	face  font.Face
}

func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, face: face, label: "Score: 0"}
}

func (i *ScoreIndicator) OnEvent(e event.Event) {
	if e.Type != event.ScoreChanged {
		return
	}
	if score, ok := e.Data.(int); ok {
		i.label = fmt.Sprintf("Score: %d", score)
	}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image) {
	ascent := i.face.Metrics().Ascent.Ceil()
	text.Draw(screen, i.label, i.face, i.X, i.Y+ascent, config.TextLightColor)
}
