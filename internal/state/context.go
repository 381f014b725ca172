package state

import (
	"go-dodge/internal/app"
	"go-dodge/internal/config"
	"go-dodge/internal/event"
	"go-dodge/internal/ui"
	"go-dodge/pkg/render"

	"golang.org/x/image/font"
)

// Context is shared by every screen of the frontend.
type Context struct {
	Game       *app.Game
	Score      *ui.ScoreIndicator
	Input      *PointerInput
	HUDFace    font.Face
	TitleFace  font.Face
	ButtonFace font.Face
}

// NewContext loads fonts and hooks the HUD up to score events.
func NewContext(game *app.Game) (*Context, error) {
	hud, err := render.LoadFace(config.HUDFontSize)
	if err != nil {
		return nil, err
	}
	title, err := render.LoadFace(config.PanelFontSize)
	if err != nil {
		return nil, err
	}
	button, err := render.LoadFace(config.ButtonFontSize)
	if err != nil {
		return nil, err
	}

	score := ui.NewScoreIndicator(config.HUDOffsetX, config.HUDOffsetY, hud)
	game.Subscribe(event.ScoreChanged, score)

	return &Context{
		Game:       game,
		Score:      score,
		Input:      NewPointerInput(),
		HUDFace:    hud,
		TitleFace:  title,
		ButtonFace: button,
	}, nil
}
