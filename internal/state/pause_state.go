// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-dodge/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes a running session: no frames are stepped until it resumes.
type PauseState struct {
	sm        *StateMachine
	playState *PlayState
}

func NewPauseState(sm *StateMachine, playState *PlayState) *PauseState {
	return &PauseState{sm: sm, playState: playState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.playState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 24}, false)

	face := s.playState.ctx.TitleFace
	label := "PAUSED"
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, (b.Dx()-bounds.Dx())/2-bounds.Min.X, b.Dy()/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
