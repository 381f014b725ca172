// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TicksPerSec  = 60

	// Player
	PlayerRadius   = 15.0
	PlayerEasing   = 0.15 // fraction of the remaining distance covered per frame
	KeyboardNudge  = 30.0
	PlayerGlowBlur = 15.0

	// Obstacles
	ObstacleMinRadius    = 10.0
	ObstacleRadiusSpread = 20.0 // radius in [min, min+spread)
	ObstacleBaseSpeed    = 2.0
	ObstacleSpeedDivisor = 100.0 // +1 speed per 100 score
	ObstacleSaturation   = 0.7
	ObstacleLightness    = 0.6
	ObstacleGlowBlur     = 10.0
	DespawnMargin        = 100.0 // dead zone outside the viewport before retirement

	// Spawn rate in frames between spawns: max(SpawnRateFloor, SpawnRateBase - score/SpawnRateScoreStep)
	SpawnRateBase      = 60
	SpawnRateFloor     = 10
	SpawnRateScoreStep = 10

	ScorePerDodge = 10

	// Particles
	ParticleCount     = 20
	ParticleMaxRadius = 3.0
	ParticleSpread    = 8.0 // velocity per axis in [-spread/2, spread/2)
	ParticleFadeStep  = 0.02
	ParticleMinAlpha  = 1e-9 // alpha at or below this counts as faded

	// Frame fade applied instead of a full clear, leaves motion trails
	TrailAlpha = 0.2

	// UI
	HUDOffsetX      = 20
	HUDOffsetY      = 16
	HUDFontSize     = 22.0
	PanelWidth      = 420
	PanelHeight     = 220
	PanelFontSize   = 30.0
	ButtonWidth     = 180
	ButtonHeight    = 48
	ButtonFontSize  = 20.0
	ButtonOffsetY   = 50
	TitleOffsetY    = -50
)

var (
	BackgroundColor = color.RGBA{5, 5, 5, 255}
	PlayerColor     = color.RGBA{0, 255, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PanelColor      = color.RGBA{15, 15, 25, 220}
	PanelStroke     = color.RGBA{0, 255, 255, 200}
	ButtonColor     = color.RGBA{0, 160, 170, 255}
	ButtonHover     = color.RGBA{0, 210, 220, 255}
	ButtonTextColor = color.RGBA{5, 5, 5, 255}
)
