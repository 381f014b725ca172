// internal/interfaces/game_context.go
package interfaces

import "go-dodge/internal/component"

// SessionContext is what the state system needs from the game to start a session.
type SessionContext interface {
	SpawnPlayer() *component.Player
}
