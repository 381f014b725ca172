// internal/event/types.go
package event

const (
	SessionStarted  EventType = "SessionStarted"  // Data: generation (int)
	SessionStopped  EventType = "SessionStopped"  // Data: final score (int)
	ObstacleSpawned EventType = "ObstacleSpawned" // Data: types.EntityID
	ObstacleRetired EventType = "ObstacleRetired" // Data: types.EntityID, left the dead zone unhit
	ScoreChanged    EventType = "ScoreChanged"    // Data: new score (int)
	Collision       EventType = "Collision"       // Data: types.EntityID of the obstacle that hit
	GameOver        EventType = "GameOver"        // Data: final score (int)
)
