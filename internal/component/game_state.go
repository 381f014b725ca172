package component

// Phase is the session state
type Phase int

const (
	Idle     Phase = iota // no session yet, or stopped
	Running               // consuming frames
	GameOver              // session ended, particles still drain
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
