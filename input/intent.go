package input

// IntentType discriminates session-level actions decoded from keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // p, Space
	IntentRestart    // r
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentRestart:
		return "restart"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}
