package app

// LoopState is the state of the sample/redraw loop
type LoopState int

const (
	StateWaitingForSample LoopState = iota
	StateSampleReceived
	StateRedraw
	StateInputEnded
)

// String returns a human-readable representation of the loop state
func (s LoopState) String() string {
	switch s {
	case StateWaitingForSample:
		return "WaitingForSample"
	case StateSampleReceived:
		return "SampleReceived"
	case StateRedraw:
		return "Redraw"
	case StateInputEnded:
		return "InputEnded"
	default:
		return "Unknown"
	}
}
