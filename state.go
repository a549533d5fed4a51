package vista

// State represents the current state of a Latch.
type State int32

const (
	// StateWaiting indicates the latch has not observed its target as
	// visible yet.
	StateWaiting State = iota

	// StateFired indicates the target was observed as visible and the
	// notification was delivered. This state is terminal.
	StateFired
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateFired:
		return "fired"
	default:
		return "unknown"
	}
}
