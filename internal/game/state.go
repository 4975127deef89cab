// Package game provides the main game loop and session state.
package game

// State represents the current run state.
type State int

const (
	// StateRunning is the normal state: the loop keeps rendering and polling.
	StateRunning State = iota
	// StateTerminated is entered on quit; the loop exits.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
