package bridge

// State is the client-observed playback session state. It is not
// authoritative: the widget and the backend decide what actually happens,
// the bridge only mirrors it.
//
// Idle -> Initializing -> Connected -> Disconnected, with the shortcut
// Initializing -> Disconnected when setup fails. There is no automatic
// reconnect; a caller that wants back in re-fetches metadata and
// re-initializes.
type State int

const (
	StateIdle State = iota
	StateInitializing
	StateConnected
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Role decides whether local capture is requested from the widget.
type Role string

const (
	RoleHost   Role = "host"
	RoleViewer Role = "viewer"
)
