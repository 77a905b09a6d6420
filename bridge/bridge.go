package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Config carries the stream metadata a playback session needs: the room
// reference and access token fetched from the backend, plus who is joining.
type Config struct {
	StreamID    string
	Role        Role
	RoomURL     string
	Token       string
	DisplayName string
}

// Handler receives the widget's lifecycle notifications as application
// callbacks. Nil callbacks are simply skipped.
type Handler struct {
	OnJoined           func()
	OnParticipantCount func(count int)
	OnError            func(err error)
	OnEnded            func()
	OnChat             func(sender, text string)
}

// SessionError is a fault surfaced by the call widget. Permission denial is
// terminal for host sessions and carries actionable wording.
type SessionError struct {
	Message          string
	PermissionDenied bool
}

func (e *SessionError) Error() string {
	if e.PermissionDenied {
		return "camera/microphone access denied: grant permissions and start again"
	}
	return e.Message
}

// Bridge connects one stream's metadata to one call widget and relays the
// widget's events back as Handler callbacks. A bridge drives a single
// session: to retry after a disconnect, fetch fresh metadata and build a
// new bridge.
type Bridge struct {
	log    zerolog.Logger
	widget Widget

	mu       sync.Mutex
	state    State
	cfg      Config
	handler  Handler
	cameraOn bool
	micOn    bool
}

func New(widget Widget, log zerolog.Logger) *Bridge {
	return &Bridge{log: log, widget: widget, state: StateIdle}
}

func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// CameraOn and MicOn mirror the widget's last confirmed toggle state.
func (b *Bridge) CameraOn() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cameraOn
}

func (b *Bridge) MicOn() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.micOn
}

// Initialize validates the metadata, loads the widget and starts relaying
// its events. Validation failures and load failures move the session
// straight to Disconnected and report through OnError exactly once, without
// any widget load in the validation case.
func (b *Bridge) Initialize(ctx context.Context, cfg Config, h Handler) error {
	b.mu.Lock()
	if b.state != StateIdle {
		b.mu.Unlock()
		return fmt.Errorf("session already %s, build a new bridge to rejoin", b.state)
	}
	b.state = StateInitializing
	b.cfg = cfg
	b.handler = h
	// Hosts start capturing; viewers request no local media.
	b.cameraOn = cfg.Role == RoleHost
	b.micOn = cfg.Role == RoleHost
	b.mu.Unlock()

	if cfg.RoomURL == "" {
		return b.failInit(&SessionError{Message: "stream has no room reference"})
	}
	if cfg.Role == RoleHost && cfg.Token == "" {
		return b.failInit(&SessionError{Message: "hosting requires a stream access token"})
	}

	if err := b.widget.Load(ctx, cfg); err != nil {
		return b.failInit(&SessionError{Message: err.Error()})
	}

	go b.relay()
	return nil
}

func (b *Bridge) failInit(err *SessionError) error {
	b.mu.Lock()
	b.state = StateDisconnected
	h := b.handler
	b.mu.Unlock()
	if h.OnError != nil {
		h.OnError(err)
	}
	return err
}

// relay is the bridge's read loop: parse, dispatch, drop what it cannot
// parse. It exits when the widget's event channel closes.
func (b *Bridge) relay() {
	for message := range b.widget.Events() {
		event, err := ParseMessage(message)
		if err != nil {
			b.log.Warn().Err(err).Msg("dropping widget message")
			continue
		}
		b.dispatch(event)
	}

	b.mu.Lock()
	lost := b.state == StateConnected || b.state == StateInitializing
	b.state = StateDisconnected
	h := b.handler
	b.mu.Unlock()
	if lost && h.OnError != nil {
		h.OnError(&SessionError{Message: "connection to the call widget was lost"})
	}
}

func (b *Bridge) dispatch(event Event) {
	b.mu.Lock()
	h := b.handler
	initializing := b.state == StateInitializing

	switch event.Type {
	case EventJoined:
		b.state = StateConnected
	case EventError:
		// A fault before the join completes, or a permission denial at any
		// point, kills the session; mid-session faults are the caller's
		// retry-or-abort decision.
		if initializing || event.PermissionDenied {
			b.state = StateDisconnected
		}
	case EventEnded, EventLeft:
		b.state = StateDisconnected
	case EventCameraToggled:
		b.cameraOn = event.On
	case EventMicToggled:
		b.micOn = event.On
	}
	terminal := b.state == StateDisconnected
	b.mu.Unlock()

	switch event.Type {
	case EventJoined:
		if h.OnJoined != nil {
			h.OnJoined()
		}
	case EventParticipantCount:
		if h.OnParticipantCount != nil {
			h.OnParticipantCount(event.Count)
		}
	case EventError:
		if h.OnError != nil {
			h.OnError(&SessionError{Message: event.Text, PermissionDenied: event.PermissionDenied})
		}
	case EventEnded:
		if h.OnEnded != nil {
			h.OnEnded()
		}
	case EventChat:
		if h.OnChat != nil {
			h.OnChat(event.Sender, event.Text)
		}
	}

	if terminal {
		if err := b.widget.Close(); err != nil {
			b.log.Debug().Err(err).Msg("widget close")
		}
	}
}

type command struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	On     *bool  `json:"on,omitempty"`
	Text   string `json:"text,omitempty"`
}

func (b *Bridge) send(cmd command) error {
	cmd.Type = "command"
	payload, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	return b.widget.Send(payload)
}

func (b *Bridge) hostControl(cmd command) error {
	b.mu.Lock()
	role, state := b.cfg.Role, b.state
	b.mu.Unlock()
	if role != RoleHost {
		return fmt.Errorf("only the host controls the stream")
	}
	if state != StateConnected {
		return fmt.Errorf("session is %s", state)
	}
	return b.send(cmd)
}

func (b *Bridge) SetCamera(on bool) error {
	return b.hostControl(command{Action: "toggle-camera", On: &on})
}

func (b *Bridge) SetMicrophone(on bool) error {
	return b.hostControl(command{Action: "toggle-mic", On: &on})
}

func (b *Bridge) SwitchCamera() error {
	return b.hostControl(command{Action: "switch-camera"})
}

func (b *Bridge) SendChat(text string) error {
	b.mu.Lock()
	state := b.state
	b.mu.Unlock()
	if state != StateConnected {
		return fmt.Errorf("session is %s", state)
	}
	return b.send(command{Action: "chat", Text: text})
}

// EndStream is the host's local termination. It does not mark the stream
// ended on the backend; callers pair it with the resource client's
// end-stream call.
func (b *Bridge) EndStream() error {
	if err := b.hostControl(command{Action: "end-stream"}); err != nil {
		return err
	}
	return b.Leave()
}

// Leave closes the local session without touching backend state.
func (b *Bridge) Leave() error {
	b.mu.Lock()
	b.state = StateDisconnected
	b.mu.Unlock()
	return b.widget.Close()
}
