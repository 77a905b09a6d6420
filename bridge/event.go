package bridge

import (
	"encoding/json"
	"fmt"
)

// The widget runs in an isolated context and reports back through opaque
// JSON messages shaped {"type":"callEvent","event":...,"data":...}.
// ParseMessage turns each one into a typed Event; anything unrecognized or
// malformed becomes EventUnknown so the host screen never crashes on it.

type EventType int

const (
	EventUnknown EventType = iota
	EventJoined
	EventParticipantCount
	EventError
	EventEnded
	EventLeft
	EventCameraToggled
	EventMicToggled
	EventChat
)

func (t EventType) String() string {
	switch t {
	case EventJoined:
		return "joined"
	case EventParticipantCount:
		return "participantCount"
	case EventError:
		return "error"
	case EventEnded:
		return "streamEnded"
	case EventLeft:
		return "left"
	case EventCameraToggled:
		return "cameraToggled"
	case EventMicToggled:
		return "micToggled"
	case EventChat:
		return "chat"
	default:
		return "unknown"
	}
}

type Event struct {
	Type EventType

	Count            int    // participantCount
	On               bool   // cameraToggled / micToggled
	Sender           string // chat
	Text             string // chat / error message
	PermissionDenied bool   // error
}

const messageType = "callEvent"

type rawMessage struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ParseMessage decodes one widget message. The returned error describes why
// an Event is EventUnknown; callers log it and drop the event.
func ParseMessage(payload []byte) (Event, error) {
	var raw rawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Event{}, fmt.Errorf("malformed widget message: %w", err)
	}
	if raw.Type != messageType {
		return Event{}, fmt.Errorf("unexpected message type %q", raw.Type)
	}

	switch raw.Event {
	case "joined":
		return Event{Type: EventJoined}, nil
	case "participantCount":
		var data struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return Event{}, fmt.Errorf("malformed participantCount data: %w", err)
		}
		return Event{Type: EventParticipantCount, Count: data.Count}, nil
	case "error":
		var data struct {
			Message  string `json:"message"`
			ErrorMsg string `json:"errorMsg"`
			Code     string `json:"code"`
		}
		// Error details are best-effort; an error event with opaque data is
		// still an error event.
		_ = json.Unmarshal(raw.Data, &data)
		text := data.Message
		if text == "" {
			text = data.ErrorMsg
		}
		if text == "" {
			text = "unknown call error"
		}
		return Event{
			Type:             EventError,
			Text:             text,
			PermissionDenied: data.Code == "permission-denied",
		}, nil
	case "streamEnded":
		return Event{Type: EventEnded}, nil
	case "left":
		return Event{Type: EventLeft}, nil
	case "cameraToggled", "micToggled":
		var data struct {
			IsOn bool `json:"isOn"`
		}
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return Event{}, fmt.Errorf("malformed toggle data: %w", err)
		}
		t := EventCameraToggled
		if raw.Event == "micToggled" {
			t = EventMicToggled
		}
		return Event{Type: t, On: data.IsOn}, nil
	case "chat":
		var data struct {
			Sender string `json:"sender"`
			Text   string `json:"text"`
		}
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return Event{}, fmt.Errorf("malformed chat data: %w", err)
		}
		return Event{Type: EventChat, Sender: data.Sender, Text: data.Text}, nil
	default:
		return Event{}, fmt.Errorf("unrecognized widget event %q", raw.Event)
	}
}
