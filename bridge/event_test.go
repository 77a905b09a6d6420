package bridge

import "testing"

func TestParseMessage(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    Event
		wantErr bool
	}{
		{
			name:    "joined",
			payload: `{"type":"callEvent","event":"joined","data":{"isHost":true}}`,
			want:    Event{Type: EventJoined},
		},
		{
			name:    "participant count",
			payload: `{"type":"callEvent","event":"participantCount","data":{"count":42}}`,
			want:    Event{Type: EventParticipantCount, Count: 42},
		},
		{
			name:    "error with message",
			payload: `{"type":"callEvent","event":"error","data":{"message":"room is full"}}`,
			want:    Event{Type: EventError, Text: "room is full"},
		},
		{
			name:    "error with legacy errorMsg",
			payload: `{"type":"callEvent","event":"error","data":{"errorMsg":"bad token"}}`,
			want:    Event{Type: EventError, Text: "bad token"},
		},
		{
			name:    "permission denied",
			payload: `{"type":"callEvent","event":"error","data":{"message":"no camera","code":"permission-denied"}}`,
			want:    Event{Type: EventError, Text: "no camera", PermissionDenied: true},
		},
		{
			name:    "error with opaque data",
			payload: `{"type":"callEvent","event":"error","data":"boom"}`,
			want:    Event{Type: EventError, Text: "unknown call error"},
		},
		{
			name:    "ended",
			payload: `{"type":"callEvent","event":"streamEnded","data":{}}`,
			want:    Event{Type: EventEnded},
		},
		{
			name:    "left",
			payload: `{"type":"callEvent","event":"left","data":{}}`,
			want:    Event{Type: EventLeft},
		},
		{
			name:    "camera toggled",
			payload: `{"type":"callEvent","event":"cameraToggled","data":{"isOn":false}}`,
			want:    Event{Type: EventCameraToggled, On: false},
		},
		{
			name:    "mic toggled",
			payload: `{"type":"callEvent","event":"micToggled","data":{"isOn":true}}`,
			want:    Event{Type: EventMicToggled, On: true},
		},
		{
			name:    "chat",
			payload: `{"type":"callEvent","event":"chat","data":{"sender":"Ana","text":"hola"}}`,
			want:    Event{Type: EventChat, Sender: "Ana", Text: "hola"},
		},
		{
			name:    "unrecognized event",
			payload: `{"type":"callEvent","event":"networkQuality","data":{"score":5}}`,
			wantErr: true,
		},
		{
			name:    "unexpected message type",
			payload: `{"type":"chatMessage","message":{}}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			payload: `{"type":"callEvent","event":`,
			wantErr: true,
		},
		{
			name:    "not even an object",
			payload: `42`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMessage([]byte(tc.payload))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got event %+v", got)
				}
				if got.Type != EventUnknown {
					t.Fatalf("failed parse should yield EventUnknown, got %v", got.Type)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMessage() failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseMessage() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestEventTypeString(t *testing.T) {
	if EventJoined.String() != "joined" || EventUnknown.String() != "unknown" {
		t.Error("EventType.String() mismatch")
	}
}
