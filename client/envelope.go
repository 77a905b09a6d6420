package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backend's response shapes were never stable: the same logical
// operation may answer with the bare resource, {success, <key>: ...} or
// {message, data: ...}. These adapters normalize every answer into the
// canonical struct right after the call returns, so nothing downstream
// branches on shape.

// unwrapObject decodes a single resource, looking first under the given
// envelope keys (then "data"), falling back to the bare object.
func unwrapObject(body []byte, out any, keys ...string) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty response body")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	for _, key := range append(keys, "data") {
		if raw, ok := fields[key]; ok && !isNull(raw) {
			return json.Unmarshal(raw, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

// unwrapList decodes a resource collection: either a bare array or an
// envelope keying it. A wrapper with none of the keys means an empty set.
func unwrapList(body []byte, out any, keys ...string) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	for _, key := range append(keys, "data") {
		if raw, ok := fields[key]; ok && !isNull(raw) {
			return json.Unmarshal(raw, out)
		}
	}
	return nil
}

// errorMessage digs the human-readable message out of an error body.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
