package bridge

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Widget is the embedded real-time call widget, seen from the host side of
// the message-passing boundary. Load opens the session, Events yields raw
// messages until the widget goes away, Send pushes a control message in.
type Widget interface {
	Load(ctx context.Context, cfg Config) error
	Events() <-chan []byte
	Send(message []byte) error
	Close() error
}

// callWidget drives the provider's event socket over a websocket. The room
// reference is the https room URL; the socket lives on the same host.
type callWidget struct {
	log    zerolog.Logger
	events chan []byte

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewCallWidget(log zerolog.Logger) Widget {
	return &callWidget{
		log:    log,
		events: make(chan []byte, 64),
	}
}

func (w *callWidget) Load(ctx context.Context, cfg Config) error {
	endpoint, err := socketURL(cfg)
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("connecting to call widget: %w", err)
	}

	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()

	go w.readPump(conn)
	return nil
}

func (w *callWidget) readPump(conn *websocket.Conn) {
	defer close(w.events)
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			w.log.Debug().Err(err).Msg("widget socket closed")
			return
		}
		w.events <- message
	}
}

func (w *callWidget) Events() <-chan []byte {
	return w.events
}

func (w *callWidget) Send(message []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return fmt.Errorf("widget is not loaded")
	}
	return w.conn.WriteMessage(websocket.TextMessage, message)
}

func (w *callWidget) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

// socketURL rewrites the room URL to its websocket endpoint and carries the
// join parameters as a query string.
func socketURL(cfg Config) (string, error) {
	u, err := url.Parse(cfg.RoomURL)
	if err != nil {
		return "", fmt.Errorf("invalid room reference: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss", "":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("invalid room reference scheme %q", u.Scheme)
	}

	q := u.Query()
	q.Set("streamId", cfg.StreamID)
	q.Set("role", string(cfg.Role))
	if cfg.Token != "" {
		q.Set("token", cfg.Token)
	}
	if cfg.DisplayName != "" {
		q.Set("name", cfg.DisplayName)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
