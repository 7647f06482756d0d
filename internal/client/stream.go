package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/limbo/fittrack/pkg/entity"
)

// Stream is a live subscription to the daily-record events of one phone number.
type Stream struct {
	conn *websocket.Conn
}

// DialStream opens the websocket at /api/ws/{phone} using the backend's token.
func (b *Backend) DialStream(ctx context.Context, phone string) (*Stream, error) {
	wsURL, err := websocketURL(b.baseURL + "/api/ws/" + url.PathEscape(phone))
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	if token := b.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "websocket handshake failed"}
		}
		return nil, errors.New("dialing stream error: " + err.Error())
	}
	return &Stream{conn: conn}, nil
}

// Next blocks until the next event arrives or the connection fails.
func (s *Stream) Next() (*entity.RecordEvent, error) {
	_, msg, err := s.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	var ev entity.RecordEvent
	if err = sonic.ConfigDefault.Unmarshal(msg, &ev); err != nil {
		return nil, errors.New("decoding stream event error: " + err.Error())
	}
	return &ev, nil
}

func (s *Stream) Close() error {
	return s.conn.Close()
}

func websocketURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.New("parsing stream url error: " + err.Error())
	}
	switch strings.ToLower(u.Scheme) {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.String(), nil
}
