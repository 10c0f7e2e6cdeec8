package deployment

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// ProbeStream opens one WebSocket connection to wsURL and closes it with a
// normal closure frame. It verifies the advertised stream endpoint accepts
// handshakes; no audio is sent.
func ProbeStream(ctx context.Context, wsURL string, timeout time.Duration) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: timeout,
	}

	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket handshake with %s failed with status %d: %w", wsURL, resp.StatusCode, err)
		}
		return fmt.Errorf("websocket handshake with %s failed: %w", wsURL, err)
	}
	defer conn.Close()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("failed to close websocket %s: %w", wsURL, err)
	}
	return nil
}
