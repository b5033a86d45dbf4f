package server

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestWatchNotifiesOnChange(t *testing.T) {
	ts, docPath := newTestServer(t, true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL)+"/watch?path="+url.QueryEscape(docPath), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	// Keep touching the file until the notification arrives; the server
	// needs a moment to install its watcher after the upgrade.
	writerDone := make(chan struct{})
	defer close(writerDone)
	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-writerDone:
				return
			case <-ticker.C:
				_ = os.WriteFile(docPath, []byte("# changed\n"), 0o644)
			}
		}
	}()

	msgType, payload, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, msgType)
	assert.Empty(t, payload)
}

func TestWatchMissingPathParam(t *testing.T) {
	ts, _ := newTestServer(t, true)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, wsURL(ts.URL)+"/watch", nil)
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, 400, resp.StatusCode)
	}
}

func TestWatchClientDisconnectEndsSubscription(t *testing.T) {
	ts, docPath := newTestServer(t, true)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts.URL)+"/watch?path="+url.QueryEscape(docPath), nil)
	require.NoError(t, err)

	// Closing from the client side must not disturb the server; a second
	// subscription still works.
	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	conn2, _, err := websocket.Dial(ctx, wsURL(ts.URL)+"/watch?path="+url.QueryEscape(docPath), nil)
	require.NoError(t, err)
	defer conn2.CloseNow()
}
