package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/coder/websocket"
	"github.com/fsnotify/fsnotify"
)

// Delay before re-adding a watch after a rename event, giving editors that
// save via rename-replace time to recreate the file.
const rewatchDelay = 100 * time.Millisecond

// handleWatch upgrades the connection to a websocket and streams one empty
// message per filesystem change event on the watched file. Each connection
// owns its own watcher; closing the socket ends the subscription and nothing
// else.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	docPath := r.URL.Query().Get("path")
	if docPath == "" {
		http.Error(w, "missing path query parameter", http.StatusBadRequest)
		return
	}
	abs, err := filepath.Abs(docPath)
	if err != nil {
		http.Error(w, "bad path", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// The previewer binds to localhost-style addresses and pages are
		// served same-origin, so cross-origin checks stay off.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.CloseNow()

	slog.Info("watching", "path", abs)
	if err := watchFile(r.Context(), conn, abs); err != nil {
		slog.Debug("watch ended", "path", abs, "err", err)
		return
	}
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

// watchFile forwards filesystem events on path to the client until the
// client goes away, the request is cancelled, or a send fails.
func watchFile(ctx context.Context, conn *websocket.Conn, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	// The client never sends payloads; CloseRead keeps the read side
	// drained and cancels the context when the client goes away.
	ctx = conn.CloseRead(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			slog.Debug("file changed", "path", path, "op", event.Op.String())
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				// Some editors (vim, IntelliJ) rename-replace files on
				// save, which drops the watch on the old inode.
				go rewatch(watcher, path)
			}
			if err := conn.Write(ctx, websocket.MessageText, nil); err != nil {
				return fmt.Errorf("notify client: %w", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "path", path, "err", err)
		}
	}
}

func rewatch(watcher *fsnotify.Watcher, path string) {
	time.Sleep(rewatchDelay)
	if err := watcher.Add(path); err != nil {
		slog.Warn("re-watch failed", "path", path, "err", err)
	}
}
