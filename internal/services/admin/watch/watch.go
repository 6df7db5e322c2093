// Package watch fans storage table changes out to live dashboard sockets.
package watch

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"
)

const subscriberBuffer = 16

// Event is one table-change notification pushed to subscribers.
type Event struct {
	Type  string `json:"type"`
	Table string `json:"table"`
	At    string `json:"at"`
}

// Hub tracks socket subscribers and broadcasts table changes to them.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Notify broadcasts a change on the named table. Slow subscribers drop
// events instead of blocking the writer.
func (h *Hub) Notify(table string) {
	event := Event{
		Type:  "change",
		Table: table,
		At:    time.Now().UTC().Format(time.RFC3339),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for subscriber := range h.subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
}

// Subscribe registers a new event channel.
func (h *Hub) Subscribe() chan Event {
	events := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[events] = struct{}{}
	h.mu.Unlock()
	return events
}

// Unsubscribe removes a channel registered by Subscribe.
func (h *Hub) Unsubscribe(events chan Event) {
	h.mu.Lock()
	delete(h.subscribers, events)
	h.mu.Unlock()
}

// SubscriberCount reports the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Handler serves the change-feed WebSocket endpoint.
func (h *Hub) Handler() http.Handler {
	wsHandler := websocket.Handler(func(conn *websocket.Conn) {
		h.serveConn(conn)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wsHandler.ServeHTTP(w, r)
	})
}

func (h *Hub) serveConn(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	events := h.Subscribe()
	defer h.Unsubscribe(events)

	// Drain the read side so closed peers are noticed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		decoder := json.NewDecoder(conn)
		for {
			var discard json.RawMessage
			if err := decoder.Decode(&discard); err != nil {
				if err != io.EOF {
					log.Printf("watch: read socket: %v", err)
				}
				return
			}
		}
	}()

	encoder := json.NewEncoder(conn)
	for {
		select {
		case event := <-events:
			if err := encoder.Encode(event); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
