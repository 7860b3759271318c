package websocket

import (
	"sync"
	"time"

	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/models"
)

const (
	defaultQueueSize = 16
	writeTimeout     = 10 * time.Second
)

// Writer is the outbound side of a subscriber connection.
// *websocket.Conn satisfies it.
type Writer interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Handle is one subscriber connection registered in the hub
type Handle struct {
	userID string
	w      Writer
	send   chan models.UpdateEvent
	done   chan struct{}
	once   sync.Once
}

// UserID returns the owner of the handle
func (h *Handle) UserID() string { return h.userID }

// Done is closed once the handle has been removed from the hub
func (h *Handle) Done() <-chan struct{} { return h.done }

func (h *Handle) stop() bool {
	stopped := false
	h.once.Do(func() {
		close(h.done)
		stopped = true
	})
	return stopped
}

// Hub maps user ids to their live subscriber handles. Delivery to one
// handle never blocks delivery to another.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]map[*Handle]struct{}
	queueSize int
}

// NewHub creates a hub whose handles buffer queueSize pending events
func NewHub(queueSize int) *Hub {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Hub{
		clients:   make(map[string]map[*Handle]struct{}),
		queueSize: queueSize,
	}
}

// Subscribe registers w for userID and starts its writer goroutine
func (hub *Hub) Subscribe(userID string, w Writer) *Handle {
	h := &Handle{
		userID: userID,
		w:      w,
		send:   make(chan models.UpdateEvent, hub.queueSize),
		done:   make(chan struct{}),
	}

	hub.mu.Lock()
	if hub.clients[userID] == nil {
		hub.clients[userID] = make(map[*Handle]struct{})
	}
	hub.clients[userID][h] = struct{}{}
	hub.mu.Unlock()
	metrics.Subscribers.Inc()

	go hub.writeLoop(h)

	return h
}

// Unsubscribe removes the handle. Removing an unknown or already removed
// handle is a no-op.
func (hub *Hub) Unsubscribe(h *Handle) {
	if h == nil {
		return
	}
	hub.mu.Lock()
	if set, ok := hub.clients[h.userID]; ok {
		delete(set, h)
		if len(set) == 0 {
			delete(hub.clients, h.userID)
		}
	}
	hub.mu.Unlock()

	if h.stop() {
		metrics.Subscribers.Dec()
	}
}

// Notify enqueues event on every handle of every listed user. Handles whose
// queue is full or closed are removed. Returns the number of handles the
// event was queued on.
func (hub *Hub) Notify(userIDs []string, event models.UpdateEvent) int {
	var dead []*Handle
	delivered := 0
	seen := make(map[string]struct{}, len(userIDs))

	hub.mu.RLock()
	for _, uid := range userIDs {
		if _, dup := seen[uid]; dup {
			continue
		}
		seen[uid] = struct{}{}

		for h := range hub.clients[uid] {
			select {
			case <-h.done:
				dead = append(dead, h)
				continue
			default:
			}
			select {
			case h.send <- event:
				delivered++
			default:
				dead = append(dead, h)
			}
		}
	}
	hub.mu.RUnlock()

	for _, h := range dead {
		logger.Warn("Dropping slow or closed subscriber", logger.String("user_id", h.userID))
		hub.Unsubscribe(h)
		_ = h.w.Close()
	}

	metrics.FanoutDelivered.Add(float64(delivered))
	metrics.FanoutDropped.Add(float64(len(dead)))
	return delivered
}

// Count returns the number of live handles for userID
func (hub *Hub) Count(userID string) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients[userID])
}

func (hub *Hub) writeLoop(h *Handle) {
	for {
		select {
		case <-h.done:
			return
		case ev := <-h.send:
			_ = h.w.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := h.w.WriteJSON(ev); err != nil {
				logger.Debug("Subscriber write failed",
					logger.String("user_id", h.userID),
					logger.Err(err))
				hub.Unsubscribe(h)
				_ = h.w.Close()
				return
			}
		}
	}
}
