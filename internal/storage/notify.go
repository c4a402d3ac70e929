package storage

import (
	"sync"

	"github.com/google/uuid"
)

// ChangeKind identifies which collection changed.
type ChangeKind string

const (
	ChangeWorkouts ChangeKind = "workoutSessions"
	ChangeYogaLogs ChangeKind = "yogaSessionLogs"
)

// Change is delivered to watchers after a write lands.
type Change struct {
	Kind   ChangeKind `json:"kind"`
	UserID int64      `json:"-"`
}

// Hub fans writes out to watch subscribers. Each subscriber has a buffered
// channel; a subscriber that cannot keep up drops notifications rather than
// blocking writers, so watchers must treat a notification as "re-fetch", not
// as a delta.
type Hub struct {
	mu   sync.Mutex
	subs map[uuid.UUID]subscriber
}

type subscriber struct {
	userID int64
	ch     chan Change
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]subscriber)}
}

// Subscribe registers a watcher for one user's changes. The returned cancel
// func removes the subscription and closes the channel.
func (h *Hub) Subscribe(userID int64) (<-chan Change, func()) {
	id := uuid.New()
	ch := make(chan Change, 8)

	h.mu.Lock()
	h.subs[id] = subscriber{userID: userID, ch: ch}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		sub, ok := h.subs[id]
		if ok {
			delete(h.subs, id)
		}
		h.mu.Unlock()
		if ok {
			close(sub.ch)
		}
	}
	return ch, cancel
}

// Publish notifies every watcher of the given user.
func (h *Hub) Publish(userID int64, kind ChangeKind) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		if sub.userID != userID {
			continue
		}
		select {
		case sub.ch <- Change{Kind: kind, UserID: userID}:
		default:
		}
	}
}
