// Package store provides the collection-change notification hub and
// the snapshot subscription that the UI layers consume. Subscribers
// never receive incremental patches: every change delivers the full
// collection contents, which is the contract the view state relies on
// to absorb adds, updates and deletes from any session.
package store

import "sync"

// Collection names used across the application.
const (
	CollectionProjects         = "projects"
	CollectionCustomCategories = "customCategories"
)

// Hub fans out change signals per collection. Signals carry no
// payload; subscribers re-list the collection on each one.
type Hub struct {
	mu   sync.Mutex
	hubs map[string]*collectionHub

	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		hubs:   map[string]*collectionHub{},
		stopCh: make(chan struct{}),
	}
}

// Notify signals every subscriber of the named collection. Delivery is
// non-blocking: a subscriber that already has a pending signal does
// not need another, since it re-lists the full collection anyway.
func (h *Hub) Notify(collection string) {
	h.hubFor(collection).broadcast()
}

// Stop closes the hub's stop channel, ending all snapshot feeds.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})
}

// Done reports hub shutdown to long-lived subscribers.
func (h *Hub) Done() <-chan struct{} {
	return h.stopCh
}

func (h *Hub) hubFor(collection string) *collectionHub {
	h.mu.Lock()
	ch := h.hubs[collection]
	if ch == nil {
		ch = newCollectionHub()
		h.hubs[collection] = ch
	}
	h.mu.Unlock()
	return ch
}

// Subscribe registers for change signals on one collection. The
// returned cancel func must be called when the subscribing view goes
// away; a leaked subscription keeps receiving signals forever.
func (h *Hub) Subscribe(collection string) (ch chan struct{}, cancel func()) {
	return h.hubFor(collection).subscribe()
}

type collectionHub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newCollectionHub() *collectionHub {
	return &collectionHub{subs: map[chan struct{}]struct{}{}}
}

func (h *collectionHub) subscribe() (ch chan struct{}, cancel func()) {
	ch = make(chan struct{}, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *collectionHub) broadcast() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}
