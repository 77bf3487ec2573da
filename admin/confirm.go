package admin

import "sync"

// DeleteConfirm tracks the two-step delete confirmation. A single
// armed id holds the whole state, so "at most one row armed at a time"
// is true by construction: arming a different row disarms the previous
// one.
type DeleteConfirm struct {
	mu      sync.Mutex
	armedID string
}

func NewDeleteConfirm() *DeleteConfirm {
	return &DeleteConfirm{}
}

// Arm marks the given row as awaiting confirmation, replacing any
// previously armed row.
func (d *DeleteConfirm) Arm(id string) {
	d.mu.Lock()
	d.armedID = id
	d.mu.Unlock()
}

// Confirm reports whether the given row is the armed one and, if so,
// consumes the confirmation. A confirm on an unarmed or different row
// is a no-op and returns false.
func (d *DeleteConfirm) Confirm(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == "" || d.armedID != id {
		return false
	}
	d.armedID = ""
	return true
}

// Armed returns the currently armed row id, empty when none.
func (d *DeleteConfirm) Armed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armedID
}

// Reset disarms any pending confirmation, used when the admin view is
// dismissed or navigated away from.
func (d *DeleteConfirm) Reset() {
	d.mu.Lock()
	d.armedID = ""
	d.mu.Unlock()
}
