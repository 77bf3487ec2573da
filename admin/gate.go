// Package admin implements the passkey-gated mutation flow: the gate
// itself, project create/update/delete, custom category management and
// the two-step delete confirmation.
package admin

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Intent names the single admin action a successful passkey check
// unlocks. The gate never unlocks more than one at a time.
type Intent string

const (
	IntentAdd  Intent = "add"
	IntentEdit Intent = "edit"
)

// ErrorClearDelay is how long a mismatch error stays visible before it
// auto-clears and another attempt is allowed.
const ErrorClearDelay = 2 * time.Second

// Gate compares user input against the configured passkey. On match it
// unlocks exactly the intent that triggered the check; on mismatch it
// surfaces a transient error that clears itself. No lockout, no rate
// limiting, no attempt counting: this is a convenience gate, not a
// security boundary.
type Gate struct {
	passkey    string
	clearDelay time.Duration
	logger     zerolog.Logger

	mu         sync.Mutex
	errored    bool
	clearTimer *time.Timer
}

func NewGate(passkey string, logger zerolog.Logger) *Gate {
	return &Gate{
		passkey:    passkey,
		clearDelay: ErrorClearDelay,
		logger:     logger.With().Str("component", "admin-gate").Logger(),
	}
}

// SetClearDelay overrides the error auto-clear delay. Tests only.
func (g *Gate) SetClearDelay(d time.Duration) {
	g.mu.Lock()
	g.clearDelay = d
	g.mu.Unlock()
}

// Verify checks the passkey for the given intent. On match the
// returned intent is the one the caller asked to unlock and any
// pending error clears immediately. On mismatch the transient error
// state is set and scheduled to auto-clear; retries are unlimited.
func (g *Gate) Verify(passkey string, intent Intent) (Intent, bool) {
	match := subtle.ConstantTimeCompare([]byte(passkey), []byte(g.passkey)) == 1 && g.passkey != ""

	g.mu.Lock()
	defer g.mu.Unlock()

	if match {
		g.errored = false
		if g.clearTimer != nil {
			g.clearTimer.Stop()
			g.clearTimer = nil
		}
		return intent, true
	}

	g.logger.Warn().Str("intent", string(intent)).Msg("passkey mismatch")
	g.errored = true
	if g.clearTimer != nil {
		g.clearTimer.Stop()
	}
	g.clearTimer = time.AfterFunc(g.clearDelay, func() {
		g.mu.Lock()
		g.errored = false
		g.clearTimer = nil
		g.mu.Unlock()
	})
	return "", false
}

// Errored reports whether the transient mismatch error is currently
// visible.
func (g *Gate) Errored() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.errored
}
