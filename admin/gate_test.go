package admin

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_CorrectPasskeyUnlocksRequestedIntent(t *testing.T) {
	gate := NewGate("secret", zerolog.Nop())

	intent, ok := gate.Verify("secret", IntentAdd)
	require.True(t, ok)
	assert.Equal(t, IntentAdd, intent)
	assert.False(t, gate.Errored())

	intent, ok = gate.Verify("secret", IntentEdit)
	require.True(t, ok)
	assert.Equal(t, IntentEdit, intent)
}

func TestGate_MismatchErrorAutoClearsAndAllowsRetry(t *testing.T) {
	gate := NewGate("secret", zerolog.Nop())
	gate.SetClearDelay(30 * time.Millisecond)

	_, ok := gate.Verify("wrong", IntentAdd)
	require.False(t, ok)
	assert.True(t, gate.Errored())

	// The error disappears on its own.
	assert.Eventually(t, func() bool { return !gate.Errored() }, time.Second, 5*time.Millisecond)

	// Another attempt succeeds without any reset.
	intent, ok := gate.Verify("secret", IntentAdd)
	require.True(t, ok)
	assert.Equal(t, IntentAdd, intent)
}

func TestGate_UnlimitedRetries(t *testing.T) {
	gate := NewGate("secret", zerolog.Nop())
	gate.SetClearDelay(10 * time.Millisecond)

	for i := 0; i < 5; i++ {
		_, ok := gate.Verify("wrong", IntentEdit)
		assert.False(t, ok)
	}

	_, ok := gate.Verify("secret", IntentEdit)
	assert.True(t, ok)
}

func TestGate_SuccessClearsPendingError(t *testing.T) {
	gate := NewGate("secret", zerolog.Nop())
	gate.SetClearDelay(time.Hour)

	gate.Verify("wrong", IntentAdd)
	require.True(t, gate.Errored())

	gate.Verify("secret", IntentAdd)
	assert.False(t, gate.Errored())
}

func TestGate_EmptyConfiguredPasskeyNeverMatches(t *testing.T) {
	gate := NewGate("", zerolog.Nop())

	_, ok := gate.Verify("", IntentAdd)
	assert.False(t, ok)
}
