package middlewares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOnCooldown(t *testing.T) {
	m := NewCooldownMiddleware()

	assert.False(t, m.isOnCooldown("352002717285089280", "voicemod", 60))
	assert.True(t, m.isOnCooldown("352002717285089280", "voicemod", 60))

	// other users and commands are unaffected
	assert.False(t, m.isOnCooldown("531861558834495498", "voicemod", 60))
	assert.False(t, m.isOnCooldown("352002717285089280", "other", 60))
}

func TestCooldownExpires(t *testing.T) {
	m := NewCooldownMiddleware()

	assert.False(t, m.isOnCooldown("352002717285089280", "voicemod", 1))
	m.lastInvoked["352002717285089280"]["voicemod"] = time.Now().Add(-2 * time.Second)
	assert.False(t, m.isOnCooldown("352002717285089280", "voicemod", 1))
}
