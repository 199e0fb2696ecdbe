package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateLimiter(t *testing.T) {
	rl := NewCreateLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.Allow("s1"))
	assert.True(t, rl.Allow("s1"))
	assert.False(t, rl.Allow("s1"))

	// Independent windows per session.
	assert.True(t, rl.Allow("s2"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("s1"))
}
