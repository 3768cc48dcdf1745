package kiosk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttemptKey(t *testing.T) {
	assert.Equal(t, "kiosk:pin_miss:10.0.0.8", attemptKey("10.0.0.8"))
}

func TestPinLockedWithoutRedis(t *testing.T) {
	// Redis 未启用时限流直接放行
	assert.False(t, pinLocked(context.Background(), "10.0.0.8"))
	recordPinMiss(context.Background(), "10.0.0.8")
	clearPinMisses(context.Background(), "10.0.0.8")
}
