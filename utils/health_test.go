package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthStatusSnapshot(t *testing.T) {
	assert.Zero(t, GetHealthStatus().CheckedAt, "no snapshot before the first check")

	now := time.Now()
	setHealthStatus(HealthStatus{Mongo: true, Redis: false, CheckedAt: now})

	got := GetHealthStatus()
	assert.True(t, got.Mongo)
	assert.False(t, got.Redis)
	assert.Equal(t, now, got.CheckedAt)
}
