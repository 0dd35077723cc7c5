package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest reachability snapshot of the two backing
// stores: Mongo for listings and tours, Redis for conversation state.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealthStatus(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor pings the stores once a minute and keeps the
// in-memory snapshot current.
func StartHealthMonitor(convoState *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			setHealthStatus(HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Redis:     convoState.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			})
		}
	}()
}
