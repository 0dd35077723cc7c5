// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"realtorbot/config"

	"github.com/go-redis/redis/v8"
)

// ConvoStateClient holds per-session conversation state.
var ConvoStateClient *redis.Client

// InitConvoStateCache initializes the Redis client backing conversation state.
func InitConvoStateCache() {
	ConvoStateClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisConvoDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ConvoStateClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Conversation State): %v", err)
	}
}

// GetConvoStateClient returns the conversation-state client.
func GetConvoStateClient() *redis.Client {
	if ConvoStateClient == nil {
		InitConvoStateCache()
	}
	return ConvoStateClient
}
