package database

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	RedisHelper *redisUtil
)

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

// InitRedis connects the shared helper. An empty URL leaves the helper nil,
// which callers treat as "cache disabled".
func InitRedis(url string) {
	if url == "" {
		log.Warn().Msg("Redis URL not configured, history caching disabled")
		return
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Msgf("Invalid Redis URL: %v", err)
	}

	if opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	if _, err = redisClient.Ping(ctx).Result(); err != nil {
		log.Fatal().Msgf("Could not connect to Redis: %v", err)
	}

	log.Info().Msg("Connected to Redis successfully")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

func (r *redisUtil) Set(key string, value any, expiration time.Duration) error {
	if r == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := r.client.Set(r.ctx, key, payload, expiration).Err(); err != nil {
		log.Error().Msgf("Redis SET Error [%s]: %v", key, err)
		return err
	}
	return nil
}

// GetAsStruct unmarshals the stored JSON into target. The first return value
// reports whether the key was present.
func (r *redisUtil) GetAsStruct(key string, target any) (bool, error) {
	if r == nil {
		return false, nil
	}

	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		log.Error().Msgf("Redis GET Error [%s]: %v", key, err)
		return false, err
	}

	if err := json.Unmarshal([]byte(val), target); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisUtil) Delete(key string) error {
	if r == nil {
		return nil
	}

	err := r.client.Del(r.ctx, key).Err()
	if err != nil {
		log.Error().Msgf("Redis DEL Error [%s]: %v", key, err)
	}
	return err
}
