package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	allPropertiesKey  = "properties:all"
	listGenerationKey = "properties:all:gen"
)

func propertyKey(id string) string {
	return "property:" + id
}

type PropertyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func NewPropertyCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *PropertyCache {
	return &PropertyCache{client: client, ttl: ttl, logger: log.Named("PropertyCache")}
}

func (c *PropertyCache) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	data, err := c.client.Get(ctx, propertyKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("PropertyCache.GetProperty for key '%s': %w", propertyKey(id), err)
	}
	var property domain.Property
	if err := json.Unmarshal(data, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *PropertyCache) SetProperty(ctx context.Context, property *domain.Property) error {
	data, err := json.Marshal(property)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, propertyKey(property.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("PropertyCache.SetProperty for key '%s': %w", propertyKey(property.ID), err)
	}
	c.logger.Debug("Cached property", zap.String("property_id", property.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// GetAll returns the cached list and the list generation. On a miss the
// generation is the value SetAll must be given to store a fresh list.
func (c *PropertyCache) GetAll(ctx context.Context) ([]*domain.Property, uint64, error) {
	vals, err := c.client.MGet(ctx, allPropertiesKey, listGenerationKey).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("PropertyCache.GetAll: %w", err)
	}
	gen, err := parseGeneration(vals[1])
	if err != nil {
		return nil, 0, fmt.Errorf("PropertyCache.GetAll: %w", err)
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, nil
	}
	properties := []*domain.Property{}
	if err := json.Unmarshal([]byte(raw), &properties); err != nil {
		return nil, gen, err
	}
	return properties, gen, nil
}

// SetAll stores the list only while the generation still equals gen. A list
// read from the database before an InvalidateAll is dropped.
func (c *PropertyCache) SetAll(ctx context.Context, gen uint64, properties []*domain.Property) error {
	data, err := json.Marshal(properties)
	if err != nil {
		return err
	}
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, listGenerationKey).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleList
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, allPropertiesKey, data, c.ttl)
			return nil
		})
		return err
	}, listGenerationKey)
	if errors.Is(err, errStaleList) || errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug("Skipped caching stale property list", zap.Uint64("generation", gen))
		return nil
	}
	if err != nil {
		return fmt.Errorf("PropertyCache.SetAll: %w", err)
	}
	return nil
}

// InvalidateAll bumps the list generation and drops the cached list.
func (c *PropertyCache) InvalidateAll(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, listGenerationKey)
		pipe.Del(ctx, allPropertiesKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("PropertyCache.InvalidateAll: %w", err)
	}
	return nil
}

var errStaleList = errors.New("property list generation moved")

func parseGeneration(v interface{}) (uint64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}
