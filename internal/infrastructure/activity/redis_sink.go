package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultStream = "activity"
	defaultMaxLen = 100_000
)

// RedisStreamSink appends records to a Redis stream. The stream is capped
// approximately at maxLen entries so the trail cannot grow unbounded.
type RedisStreamSink struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewRedisStreamSink(client *redis.Client, stream string, maxLen int64) *RedisStreamSink {
	if stream == "" {
		stream = defaultStream
	}
	if maxLen <= 0 {
		maxLen = defaultMaxLen
	}
	return &RedisStreamSink{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStreamSink) Write(ctx context.Context, rec Record) error {
	values := map[string]any{
		"action":      rec.Action,
		"entity_type": rec.EntityType,
		"entity_id":   rec.EntityID,
		"at":          rec.At.Format(time.RFC3339Nano),
	}
	if rec.Before != nil {
		b, err := json.Marshal(rec.Before)
		if err != nil {
			return fmt.Errorf("marshal activity before: %w", err)
		}
		values["before"] = string(b)
	}
	if rec.After != nil {
		b, err := json.Marshal(rec.After)
		if err != nil {
			return fmt.Errorf("marshal activity after: %w", err)
		}
		values["after"] = string(b)
	}

	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: values,
	}).Err()
}

var _ Sink = (*RedisStreamSink)(nil)
