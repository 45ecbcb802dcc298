package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/na2na-p/atelier/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss はキャッシュにキーが存在しない場合のセンチネルエラーです
var ErrCacheMiss = redis.Nil

// scanBatchSize はDeleteByPrefixで1回のSCANが返すキー数の目安
const scanBatchSize = 100

var _ usecase.CacheClient = (*RedisClient)(nil)

func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("キーの取得に失敗しました: %w", err)
	}
	return val, nil
}

func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("キーの設定に失敗しました: %w", err)
	}
	return nil
}

// DeleteByPrefix はprefixで始まるキーをSCANで列挙して削除し、削除件数を返す。
// KEYSはサーバーをブロックするため使わない。
func (c *RedisClient) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	if prefix == "" {
		return 0, errors.New("prefix must not be empty")
	}

	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return deleted, fmt.Errorf("キーの走査に失敗しました: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("キーの削除に失敗しました: %w", err)
			}
			deleted += n
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}
