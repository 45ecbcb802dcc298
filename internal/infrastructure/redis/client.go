package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	connectTimeout    = 5 * time.Second
	defaultClientName = "atelier"

	// slugキャッシュ層はRedisが遅い場合にPostgresへ落ちるため短めに切る
	defaultOpTimeout = time.Second
)

// RedisConfig はRedisクライアントの設定を保持します
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	// OpTimeout は1コマンドの読み書きタイムアウト。0の場合defaultOpTimeout。
	OpTimeout time.Duration
}

// RedisClientInterface はRedisクライアントの操作を抽象化するインターフェース
type RedisClientInterface interface {
	Ping(ctx context.Context) error
	Close() error
}

// ClientFactory はRedisクライアントを生成するファクトリ関数の型
type ClientFactory func(opt *redis.Options) RedisClientInterface

type redisClientAdapter struct {
	client *redis.Client
}

func (a *redisClientAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

func (a *redisClientAdapter) Close() error {
	return a.client.Close()
}

func (a *redisClientAdapter) UnwrapClient() *redis.Client {
	return a.client
}

func DefaultClientFactory(opt *redis.Options) RedisClientInterface {
	return &redisClientAdapter{client: redis.NewClient(opt)}
}

// RedisClient はslugキャッシュ層で使うRedis操作のラッパーです
type RedisClient struct {
	client *redis.Client
}

// NewRedisConnectionWithFactory はファクトリでクライアントを作り、Pingが通ることを確認してから返す
func NewRedisConnectionWithFactory(ctx context.Context, cfg RedisConfig, factory ClientFactory) (RedisClientInterface, error) {
	if factory == nil {
		factory = DefaultClientFactory
	}
	if cfg.Host == "" {
		return nil, errors.New("redis host is required")
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = defaultOpTimeout
	}

	client := factory(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ClientName:   defaultClientName,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  connectTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis接続に失敗しました: %w", err)
	}

	return client, nil
}

type clientUnwrapper interface {
	UnwrapClient() *redis.Client
}

// NewRedisConnection は本番用に*redis.Clientを返す
func NewRedisConnection(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client, err := NewRedisConnectionWithFactory(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}
	unwrapper, ok := client.(clientUnwrapper)
	if !ok {
		return nil, fmt.Errorf("クライアントが*redis.Clientを返すアダプタではありません")
	}
	return unwrapper.UnwrapClient(), nil
}

func NewRedisClient(client *redis.Client) *RedisClient {
	return &RedisClient{
		client: client,
	}
}

func (c *RedisClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if c.client == nil {
		return errors.New("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}
