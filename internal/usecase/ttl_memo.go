package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/na2na-p/atelier/internal/domain"
	"github.com/newmo-oss/ctxtime"
)

// DefaultTTLMemoWindow は読み込んだTTLを再利用する期間
const DefaultTTLMemoWindow = 5 * time.Minute

// TTLMemo は直近に読み込んだTTLを保持する。インスタンスごとに独立しており、現在時刻はctxtimeから取る。
type TTLMemo struct {
	mu       sync.Mutex
	window   time.Duration
	ttl      domain.CacheTTL
	loadedAt time.Time
	loaded   bool
}

func NewTTLMemo(window time.Duration) *TTLMemo {
	if window <= 0 {
		window = DefaultTTLMemoWindow
	}
	return &TTLMemo{window: window}
}

// Get は期間内に読み込まれた値があればそれを返す
func (m *TTLMemo) Get(ctx context.Context) (domain.CacheTTL, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return domain.CacheTTL{}, false
	}
	if ctxtime.Now(ctx).Sub(m.loadedAt) >= m.window {
		return domain.CacheTTL{}, false
	}
	return m.ttl, true
}

func (m *TTLMemo) Set(ctx context.Context, ttl domain.CacheTTL) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ttl = ttl
	m.loadedAt = ctxtime.Now(ctx)
	m.loaded = true
}

func (m *TTLMemo) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loaded = false
}
