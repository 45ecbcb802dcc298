package domain

import (
	"errors"
	"fmt"
	"math"
)

const (
	SecondsPerDay = 24 * 60 * 60

	// DefaultCacheTTLSeconds は設定行が存在しない場合に使うTTL（10日）
	DefaultCacheTTLSeconds = 10 * SecondsPerDay

	// MaxCacheTTLDays は管理画面から保存できる日数の上限。保存済みの行には適用しない。
	MaxCacheTTLDays = 3650
)

var ErrInvalidCacheTTL = errors.New("cache TTL must be a non-negative number of days")

// CacheTTL はプロキシが返すCache-Controlのmax-ageを秒で保持する
type CacheTTL struct {
	seconds int
}

// NewCacheTTL は保存済みの秒数からCacheTTLを復元する。負数以外は受け付ける。
func NewCacheTTL(seconds int) (CacheTTL, error) {
	if seconds < 0 {
		return CacheTTL{}, fmt.Errorf("%w: seconds=%d", ErrInvalidCacheTTL, seconds)
	}
	return CacheTTL{seconds: seconds}, nil
}

// NewCacheTTLFromDays は日数（小数可）から秒に換算してCacheTTLを生成する
func NewCacheTTLFromDays(days float64) (CacheTTL, error) {
	if math.IsNaN(days) || math.IsInf(days, 0) || days < 0 || days > MaxCacheTTLDays {
		return CacheTTL{}, fmt.Errorf("%w: days=%v", ErrInvalidCacheTTL, days)
	}
	return NewCacheTTL(int(math.Round(days * SecondsPerDay)))
}

func DefaultCacheTTL() CacheTTL {
	return CacheTTL{seconds: DefaultCacheTTLSeconds}
}

func (t CacheTTL) Seconds() int {
	return t.seconds
}

func (t CacheTTL) Days() float64 {
	return float64(t.seconds) / SecondsPerDay
}

// CacheControl はTTLからCache-Controlヘッダー値を導出する。0は「キャッシュしない」を意味する。
func (t CacheTTL) CacheControl() string {
	if t.seconds == 0 {
		return "public, max-age=0, must-revalidate"
	}
	return fmt.Sprintf("public, max-age=%d, immutable", t.seconds)
}
