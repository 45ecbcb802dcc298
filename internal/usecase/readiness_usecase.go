//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultHealthCheckTimeout は1つの依存先の疎通確認にかける上限
const DefaultHealthCheckTimeout = 3 * time.Second

type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

type namedHealthCheck struct {
	name  string
	check func(ctx context.Context) error
}

// NewHealthCheck はPing系の関数を名前付きのHealthCheckerにする
func NewHealthCheck(name string, check func(ctx context.Context) error) HealthChecker {
	return &namedHealthCheck{name: name, check: check}
}

func (c *namedHealthCheck) Name() string {
	return c.name
}

func (c *namedHealthCheck) Check(ctx context.Context) error {
	if err := c.check(ctx); err != nil {
		return fmt.Errorf("%s health check failed: %w", c.name, err)
	}
	return nil
}

type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
	Latency time.Duration
}

type ReadinessUseCase struct {
	checkers     []HealthChecker
	checkTimeout time.Duration
}

// NewReadinessUseCase はcheckTimeoutが0以下の場合DefaultHealthCheckTimeoutを使う
func NewReadinessUseCase(checkTimeout time.Duration, checkers ...HealthChecker) *ReadinessUseCase {
	if checkTimeout <= 0 {
		checkTimeout = DefaultHealthCheckTimeout
	}
	return &ReadinessUseCase{
		checkers:     checkers,
		checkTimeout: checkTimeout,
	}
}

func (uc *ReadinessUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails は全てのチェッカーを並行に実行する。結果は登録順に並び、1つでも失敗すればErrHealthCheckFailedを返す。
func (uc *ReadinessUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, len(uc.checkers))

	var wg sync.WaitGroup
	for i, checker := range uc.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = uc.run(ctx, checker)
		}()
	}
	wg.Wait()

	for _, r := range results {
		if !r.Healthy {
			return results, ErrHealthCheckFailed
		}
	}
	return results, nil
}

func (uc *ReadinessUseCase) run(ctx context.Context, checker HealthChecker) HealthCheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, uc.checkTimeout)
	defer cancel()

	started := time.Now()
	err := checker.Check(checkCtx)
	return HealthCheckResult{
		Name:    checker.Name(),
		Healthy: err == nil,
		Error:   err,
		Latency: time.Since(started),
	}
}
