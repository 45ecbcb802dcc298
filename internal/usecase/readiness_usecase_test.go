package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/atelier/internal/usecase"
	mock_usecase "github.com/na2na-p/atelier/tests/usecase"
	"go.uber.org/mock/gomock"
)

type checkerStub struct {
	name string
	err  error
}

func newCheckers(ctrl *gomock.Controller, stubs []checkerStub) []usecase.HealthChecker {
	checkers := make([]usecase.HealthChecker, 0, len(stubs))
	for _, s := range stubs {
		checker := mock_usecase.NewMockHealthChecker(ctrl)
		checker.EXPECT().Name().Return(s.name).AnyTimes()
		checker.EXPECT().Check(gomock.Any()).Return(s.err)
		checkers = append(checkers, checker)
	}
	return checkers
}

func TestReadinessUseCase_ExecuteDetails(t *testing.T) {
	tests := []struct {
		name        string
		stubs       []checkerStub
		wantHealthy []bool
		wantErr     error
	}{
		{
			name:        "正常系: postgres/redis/s3がすべて正常",
			stubs:       []checkerStub{{name: "postgres"}, {name: "redis"}, {name: "s3"}},
			wantHealthy: []bool{true, true, true},
		},
		{
			name:        "正常系: チェッカーが無い場合は正常",
			stubs:       nil,
			wantHealthy: []bool{},
		},
		{
			name:        "異常系: 1つでも失敗すればErrHealthCheckFailed",
			stubs:       []checkerStub{{name: "postgres"}, {name: "redis", err: errors.New("connection refused")}, {name: "s3"}},
			wantHealthy: []bool{true, false, true},
			wantErr:     usecase.ErrHealthCheckFailed,
		},
		{
			name:        "異常系: 失敗しても他のチェッカーは実行される",
			stubs:       []checkerStub{{name: "postgres", err: errors.New("timeout")}, {name: "redis", err: errors.New("timeout")}},
			wantHealthy: []bool{false, false},
			wantErr:     usecase.ErrHealthCheckFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := usecase.NewReadinessUseCase(time.Second, newCheckers(ctrl, tt.stubs)...)

			got, err := uc.ExecuteDetails(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExecuteDetails() error = %v, want %v", err, tt.wantErr)
			}
			if len(got) != len(tt.wantHealthy) {
				t.Fatalf("len(results) = %d, want %d", len(got), len(tt.wantHealthy))
			}
			for i, r := range got {
				if r.Name != tt.stubs[i].name {
					t.Errorf("results[%d].Name = %q, want %q", i, r.Name, tt.stubs[i].name)
				}
				if r.Healthy != tt.wantHealthy[i] {
					t.Errorf("results[%d].Healthy = %v, want %v", i, r.Healthy, tt.wantHealthy[i])
				}
				if (r.Error != nil) == r.Healthy {
					t.Errorf("results[%d].Error = %v, inconsistent with Healthy=%v", i, r.Error, r.Healthy)
				}
			}
		})
	}
}

func TestReadinessUseCase_CheckTimeout(t *testing.T) {
	slow := usecase.NewHealthCheck("s3", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	uc := usecase.NewReadinessUseCase(20*time.Millisecond, slow)

	got, err := uc.ExecuteDetails(context.Background())
	if !errors.Is(err, usecase.ErrHealthCheckFailed) {
		t.Fatalf("ExecuteDetails() error = %v, want ErrHealthCheckFailed", err)
	}
	if !errors.Is(got[0].Error, context.DeadlineExceeded) {
		t.Errorf("results[0].Error = %v, want context.DeadlineExceeded", got[0].Error)
	}
}

func TestReadinessUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewReadinessUseCase(0, newCheckers(ctrl, []checkerStub{{name: "redis", err: errors.New("down")}})...)

	if err := uc.Execute(context.Background()); !errors.Is(err, usecase.ErrHealthCheckFailed) {
		t.Errorf("Execute() error = %v, want ErrHealthCheckFailed", err)
	}
}

func TestNewHealthCheck(t *testing.T) {
	errPing := errors.New("connection refused")

	tests := []struct {
		name    string
		ping    error
		wantErr error
	}{
		{name: "正常系: Pingが成功すればnil", ping: nil, wantErr: nil},
		{name: "異常系: Pingのエラーを包んで返す", ping: errPing, wantErr: errPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := usecase.NewHealthCheck("postgres", func(context.Context) error { return tt.ping })

			if diff := cmp.Diff("postgres", checker.Name()); diff != "" {
				t.Errorf("Name() mismatch (-want +got):\n%s", diff)
			}
			if err := checker.Check(context.Background()); !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
