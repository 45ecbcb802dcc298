package domain_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
)

func NewTestContextAt(t *testing.T, now time.Time) context.Context {
	t.Helper()

	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, now)

	return ctx
}

func NewTestCacheTTL(t *testing.T, seconds int) domain.CacheTTL {
	t.Helper()

	ttl, err := domain.NewCacheTTL(seconds)
	if err != nil {
		t.Fatalf("NewCacheTTL() failed: %v", err)
	}

	return ttl
}

func NewTestCacheTTLFromDays(t *testing.T, days float64) domain.CacheTTL {
	t.Helper()

	ttl, err := domain.NewCacheTTLFromDays(days)
	if err != nil {
		t.Fatalf("NewCacheTTLFromDays() failed: %v", err)
	}

	return ttl
}
