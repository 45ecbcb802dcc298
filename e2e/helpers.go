//go:build e2e

// Package e2e は起動済みのatelierに対するE2Eテストのヘルパーを提供します
package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	// setupOnce はE2E環境セットアップを一度だけ実行するためのsync.Once
	setupOnce sync.Once
	setupErr  error

	// AdminUserID はadminロールを付与したテストユーザー
	AdminUserID = uuid.MustParse("8d7c2f3e-4b1a-4f6e-9c2d-1a2b3c4d5e6f")
	// EditorUserID はadminロールを持たないテストユーザー
	EditorUserID = uuid.MustParse("3f2e1d0c-9b8a-4776-8554-433221100ffe")
	// SeedArtworkID はslug解決用に登録するartworksの行
	SeedArtworkID = uuid.MustParse("5a6b7c8d-9e0f-4a1b-8c2d-3e4f5a6b7c8d")
)

const SeedArtworkSlug = "e2e-sunset"

// TestMain はE2Eテストパッケージ全体の初期化を行います
func TestMain(m *testing.M) {
	if err := SetupE2EEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のセットアップに失敗しました: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// SetupE2EEnvironment はテスト用のユーザーとリソースを一度だけ登録します
func SetupE2EEnvironment() error {
	setupOnce.Do(func() {
		setupErr = seedDatabase(context.Background())
	})
	return setupErr
}

func seedDatabase(ctx context.Context) error {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("ATELIER_DATABASE_HOST", "localhost"),
		getEnvOrDefault("ATELIER_DATABASE_PORT", "5432"),
		getEnvOrDefault("ATELIER_DATABASE_USER", "atelier"),
		getEnvOrDefault("ATELIER_DATABASE_PASSWORD", "atelier_dev_password"),
		getEnvOrDefault("ATELIER_DATABASE_DBNAME", "atelier"),
	)

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return fmt.Errorf("データベース接続に失敗しました: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	statements := []struct {
		sql  string
		args []any
	}{
		{
			sql:  `INSERT INTO user_roles (user_id, role) VALUES ($1, 'admin') ON CONFLICT DO NOTHING`,
			args: []any{AdminUserID},
		},
		{
			sql:  `INSERT INTO user_roles (user_id, role) VALUES ($1, 'editor') ON CONFLICT DO NOTHING`,
			args: []any{EditorUserID},
		},
		{
			sql:  `INSERT INTO artworks (id, slug) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			args: []any{SeedArtworkID, SeedArtworkSlug},
		},
	}
	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt.sql, stmt.args...); err != nil {
			return fmt.Errorf("テストデータの登録に失敗しました: %w", err)
		}
	}
	return nil
}

// getEnvOrDefault は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBaseEndpoint はE2Eテスト対象のベースエンドポイントを返します
func GetBaseEndpoint() string {
	return getEnvOrDefault("E2E_TEST_ENDPOINT", "http://localhost:8080")
}

// GenerateAdminToken はサーバーと同じ共有鍵でHS256トークンを発行します
func GenerateAdminToken(subject uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject.String(),
		"email": "e2e@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	if issuer := os.Getenv("ATELIER_AUTH_ISSUER"); issuer != "" {
		claims["iss"] = issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(getEnvOrDefault("ATELIER_AUTH_JWTSECRET", "atelier_dev_jwt_secret")))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗しました: %w", err)
	}
	return signed, nil
}

// NewRequest はBearerトークン付きのリクエストを作ります。tokenが空ならヘッダを付けません。
func NewRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, GetBaseEndpoint()+path, nil)
	if err != nil {
		t.Fatalf("リクエストの作成に失敗しました: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
