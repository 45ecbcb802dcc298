package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImageURL はプロキシ対象のURLが絶対URLでない、またはhttp(s)でない場合のエラー
	ErrInvalidImageURL = errors.New("url must be an absolute http(s) URL")

	// ErrUpstreamStatus は上流が2xx以外を返した場合のエラー。詳細はUpstreamStatusErrorが持つ。
	ErrUpstreamStatus = errors.New("upstream responded with non-2xx status")

	// ErrNotAnImage は上流のレスポンスが画像でない場合のエラー
	ErrNotAnImage = errors.New("upstream content is not an image")

	// ErrUpstreamTooLarge は上流のレスポンスが上限サイズを超えた場合のエラー
	ErrUpstreamTooLarge = errors.New("upstream image exceeds size limit")

	// ErrImageTooManyPixels は元画像の画素数がデコードの上限を超えた場合のエラー
	ErrImageTooManyPixels = errors.New("image dimensions exceed pixel limit")

	// ErrUpstreamTimeout は上流への取得がタイムアウトした場合のエラー
	ErrUpstreamTimeout = errors.New("upstream fetch timed out")

	// ErrUpstreamAddressForbidden は上流の接続先が公開アドレスでない場合のエラー
	ErrUpstreamAddressForbidden = errors.New("url must resolve to a public address")

	// ErrUpstreamFetch は上流への通信自体に失敗した場合のエラー
	ErrUpstreamFetch = errors.New("failed to fetch upstream image")

	// ErrImageProcessing は画像の再エンコードに失敗した場合のエラー
	ErrImageProcessing = errors.New("failed to process image")

	// ErrSettingsStore は設定の読み書きに失敗した場合のエラー
	ErrSettingsStore = errors.New("failed to access cache settings")

	// ErrInvalidUploadTarget はアップロード先のIDまたはファイル名が不正な場合のエラー
	ErrInvalidUploadTarget = errors.New("upload target id and filename are required")

	// ErrOptimizationUnsupported はoptimizedを持たないリソース種別にoptimizedをアップロードしようとした場合のエラー
	ErrOptimizationUnsupported = errors.New("resource type does not support optimized images")

	// ErrStorage はオブジェクトストレージ操作に失敗した場合のエラー
	ErrStorage = errors.New("object storage operation failed")

	// ErrSlugCacheClear はslugキャッシュのクリアに失敗した場合のエラー
	ErrSlugCacheClear = errors.New("failed to clear slug cache")

	// ErrUnauthorized は認証に失敗した場合のエラーです
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden は管理者権限が無い場合のエラーです
	ErrForbidden = errors.New("admin role required")

	// ErrRoleLookupFailed はロールの取得に失敗した場合のエラーです
	ErrRoleLookupFailed = errors.New("failed to look up user roles")

	// ErrHealthCheckFailed はいずれかのヘルスチェックが失敗した場合のエラーです
	ErrHealthCheckFailed = errors.New("health check failed")
)

// UpstreamStatusError は上流が2xx以外を返した場合のエラー。ステータスコードはそのまま呼び出し元に返す。
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstreamStatus
}
