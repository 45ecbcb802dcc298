package auth

import "errors"

var (
	// ErrInvalidToken はトークンが無効な場合に返されます
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken はトークンが期限切れの場合に返されます
	ErrExpiredToken = errors.New("token expired")
	// ErrInvalidIssuer はissuerが不正な場合に返されます
	ErrInvalidIssuer = errors.New("invalid issuer")
	// ErrMissingSubject はsubが含まれていない場合に返されます
	ErrMissingSubject = errors.New("missing subject")
	// ErrEmptySecret は署名鍵が設定されていない場合に返されます
	ErrEmptySecret = errors.New("jwt secret must not be empty")
)
