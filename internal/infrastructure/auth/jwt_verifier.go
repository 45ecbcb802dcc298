package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/na2na-p/atelier/internal/usecase"
	"github.com/newmo-oss/ctxtime"
)

var _ usecase.TokenVerifier = (*JWTVerifier)(nil)

type adminClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier はHS256で署名された管理者用トークンを検証します
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier はissuerが空の場合iss claimを検証しません
func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Verify は署名、exp、issを検証しsubとemailを返します。時刻はctxから取得します。
func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*usecase.VerifiedToken, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return ctxtime.Now(ctx) }),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, fmt.Errorf("%w: expected=%s", ErrInvalidIssuer, v.issuer)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return &usecase.VerifiedToken{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}
