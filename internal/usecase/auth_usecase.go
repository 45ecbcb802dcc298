package usecase

import (
	"context"
	"fmt"

	"github.com/na2na-p/atelier/internal/domain"
)

type AuthUseCase struct {
	verifier TokenVerifier
	roles    domain.UserRoleRepository
}

func NewAuthUseCase(verifier TokenVerifier, roles domain.UserRoleRepository) *AuthUseCase {
	return &AuthUseCase{
		verifier: verifier,
		roles:    roles,
	}
}

// AuthenticateAdmin はBearerトークンを検証し、adminロールを持つユーザーのみを返す
func (uc *AuthUseCase) AuthenticateAdmin(ctx context.Context, token string) (*domain.UserInfo, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	verified, err := uc.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	roles, err := uc.roles.FindRolesByUserID(ctx, verified.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoleLookupFailed, err)
	}

	userInfo, err := domain.NewUserInfo(verified.Subject, verified.Email, roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if !userInfo.IsAdmin() {
		return nil, ErrForbidden
	}

	return userInfo, nil
}
