//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_user_role_repository.go -package=domain
package domain

import "context"

type UserRoleRepository interface {
	FindRolesByUserID(ctx context.Context, userID string) ([]Role, error)
}
