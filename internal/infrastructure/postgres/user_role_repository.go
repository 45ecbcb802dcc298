package postgres

import (
	"context"

	"github.com/na2na-p/atelier/internal/domain"
)

type UserRoleRepositoryImpl struct {
	dao *UserRoleDAO
}

func NewUserRoleRepository(pool Querier) domain.UserRoleRepository {
	return &UserRoleRepositoryImpl{
		dao: NewUserRoleDAO(pool),
	}
}

func (r *UserRoleRepositoryImpl) FindRolesByUserID(ctx context.Context, userID string) ([]domain.Role, error) {
	rows, err := r.dao.FindRolesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, role := range rows {
		roles = append(roles, domain.Role(role))
	}
	return roles, nil
}
