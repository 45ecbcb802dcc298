package postgres

import (
	"context"
)

// UserRoleDAO はuser_rolesテーブルへのデータアクセスを提供する
type UserRoleDAO struct {
	pool Querier
}

func NewUserRoleDAO(pool Querier) *UserRoleDAO {
	return &UserRoleDAO{
		pool: pool,
	}
}

func (dao *UserRoleDAO) FindRolesByUserID(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT role
		FROM user_roles
		WHERE user_id::text = $1
		ORDER BY role
	`

	rows, err := dao.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
