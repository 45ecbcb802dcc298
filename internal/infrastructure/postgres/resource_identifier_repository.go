package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/atelier/internal/domain"
)

type ResourceIdentifierRepositoryImpl struct {
	dao *ResourceIdentifierDAO
}

func NewResourceIdentifierRepository(pool Querier) domain.ResourceIdentifierRepository {
	return &ResourceIdentifierRepositoryImpl{
		dao: NewResourceIdentifierDAO(pool),
	}
}

func (r *ResourceIdentifierRepositoryImpl) FindIDBySlug(ctx context.Context, resourceType domain.ResourceType, slug string) (string, error) {
	id, err := r.dao.FindIDBySlug(ctx, resourceType.String(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return id, nil
}
