package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ResourceIdentifierDAO は旧形式のslugからリソースIDを引く
type ResourceIdentifierDAO struct {
	pool Querier
}

var ErrUnsupportedSlugTable = errors.New("resource type has no slug lookup")

// artifactsはslug列を持たないため、nameを小文字化しハイフンを空白として比較する
var slugLookupQueries = map[string]string{
	"artworks":  `SELECT id::text FROM artworks WHERE slug = $1 LIMIT 1`,
	"series":    `SELECT id::text FROM series WHERE slug = $1 LIMIT 1`,
	"artifacts": `SELECT id::text FROM artifacts WHERE lower(name) = replace(lower($1), '-', ' ') LIMIT 1`,
}

func NewResourceIdentifierDAO(pool Querier) *ResourceIdentifierDAO {
	return &ResourceIdentifierDAO{
		pool: pool,
	}
}

func (dao *ResourceIdentifierDAO) FindIDBySlug(ctx context.Context, table, slug string) (string, error) {
	query, ok := slugLookupQueries[table]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSlugTable, table)
	}

	var id string
	if err := dao.pool.QueryRow(ctx, query, slug).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", pgx.ErrNoRows
		}
		return "", err
	}

	return id, nil
}
