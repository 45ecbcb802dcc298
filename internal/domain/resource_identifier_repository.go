//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_resource_identifier_repository.go -package=domain
package domain

import "context"

type ResourceIdentifierRepository interface {
	// FindIDBySlug は旧形式のslugからリソースIDを引く。見つからない場合はErrNotFoundを返す。
	FindIDBySlug(ctx context.Context, resourceType ResourceType, slug string) (string, error)
}
