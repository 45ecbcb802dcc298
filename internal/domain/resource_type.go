package domain

import (
	"errors"
	"strings"
)

// ResourceType はストレージパスの先頭セグメントとなるリソース種別
type ResourceType string

const (
	ResourceTypeArtworks  ResourceType = "artworks"
	ResourceTypeSeries    ResourceType = "series"
	ResourceTypeArtifacts ResourceType = "artifacts"
	ResourceTypeEditor    ResourceType = "editor"
)

var ErrInvalidResourceType = errors.New("resource type must be one of artworks, series, artifacts, editor")

func ParseResourceType(value string) (ResourceType, error) {
	switch ResourceType(strings.ToLower(strings.TrimSpace(value))) {
	case ResourceTypeArtworks:
		return ResourceTypeArtworks, nil
	case ResourceTypeSeries:
		return ResourceTypeSeries, nil
	case ResourceTypeArtifacts:
		return ResourceTypeArtifacts, nil
	case ResourceTypeEditor:
		return ResourceTypeEditor, nil
	default:
		return "", ErrInvalidResourceType
	}
}

func (r ResourceType) String() string {
	return string(r)
}

// SkipsOptimization はoptimizedバリアントを持たないリソース種別かどうかを返す
func (r ResourceType) SkipsOptimization() bool {
	return r == ResourceTypeEditor
}

// SupportsSlugLookup は旧形式（slugベース）のパス解決に対応するリソース種別かどうかを返す
func (r ResourceType) SupportsSlugLookup() bool {
	switch r {
	case ResourceTypeArtworks, ResourceTypeSeries, ResourceTypeArtifacts:
		return true
	default:
		return false
	}
}
