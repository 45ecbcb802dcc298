package infrastructure_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/infrastructure"
)

func TestSlugIDCache(t *testing.T) {
	cache := infrastructure.NewSlugIDCache()

	if _, ok := cache.Get(domain.ResourceTypeArtworks, "sunset"); ok {
		t.Fatal("Get() on empty cache returned ok=true")
	}

	cache.Set(domain.ResourceTypeArtworks, "sunset", "101")
	cache.Set(domain.ResourceTypeSeries, "sunset", "202")

	if got, ok := cache.Get(domain.ResourceTypeArtworks, "sunset"); !ok || got != "101" {
		t.Errorf("Get(artworks) = (%q, %v), want (101, true)", got, ok)
	}
	if got, ok := cache.Get(domain.ResourceTypeSeries, "sunset"); !ok || got != "202" {
		t.Errorf("Get(series) = (%q, %v), want (202, true)", got, ok)
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", cache.Len())
	}
	if _, ok := cache.Get(domain.ResourceTypeArtworks, "sunset"); ok {
		t.Error("Get() after Clear() returned ok=true")
	}
}

func TestSlugIDCache_IndependentInstances(t *testing.T) {
	a := infrastructure.NewSlugIDCache()
	b := infrastructure.NewSlugIDCache()

	a.Set(domain.ResourceTypeArtworks, "sunset", "101")
	if _, ok := b.Get(domain.ResourceTypeArtworks, "sunset"); ok {
		t.Error("エントリが別インスタンスに共有されています")
	}
}

func TestSlugIDCache_ConcurrentAccess(t *testing.T) {
	cache := infrastructure.NewSlugIDCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slug := fmt.Sprintf("slug-%d", i)
			cache.Set(domain.ResourceTypeArtworks, slug, fmt.Sprint(i))
			cache.Get(domain.ResourceTypeArtworks, slug)
			if i%10 == 0 {
				cache.Len()
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != 50 {
		t.Errorf("Len() = %d, want 50", cache.Len())
	}
}
