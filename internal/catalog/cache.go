package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// cachedTemplate wraps a template with version metadata for cache invalidation
type cachedTemplate struct {
	Version  string
	Template domain.ItemTemplate
}

// Stored serves templates from a repository through an expiring LRU cache.
// Materials come from the static table handed to NewStored.
type Stored struct {
	repo      repository.Template
	lru       *expirable.LRU[int32, *cachedTemplate]
	materials map[uint8]string
	matList   []domain.Material
}

// NewStored creates a repository-backed catalog with the given cache size and TTL
func NewStored(repo repository.Template, materials []domain.Material, size int, ttl time.Duration) *Stored {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if len(materials) == 0 {
		materials = DefaultMaterials()
	}
	s := &Stored{
		repo:      repo,
		lru:       expirable.NewLRU[int32, *cachedTemplate](size, nil, ttl),
		materials: make(map[uint8]string, len(materials)),
		matList:   slices.Clone(materials),
	}
	for _, m := range materials {
		s.materials[m.ID] = m.Name
	}
	return s
}

// Lookup returns the template, consulting the cache first.
func (s *Stored) Lookup(ctx context.Context, templateID int32) (domain.ItemTemplate, error) {
	if entry, ok := s.lru.Get(templateID); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Template, nil
		}
		s.lru.Remove(templateID)
	}

	logger.FromContext(ctx).Debug(LogMsgCacheMiss, "template_id", templateID)
	t, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return domain.ItemTemplate{}, fmt.Errorf("lookup template %d: %w", templateID, err)
	}
	s.lru.Add(templateID, &cachedTemplate{Version: CacheSchemaVersion, Template: *t})
	return *t, nil
}

// Search lists templates from the repository filtered by name.
func (s *Stored) Search(ctx context.Context, query string) ([]domain.ItemTemplate, error) {
	all, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	for _, t := range all {
		s.lru.Add(t.ID, &cachedTemplate{Version: CacheSchemaVersion, Template: t})
	}
	return filterByName(sortByName(all), query), nil
}

// MaterialName returns the display name of material.
func (s *Stored) MaterialName(material uint8) string {
	return materialName(s.materials, material)
}

// Materials lists known materials.
func (s *Stored) Materials() []domain.Material {
	return slices.Clone(s.matList)
}

// Invalidate drops every cached template.
func (s *Stored) Invalidate() {
	s.lru.Purge()
}

// Len returns the number of cached templates.
func (s *Stored) Len() int {
	return s.lru.Len()
}
