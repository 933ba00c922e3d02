package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

// Lister is the repository side of the catalog read path.
type Lister interface {
	List(ctx context.Context) ([]domain.HTE, error)
}

// Cache is the optional fast path in front of the repository.
type Cache interface {
	Get(ctx context.Context) ([]domain.HTE, bool, error)
	Set(ctx context.Context, catalog []domain.HTE) error
	Invalidate(ctx context.Context) error
}

// CatalogProvider serves the sorted HTE catalog, read-through the cache when
// one is configured. Cache trouble is logged and degraded around, never
// surfaced to the request.
type CatalogProvider struct {
	repo   Lister
	cache  Cache
	logger *zap.Logger
}

func NewCatalogProvider(repo Lister, cache Cache, logger *zap.Logger) *CatalogProvider {
	return &CatalogProvider{repo: repo, cache: cache, logger: logger}
}

// Catalog returns the current catalog snapshot.
func (p *CatalogProvider) Catalog(ctx context.Context) ([]domain.HTE, error) {
	if p.cache != nil {
		catalog, ok, err := p.cache.Get(ctx)
		if err != nil {
			p.logger.Warn("catalog cache read failed, falling back to store", zap.Error(err))
		} else if ok {
			return catalog, nil
		}
	}

	catalog, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, catalog); err != nil {
			p.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return catalog, nil
}

// Refresh overwrites the cached snapshot, used by the catalog watcher.
func (p *CatalogProvider) Refresh(ctx context.Context, catalog []domain.HTE) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(ctx, catalog); err != nil {
		p.logger.Warn("catalog cache refresh failed", zap.Error(err))
	}
}

// Invalidate drops the cached snapshot after an admin write.
func (p *CatalogProvider) Invalidate(ctx context.Context) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Invalidate(ctx); err != nil {
		p.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
