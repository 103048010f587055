package layout

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunDocumentRepository implements DocumentRepository with optional caching.
type BunDocumentRepository struct {
	repo repository.Repository[*Document]
}

// NewBunDocumentRepository creates a document repository without caching.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return NewBunDocumentRepositoryWithCache(db, nil, nil)
}

// NewBunDocumentRepositoryWithCache creates a document repository with caching.
func NewBunDocumentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunDocumentRepository {
	base := NewDocumentModelRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunDocumentRepository{repo: base}
}

func (r *BunDocumentRepository) Get(ctx context.Context, key string) (*Document, error) {
	record, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "layout_document", key)
	}
	return record, nil
}

func (r *BunDocumentRepository) Put(ctx context.Context, document *Document) (*Document, error) {
	existing, err := r.repo.GetByIdentifier(ctx, document.Key)
	if err != nil {
		var nf *NotFoundError
		if mapped := mapRepositoryError(err, "layout_document", document.Key); !errors.As(mapped, &nf) {
			return nil, mapped
		}
		if document.ID == uuid.Nil {
			document.ID = uuid.New()
		}
		return r.repo.Create(ctx, document)
	}

	document.ID = existing.ID
	document.CreatedAt = existing.CreatedAt
	record, err := r.repo.Update(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("layout_document repository error: %w", err)
	}
	return record, nil
}

func (r *BunDocumentRepository) Delete(ctx context.Context, key string) error {
	existing, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		var nf *NotFoundError
		if mapped := mapRepositoryError(err, "layout_document", key); errors.As(mapped, &nf) {
			return nil
		}
		return err
	}
	return r.repo.Delete(ctx, existing)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
