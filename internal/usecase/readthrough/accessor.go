// Package readthrough serves paged lists and single items from the cache, loading and
// caching them from a persistence gateway on a miss.
//
// Only successful loads are cached. Gateway errors and not-found results pass through
// without populating the cache, and writes never touch it: stale entries age out under
// the expiration policy.
package readthrough

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"catalog-api/internal/cache"
	"catalog-api/internal/common/pagination"
	"catalog-api/internal/observability/tracing"
)

// Loader reads items of one resource from persistent storage.
type Loader[T any] interface {
	// ListPage returns up to limit items after skipping offset, ordered by identity
	// ascending, together with the total number of items.
	ListPage(ctx context.Context, offset, limit int) ([]T, int64, error)
	// GetByID returns the item and true, or the zero value and false when absent.
	GetByID(ctx context.Context, id int64) (T, bool, error)
}

// Policy is the expiration applied to entries populated by an Accessor.
type Policy struct {
	Absolute time.Duration
	Sliding  time.Duration
}

// DefaultPolicy keeps entries at most one minute, and evicts them after 20 seconds
// without a read.
func DefaultPolicy() Policy {
	return Policy{
		Absolute: time.Minute,
		Sliding:  20 * time.Second,
	}
}

// Accessor is the read path for one resource.
type Accessor[T any] struct {
	resource string
	store    *cache.Store
	loader   Loader[T]
	policy   Policy
	logger   *slog.Logger
}

// New creates an Accessor for resource using DefaultPolicy.
// resource is the cache key prefix, e.g. "Articles".
func New[T any](resource string, store *cache.Store, loader Loader[T], logger *slog.Logger) *Accessor[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Accessor[T]{
		resource: resource,
		store:    store,
		loader:   loader,
		policy:   DefaultPolicy(),
		logger:   logger,
	}
}

// WithPolicy replaces the expiration policy and returns the accessor.
func (a *Accessor[T]) WithPolicy(p Policy) *Accessor[T] {
	a.policy = p
	return a
}

// Resource returns the resource name used as key prefix.
func (a *Accessor[T]) Resource() string {
	return a.resource
}

// PageKey returns the cache key of one page of resource.
func PageKey(resource string, pageIndex, pageSize int) string {
	return fmt.Sprintf("%s_Page_%d_Size_%d", resource, pageIndex, pageSize)
}

// ItemKey returns the cache key of a single item of resource.
func ItemKey(resource string, id int64) string {
	return fmt.Sprintf("%s_%d", resource, id)
}

// GetPage returns page pageIndex of size pageSize.
// Both arguments must be at least 1.
func (a *Accessor[T]) GetPage(ctx context.Context, pageIndex, pageSize int) (pagination.PagedResult[T], error) {
	key := PageKey(a.resource, pageIndex, pageSize)

	ctx, span := tracing.GetTracer().Start(ctx, "readthrough.GetPage",
		trace.WithAttributes(
			attribute.String("cache.resource", a.resource),
			attribute.String("cache.key", key),
			attribute.Int("page.index", pageIndex),
			attribute.Int("page.size", pageSize),
		))
	defer span.End()

	if page, ok := cache.GetAs[pagination.PagedResult[T]](a.store, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		a.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
		return page, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))
	a.logger.DebugContext(ctx, "cache miss", slog.String("key", key))

	start := time.Now()
	items, total, err := a.loader.ListPage(ctx, pagination.CalculateOffset(pageIndex, pageSize), pageSize)
	pagination.RecordDuration(a.resource, "repository", time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load page failed")
		return pagination.PagedResult[T]{}, fmt.Errorf("load %s page %d: %w", a.resource, pageIndex, err)
	}
	pagination.UpdateTotalCount(a.resource, total)

	page := pagination.NewPagedResult(pageIndex, pageSize, total, items)
	a.store.Set(key, page, a.entryOptions()...)
	return page, nil
}

// GetByID returns the item with the given id.
// The boolean is false when the item does not exist; that outcome is not cached.
func (a *Accessor[T]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	key := ItemKey(a.resource, id)

	ctx, span := tracing.GetTracer().Start(ctx, "readthrough.GetByID",
		trace.WithAttributes(
			attribute.String("cache.resource", a.resource),
			attribute.String("cache.key", key),
			attribute.Int64("item.id", id),
		))
	defer span.End()

	if item, ok := cache.GetAs[T](a.store, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		a.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
		return item, true, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))
	a.logger.DebugContext(ctx, "cache miss", slog.String("key", key))

	item, found, err := a.loader.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load item failed")
		return zero, false, fmt.Errorf("load %s %d: %w", a.resource, id, err)
	}
	if !found {
		span.SetAttributes(attribute.Bool("item.found", false))
		return zero, false, nil
	}

	a.store.Set(key, item, a.entryOptions()...)
	return item, true, nil
}

func (a *Accessor[T]) entryOptions() []cache.EntryOption {
	return []cache.EntryOption{
		cache.WithAbsoluteExpiration(a.policy.Absolute),
		cache.WithSlidingExpiration(a.policy.Sliding),
	}
}
