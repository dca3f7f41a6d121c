package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/pkg/redis"
)

const (
	// Cache key prefixes
	showDetailKeyPrefix = "show:detail:"
	showListKeyPrefix   = "show:list:"

	// Default TTL for show caches
	showCacheTTL = 5 * time.Minute
)

// CachedShowRepository wraps ShowRepository with Redis caching. The show
// catalog is read-heavy and changes only through admin writes, so a short
// TTL plus write-through invalidation keeps it fresh enough.
type CachedShowRepository struct {
	repo  ShowRepository
	cache *redis.Client
}

// NewCachedShowRepository creates a new CachedShowRepository
func NewCachedShowRepository(repo ShowRepository, cache *redis.Client) *CachedShowRepository {
	return &CachedShowRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new show and invalidates the list cache
func (r *CachedShowRepository) Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error {
	if err := r.repo.Create(ctx, show, themeIDs); err != nil {
		return err
	}
	r.invalidateListCaches(ctx)
	return nil
}

// GetByID retrieves a show by ID with caching
func (r *CachedShowRepository) GetByID(ctx context.Context, id int64) (*domain.AstronomyShow, error) {
	cacheKey := showDetailKeyPrefix + strconv.FormatInt(id, 10)
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var show domain.AstronomyShow
		if err := json.Unmarshal([]byte(cached), &show); err == nil {
			return &show, nil
		}
	}

	// Cache miss - get from database
	show, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cacheShow(ctx, cacheKey, show)
	return show, nil
}

// List lists shows with caching; filtered queries bypass the cache
func (r *CachedShowRepository) List(ctx context.Context, filter *ShowFilter) ([]*domain.AstronomyShow, error) {
	if filter != nil && (filter.Title != "" || filter.Description != "" || filter.ThemeName != "") {
		return r.repo.List(ctx, filter)
	}

	cacheKey := showListKeyPrefix + "all"
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var shows []*domain.AstronomyShow
		if err := json.Unmarshal([]byte(cached), &shows); err == nil {
			return shows, nil
		}
	}

	// Cache miss - get from database
	shows, err := r.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(shows); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), showCacheTTL)
	}
	return shows, nil
}

// Update persists a show, replaces its theme links and invalidates caches
func (r *CachedShowRepository) Update(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error {
	if err := r.repo.Update(ctx, show, themeIDs); err != nil {
		return err
	}
	r.cache.Del(ctx, showDetailKeyPrefix+strconv.FormatInt(show.ID, 10))
	r.invalidateListCaches(ctx)
	return nil
}

// Delete removes a show and invalidates caches
func (r *CachedShowRepository) Delete(ctx context.Context, id int64) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Del(ctx, showDetailKeyPrefix+strconv.FormatInt(id, 10))
	r.invalidateListCaches(ctx)
	return nil
}

// UpdateImage sets the stored image reference and invalidates caches
func (r *CachedShowRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	if err := r.repo.UpdateImage(ctx, id, image); err != nil {
		return err
	}
	r.cache.Del(ctx, showDetailKeyPrefix+strconv.FormatInt(id, 10))
	r.invalidateListCaches(ctx)
	return nil
}

func (r *CachedShowRepository) cacheShow(ctx context.Context, key string, show *domain.AstronomyShow) {
	data, err := json.Marshal(show)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, string(data), showCacheTTL)
}

func (r *CachedShowRepository) invalidateListCaches(ctx context.Context) {
	var cursor uint64
	pattern := fmt.Sprintf("%s*", showListKeyPrefix)
	for {
		keys, next, err := r.cache.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			r.cache.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
