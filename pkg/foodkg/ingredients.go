// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package foodkg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/foodkg/recommender/pkg/defaults"
)

const ingredientListKey = "ingredients"

// IngredientList is the ordered list of ingredient names known to the
// knowledge graph.
type IngredientList []string

// TableHeader implements serializer.Tabular.
func (l IngredientList) TableHeader() []string { return []string{"INGREDIENT"} }

// TableRows implements serializer.Tabular.
func (l IngredientList) TableRows() [][]string {
	rows := make([][]string, len(l))
	for i, name := range l {
		rows[i] = []string{name}
	}
	return rows
}

// FetchIngredientList queries the distinct ingredient type names used by any
// recipe, ordered by name.
func FetchIngredientList(ctx context.Context, q Querier) (IngredientList, error) {
	slog.Info("fetching ingredient list")

	res, err := q.Query(ctx, ingredientListQuery)
	if err != nil {
		return nil, fmt.Errorf("fetching ingredient list: %w", err)
	}

	list := IngredientList(res.Column("ingredient"))
	slog.Debug("fetched ingredient list", "count", len(list))
	return list, nil
}

// IngredientCatalog caches the knowledge graph ingredient list.
// Concurrent misses share a single query.
type IngredientCatalog struct {
	querier Querier
	cache   *cache.Cache
	group   singleflight.Group
}

// NewIngredientCatalog creates a catalog whose list expires after ttl.
func NewIngredientCatalog(q Querier, ttl, cleanup time.Duration) *IngredientCatalog {
	return &IngredientCatalog{
		querier: q,
		cache:   cache.New(ttl, cleanup),
	}
}

// List returns the cached ingredient list, loading it on a miss.
// Failed loads are not cached. The shared load does not inherit the
// cancellation of whichever caller started it: a caller whose ctx ends
// stops waiting while the load continues for the others.
func (c *IngredientCatalog) List(ctx context.Context) (IngredientList, error) {
	if v, found := c.cache.Get(ingredientListKey); found {
		ingredientCacheHits.Inc()
		return v.(IngredientList), nil
	}
	ingredientCacheMisses.Inc()

	ch := c.group.DoChan(ingredientListKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.IngredientLoadTimeout)
		defer cancel()

		list, err := FetchIngredientList(loadCtx, c.querier)
		if err != nil {
			return nil, err
		}
		c.cache.Set(ingredientListKey, list, cache.DefaultExpiration)
		return list, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for ingredient list: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			slog.Debug("ingredient list load shared with concurrent caller")
		}
		return res.Val.(IngredientList), nil
	}
}

// Refresh drops the cached list and loads it again.
func (c *IngredientCatalog) Refresh(ctx context.Context) (IngredientList, error) {
	c.Invalidate()
	return c.List(ctx)
}

// Invalidate drops the cached list.
func (c *IngredientCatalog) Invalidate() {
	c.cache.Delete(ingredientListKey)
}
