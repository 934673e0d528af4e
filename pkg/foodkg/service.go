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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/foodkg/recommender/pkg/defaults"
	"github.com/foodkg/recommender/pkg/errors"
)

// Option configures a Service.
type Option func(*Service)

// WithIngredientCache sets the ingredient list cache lifetime.
func WithIngredientCache(ttl, cleanup time.Duration) Option {
	return func(s *Service) {
		s.ingredientTTL = ttl
		s.ingredientCleanup = cleanup
	}
}

// WithDetailCache caches recipe details for ttl. Zero disables it.
func WithDetailCache(ttl time.Duration) Option {
	return func(s *Service) {
		s.detailTTL = ttl
	}
}

// WithMatchOptions sets the options of every Matcher the service builds.
func WithMatchOptions(opts ...MatchOption) Option {
	return func(s *Service) {
		s.matchOpts = append(s.matchOpts, opts...)
	}
}

// Service answers knowledge graph questions for the web and CLI front ends.
type Service struct {
	querier Querier
	catalog *IngredientCatalog
	details *cache.Cache

	ingredientTTL     time.Duration
	ingredientCleanup time.Duration
	detailTTL         time.Duration
	matchOpts         []MatchOption
}

// NewService creates a Service over q.
func NewService(q Querier, opts ...Option) *Service {
	s := &Service{
		querier:           q,
		ingredientTTL:     defaults.IngredientCacheTTL,
		ingredientCleanup: defaults.IngredientCacheCleanup,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.catalog = NewIngredientCatalog(q, s.ingredientTTL, s.ingredientCleanup)
	if s.detailTTL > 0 {
		s.details = cache.New(s.detailTTL, 2*s.detailTTL)
	}
	return s
}

// Ingredients returns the knowledge graph ingredient list.
func (s *Service) Ingredients(ctx context.Context) (IngredientList, error) {
	return s.catalog.List(ctx)
}

// RefreshIngredients reloads the ingredient list.
func (s *Service) RefreshIngredients(ctx context.Context) (IngredientList, error) {
	return s.catalog.Refresh(ctx)
}

// Matcher returns a matcher over the current ingredient list.
func (s *Service) Matcher(ctx context.Context) (*Matcher, error) {
	list, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewMatcher(list, s.matchOpts...), nil
}

// Match resolves free-form ingredient names.
func (s *Service) Match(ctx context.Context, inputs []string) (IngredientMatches, error) {
	inputs = cleanInputs(inputs)
	if len(inputs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one ingredient is required")
	}
	m, err := s.Matcher(ctx)
	if err != nil {
		return nil, err
	}
	return m.Match(inputs), nil
}

// FindRecipes resolves inputs with the matcher and searches for recipes that
// contain all of them. Every input must resolve to at least one ingredient.
func (s *Service) FindRecipes(ctx context.Context, inputs []string, cq CandidateQuery) (RecipeSummaries, IngredientMatches, error) {
	matches, err := s.Match(ctx, inputs)
	if err != nil {
		return nil, nil, err
	}

	cq.Ingredients = make([]string, 0, len(matches))
	cq.Alternatives = make(map[string][]string, len(matches))
	var unmatched []string
	for _, m := range matches {
		if len(m.Matches) == 0 {
			unmatched = append(unmatched, m.Input)
			continue
		}
		primary := m.Matches[0]
		cq.Ingredients = append(cq.Ingredients, primary)
		if len(m.Matches) > 1 {
			cq.Alternatives[primary] = append(cq.Alternatives[primary], m.Matches[1:]...)
		}
	}
	if len(unmatched) > 0 {
		return nil, matches, errors.NewWithContext(errors.ErrCodeNotFound,
			"no knowledge graph ingredient matches the input",
			map[string]any{"unmatched": unmatched})
	}

	recipes, err := FindCandidates(ctx, s.querier, cq)
	if err != nil {
		return nil, matches, err
	}
	return recipes, matches, nil
}

// RecipeDetails returns the details of one recipe, or nil when it is unknown.
func (s *Service) RecipeDetails(ctx context.Context, iri string) (*RecipeDetails, error) {
	if s.details != nil {
		if v, found := s.details.Get(iri); found {
			return v.(*RecipeDetails), nil
		}
	}

	d, err := FetchRecipeDetails(ctx, s.querier, iri)
	if err != nil || d == nil {
		return d, err
	}
	if s.details != nil {
		s.details.Set(iri, d, cache.DefaultExpiration)
	}
	return d, nil
}

// cleanInputs trims inputs and splits comma separated values.
func cleanInputs(inputs []string) []string {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		for _, part := range strings.Split(in, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
