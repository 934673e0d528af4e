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

package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/foodkg/recommender/pkg/config"
	"github.com/foodkg/recommender/pkg/defaults"
	"github.com/foodkg/recommender/pkg/foodkg"
)

//go:embed templates/*.html
var templateFS embed.FS

// Service is the knowledge graph surface the handlers need.
// *foodkg.Service implements it.
type Service interface {
	Ingredients(ctx context.Context) (foodkg.IngredientList, error)
	Match(ctx context.Context, inputs []string) (foodkg.IngredientMatches, error)
	FindRecipes(ctx context.Context, inputs []string, cq foodkg.CandidateQuery) (foodkg.RecipeSummaries, foodkg.IngredientMatches, error)
	RecipeDetails(ctx context.Context, iri string) (*foodkg.RecipeDetails, error)
}

// Option configures a Handler.
type Option func(*Handler)

// WithTemplates replaces the embedded page templates.
func WithTemplates(t *template.Template) Option {
	return func(h *Handler) {
		h.templates = t
	}
}

// WithCacheMaxAge sets the Cache-Control max-age of API responses.
// Zero disables caching.
func WithCacheMaxAge(d time.Duration) Option {
	return func(h *Handler) {
		h.cacheMaxAge = d
	}
}

// Handler serves the HTML pages and the JSON API.
type Handler struct {
	cfg         config.ServiceConfig
	svc         Service
	templates   *template.Template
	cacheMaxAge time.Duration
}

// NewHandler creates a Handler. cfg is captured by value; handlers never read
// the environment.
func NewHandler(cfg config.ServiceConfig, svc Service, opts ...Option) (*Handler, error) {
	h := &Handler{
		cfg:         cfg,
		svc:         svc,
		cacheMaxAge: defaults.APICacheMaxAge,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.templates == nil {
		t, err := ParseTemplates()
		if err != nil {
			return nil, err
		}
		h.templates = t
	}
	return h, nil
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return t, nil
}

// Routes returns the handlers keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/":                     h.Index,
		"/recipe/{uri...}":      h.RecipeDetail,
		"/v1/ingredients":       h.Ingredients,
		"/v1/ingredients/match": h.MatchIngredients,
		"/v1/recipes":           h.Recipes,
		"/v1/recipe":            h.Recipe,
	}
}
