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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/foodkg/recommender/pkg/defaults"
	"github.com/foodkg/recommender/pkg/errors"
	"github.com/foodkg/recommender/pkg/foodkg"
	"github.com/foodkg/recommender/pkg/serializer"
	"github.com/foodkg/recommender/pkg/server"
)

// IngredientsResponse is the body of GET /v1/ingredients.
type IngredientsResponse struct {
	Count       int                   `json:"count" yaml:"count"`
	Ingredients foodkg.IngredientList `json:"ingredients" yaml:"ingredients"`
}

// MatchResponse is the body of GET /v1/ingredients/match.
type MatchResponse struct {
	Matches foodkg.IngredientMatches `json:"matches" yaml:"matches"`
}

// RecipesResponse is the body of GET /v1/recipes.
type RecipesResponse struct {
	Count   int                      `json:"count" yaml:"count"`
	Recipes foodkg.RecipeSummaries   `json:"recipes" yaml:"recipes"`
	Matches foodkg.IngredientMatches `json:"matches" yaml:"matches"`
}

// Ingredients lists the knowledge graph ingredients.
func (h *Handler) Ingredients(w http.ResponseWriter, r *http.Request) {
	if !allowAPIMethod(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.APIHandlerTimeout)
	defer cancel()

	list, err := h.svc.Ingredients(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to fetch ingredient list", nil)
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, IngredientsResponse{Count: len(list), Ingredients: list})
}

// MatchIngredients resolves free-form names given as q parameters.
// Each q may hold a comma separated list.
func (h *Handler) MatchIngredients(w http.ResponseWriter, r *http.Request) {
	if !allowAPIMethod(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.APIHandlerTimeout)
	defer cancel()

	matches, err := h.svc.Match(ctx, r.URL.Query()["q"])
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to match ingredients", map[string]any{"param": "q"})
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, MatchResponse{Matches: matches})
}

// Recipes searches recipes containing every ingredient parameter.
//
// Query parameters:
//   - ingredient: repeated or comma separated, required
//   - category: recipe category, default main-dish, "any" for all
//   - greenSugar: true to keep only FSA green sugar recipes
//   - limit: maximum results, default 50
func (h *Handler) Recipes(w http.ResponseWriter, r *http.Request) {
	if !allowAPIMethod(w, r) {
		return
	}

	q := r.URL.Query()
	cq := foodkg.CandidateQuery{Category: q.Get("category")}

	if v := q.Get("greenSugar"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"greenSugar must be a boolean", false, map[string]any{"greenSugar": v})
			return
		}
		cq.GreenSugar = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"limit must be an integer", false, map[string]any{"limit": v})
			return
		}
		cq.Limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.APIHandlerTimeout)
	defer cancel()

	recipes, matches, err := h.svc.FindRecipes(ctx, q["ingredient"], cq)
	if err != nil {
		var extra map[string]any
		if matches != nil {
			extra = map[string]any{"matches": matches}
		}
		server.WriteErrorFromErr(w, r, err, "Failed to search recipes", extra)
		return
	}

	slog.Debug("recipe search",
		"requestID", server.RequestIDFromContext(r.Context()),
		"ingredients", q["ingredient"],
		"results", len(recipes))

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, RecipesResponse{
		Count:   len(recipes),
		Recipes: recipes,
		Matches: matches,
	})
}

// Recipe returns the details of the recipe named by the uri parameter.
func (h *Handler) Recipe(w http.ResponseWriter, r *http.Request) {
	if !allowAPIMethod(w, r) {
		return
	}

	iri := r.URL.Query().Get("uri")
	if iri == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"uri parameter is required", false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.APIHandlerTimeout)
	defer cancel()

	recipe, err := h.svc.RecipeDetails(ctx, iri)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to fetch recipe details", nil)
		return
	}
	if recipe == nil {
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"Recipe not found", false, map[string]any{"uri": iri})
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, recipe)
}

func (h *Handler) setCacheHeaders(w http.ResponseWriter) {
	if h.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))
		return
	}
	w.Header().Set("Cache-Control", "no-store")
}

func allowAPIMethod(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodHead)
	return false
}
