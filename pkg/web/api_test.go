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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foodkg/recommender/pkg/errors"
	"github.com/foodkg/recommender/pkg/foodkg"
	"github.com/foodkg/recommender/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestIngredientsAPI(t *testing.T) {
	t.Run("lists ingredients", func(t *testing.T) {
		h := newTestHandler(t, &fakeService{ingredients: foodkg.IngredientList{"basil", "tomato"}})
		w := httptest.NewRecorder()
		h.Ingredients(w, httptest.NewRequest(http.MethodGet, "/v1/ingredients", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

		resp := decodeBody[IngredientsResponse](t, w)
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, foodkg.IngredientList{"basil", "tomato"}, resp.Ingredients)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		h := newTestHandler(t, &fakeService{ingredientsErr: errors.New(errors.ErrCodeUnavailable, "kg down")})
		w := httptest.NewRecorder()
		h.Ingredients(w, httptest.NewRequest(http.MethodGet, "/v1/ingredients", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeBody[server.ErrorResponse](t, w)
		assert.Equal(t, string(errors.ErrCodeUnavailable), resp.Code)
		assert.True(t, resp.Retryable)
	})

	t.Run("caching disabled", func(t *testing.T) {
		h := newTestHandler(t, &fakeService{}, WithCacheMaxAge(0))
		w := httptest.NewRecorder()
		h.Ingredients(w, httptest.NewRequest(http.MethodGet, "/v1/ingredients", nil))

		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("custom max age", func(t *testing.T) {
		h := newTestHandler(t, &fakeService{}, WithCacheMaxAge(90*time.Second))
		w := httptest.NewRecorder()
		h.Ingredients(w, httptest.NewRequest(http.MethodGet, "/v1/ingredients", nil))

		assert.Equal(t, "public, max-age=90", w.Header().Get("Cache-Control"))
	})
}

func TestMatchIngredientsAPI(t *testing.T) {
	matches := foodkg.IngredientMatches{
		{Input: "tomatos", Matches: []string{"tomatoes"}},
		{Input: "xyz", Matches: []string{}},
	}
	svc := &fakeService{matches: matches}
	h := newTestHandler(t, svc)

	w := httptest.NewRecorder()
	h.MatchIngredients(w, httptest.NewRequest(http.MethodGet, "/v1/ingredients/match?q=tomatos&q=xyz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tomatos", "xyz"}, svc.lastInputs)
	resp := decodeBody[MatchResponse](t, w)
	assert.Equal(t, matches, resp.Matches)

	t.Run("missing q", func(t *testing.T) {
		svc := &fakeService{matchErr: errors.New(errors.ErrCodeInvalidRequest, "at least one ingredient is required")}
		h := newTestHandler(t, svc)
		w := httptest.NewRecorder()
		h.MatchIngredients(w, httptest.NewRequest(http.MethodGet, "/v1/ingredients/match", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[server.ErrorResponse](t, w)
		assert.Equal(t, "q", resp.Details["param"])
	})
}

func TestRecipesAPI(t *testing.T) {
	tests := []struct {
		name      string
		svc       *fakeService
		query     string
		wantCode  int
		wantQuery foodkg.CandidateQuery
	}{
		{
			name:      "defaults",
			svc:       &fakeService{recipes: foodkg.RecipeSummaries{{URI: "http://example.org/r/1", Name: "Stew"}}},
			query:     "ingredient=tomato&ingredient=basil",
			wantCode:  http.StatusOK,
			wantQuery: foodkg.CandidateQuery{},
		},
		{
			name:      "all options",
			svc:       &fakeService{},
			query:     "ingredient=tomato&category=any&greenSugar=true&limit=5",
			wantCode:  http.StatusOK,
			wantQuery: foodkg.CandidateQuery{Category: "any", GreenSugar: true, Limit: 5},
		},
		{
			name:     "bad limit",
			svc:      &fakeService{},
			query:    "ingredient=tomato&limit=ten",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad greenSugar",
			svc:      &fakeService{},
			query:    "ingredient=tomato&greenSugar=maybe",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unmatched ingredient",
			svc: &fakeService{
				matches:    foodkg.IngredientMatches{{Input: "xyz", Matches: []string{}}},
				recipesErr: errors.NewWithContext(errors.ErrCodeNotFound, "no knowledge graph ingredient matches", map[string]any{"unmatched": []string{"xyz"}}),
			},
			query:    "ingredient=xyz",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.svc)
			w := httptest.NewRecorder()
			h.Recipes(w, httptest.NewRequest(http.MethodGet, "/v1/recipes?"+tt.query, nil))

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				resp := decodeBody[server.ErrorResponse](t, w)
				assert.NotEmpty(t, resp.Code)
				return
			}

			assert.Equal(t, tt.wantQuery, tt.svc.lastQuery)
			resp := decodeBody[RecipesResponse](t, w)
			assert.Equal(t, len(tt.svc.recipes), resp.Count)
		})
	}
}

func TestRecipeAPI(t *testing.T) {
	recipe := &foodkg.RecipeDetails{URI: "http://example.org/r/1", Name: "Stew"}

	tests := []struct {
		name     string
		svc      *fakeService
		target   string
		wantCode int
	}{
		{"found", &fakeService{recipe: recipe}, "/v1/recipe?uri=http%3A%2F%2Fexample.org%2Fr%2F1", http.StatusOK},
		{"missing uri", &fakeService{}, "/v1/recipe", http.StatusBadRequest},
		{"not found", &fakeService{}, "/v1/recipe?uri=http%3A%2F%2Fexample.org%2Fr%2F2", http.StatusNotFound},
		{"timeout", &fakeService{recipeErr: errors.New(errors.ErrCodeTimeout, "query timed out")}, "/v1/recipe?uri=http%3A%2F%2Fexample.org%2Fr%2F1", http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.svc)
			w := httptest.NewRecorder()
			h.Recipe(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode == http.StatusOK {
				got := decodeBody[foodkg.RecipeDetails](t, w)
				assert.Equal(t, "Stew", got.Name)
				assert.Equal(t, "http://example.org/r/1", tt.svc.lastIRI)
			}
		})
	}
}

func TestAPIMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &fakeService{})

	handlers := map[string]http.HandlerFunc{
		"/v1/ingredients":       h.Ingredients,
		"/v1/ingredients/match": h.MatchIngredients,
		"/v1/recipes":           h.Recipes,
		"/v1/recipe":            h.Recipe,
	}

	for path, handler := range handlers {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
			resp := decodeBody[server.ErrorResponse](t, w)
			assert.Equal(t, string(errors.ErrCodeMethodNotAllowed), resp.Code)
		})
	}
}
