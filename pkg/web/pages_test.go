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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foodkg/recommender/pkg/errors"
	"github.com/foodkg/recommender/pkg/foodkg"
	"github.com/foodkg/recommender/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name     string
		svc      *fakeService
		method   string
		path     string
		wantCode int
		contains []string
	}{
		{
			name:     "renders ingredient list",
			svc:      &fakeService{ingredients: foodkg.IngredientList{"basil", "tomato"}},
			method:   http.MethodGet,
			path:     "/",
			wantCode: http.StatusOK,
			contains: []string{"<title>Home | test-app</title>", `<option value="basil">`, "2 ingredients", "http://kg.test/recipes/sparql"},
		},
		{
			name:     "renders when knowledge graph is down",
			svc:      &fakeService{ingredientsErr: errors.New(errors.ErrCodeUnavailable, "connection refused")},
			method:   http.MethodGet,
			path:     "/",
			wantCode: http.StatusOK,
			contains: []string{"currently unavailable"},
		},
		{
			name:     "unknown path",
			svc:      &fakeService{},
			method:   http.MethodGet,
			path:     "/nope",
			wantCode: http.StatusNotFound,
			contains: []string{"Not Found"},
		},
		{
			name:     "post rejected",
			svc:      &fakeService{},
			method:   http.MethodPost,
			path:     "/",
			wantCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.svc)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			h.Index(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
			if tt.wantCode == http.StatusMethodNotAllowed {
				assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
			}
		})
	}
}

func TestRecipeDetail(t *testing.T) {
	recipe := &foodkg.RecipeDetails{
		URI:                 "http://idea.rpi.edu/heals/kb/recipe/abc",
		Name:                "Tomato Soup",
		Calories:            "210",
		Ingredients:         []foodkg.RecipeIngredient{{Name: "tomato", Type: "http://purl.org/heals/ingredient/Tomato"}},
		DietaryRestrictions: []string{"Vegetarian"},
		NutritionalInfo:     map[string]string{"Protein": "4.2 g"},
		NutritionalContext:  "per serving",
	}

	tests := []struct {
		name     string
		svc      *fakeService
		uri      string
		wantCode int
		contains string
	}{
		{"found", &fakeService{recipe: recipe}, "http:/idea.rpi.edu/heals/kb/recipe/abc", http.StatusOK, "Tomato Soup"},
		{"not found", &fakeService{}, "http:/idea.rpi.edu/heals/kb/recipe/none", http.StatusNotFound, "Recipe not found"},
		{"invalid iri", &fakeService{recipeErr: errors.New(errors.ErrCodeInvalidRequest, "bad iri")}, "http:/x y", http.StatusBadRequest, "could not be loaded"},
		{"upstream down", &fakeService{recipeErr: errors.New(errors.ErrCodeUnavailable, "down")}, "http:/idea.rpi.edu/r", http.StatusServiceUnavailable, "could not be loaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/recipe/x", nil)
			req.SetPathValue("uri", tt.uri)
			w := httptest.NewRecorder()

			h.RecipeDetail(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.True(t, strings.HasPrefix(tt.svc.lastIRI, "http://"), "got IRI %q", tt.svc.lastIRI)
		})
	}
}

func TestRecipeDetailRendersNutrition(t *testing.T) {
	svc := &fakeService{recipe: &foodkg.RecipeDetails{
		URI:             "http://idea.rpi.edu/heals/kb/recipe/abc",
		NutritionalInfo: map[string]string{"Sugar": "3 g", "Protein": "4.2 g"},
	}}
	h := newTestHandler(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/recipe/x", nil)
	req.SetPathValue("uri", "http%3A%2F%2Fidea.rpi.edu%2Fheals%2Fkb%2Frecipe%2Fabc")
	w := httptest.NewRecorder()

	h.RecipeDetail(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>Recipe Details | test-app</title>")
	assert.Less(t, strings.Index(body, "Protein"), strings.Index(body, "Sugar"))
	assert.Equal(t, "http://idea.rpi.edu/heals/kb/recipe/abc", svc.lastIRI)
}

func TestRecipeIRIFromPath(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"http://example.org/recipe/1", "http://example.org/recipe/1", false},
		{"http:/example.org/recipe/1", "http://example.org/recipe/1", false},
		{"https:/example.org/recipe/1", "https://example.org/recipe/1", false},
		{"http%3A%2F%2Fexample.org%2Frecipe%2F1", "http://example.org/recipe/1", false},
		{"urn:recipe:1", "urn:recipe:1", false},
		{"%zz", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := recipeIRIFromPath(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Routes are exercised behind the real server so middleware and health
// endpoints are part of the picture.
func TestServerIntegration(t *testing.T) {
	svc := &fakeService{
		ingredientsErr: errors.New(errors.ErrCodeUnavailable, "kg down"),
		recipe:         &foodkg.RecipeDetails{URI: "http://example.org/recipe/1", Name: "Stew"},
	}
	h := newTestHandler(t, svc)
	srv := server.New(server.WithName("foodkgd-test"), server.WithHandler(h.Routes()))

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"status":"ok"}`, strings.TrimSpace(w.Body.String()))
	})

	t.Run("index with kg down", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("recipe page", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipe/http%3A%2Fexample.org%2Frecipe%2F1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Stew")
		assert.Equal(t, "http://example.org/recipe/1", svc.lastIRI)
	})

	t.Run("api method not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/ingredients", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
		assert.Contains(t, w.Body.String(), `"code":"METHOD_NOT_ALLOWED"`)
	})
}
