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
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/foodkg/recommender/pkg/defaults"
	"github.com/foodkg/recommender/pkg/errors"
	"github.com/foodkg/recommender/pkg/foodkg"
	"github.com/foodkg/recommender/pkg/serializer"
	"github.com/foodkg/recommender/pkg/server"
)

// PageData is the data every page template receives.
type PageData struct {
	Title               string
	AppName             string
	SPARQLEndpoint      string
	PossibleIngredients []string
	Recipe              *foodkg.RecipeDetails
	Message             string
}

func (h *Handler) page(title string) PageData {
	return PageData{
		Title:          title,
		AppName:        h.cfg.AppName,
		SPARQLEndpoint: h.cfg.SPARQLEndpoint,
	}
}

// Index renders the home page. The page renders even when the knowledge
// graph is unreachable; the ingredient list is then empty.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if !allowPageMethod(w, r) {
		return
	}
	if r.URL.Path != "/" {
		h.renderError(w, http.StatusNotFound, "Not Found", "The requested page does not exist.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PageHandlerTimeout)
	defer cancel()

	data := h.page("Home")
	ingredients, err := h.svc.Ingredients(ctx)
	if err != nil {
		slog.Warn("ingredient list unavailable, rendering without it",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err)
		ingredients = foodkg.IngredientList{}
	}
	data.PossibleIngredients = ingredients

	serializer.RespondHTML(w, http.StatusOK, h.templates, "index.html", data)
}

// RecipeDetail renders one recipe. The recipe IRI is the URL-encoded
// remainder of the path.
func (h *Handler) RecipeDetail(w http.ResponseWriter, r *http.Request) {
	if !allowPageMethod(w, r) {
		return
	}

	iri, err := recipeIRIFromPath(r.PathValue("uri"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Bad Request", "The recipe address is not valid.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PageHandlerTimeout)
	defer cancel()

	recipe, err := h.svc.RecipeDetails(ctx, iri)
	if err != nil {
		code, _ := errors.CodeOf(err)
		status := server.HTTPStatusFromCode(code)
		slog.Error("failed to fetch recipe details",
			"requestID", server.RequestIDFromContext(r.Context()),
			"uri", iri,
			"error", err)
		h.renderError(w, status, http.StatusText(status), "The recipe could not be loaded.")
		return
	}
	if recipe == nil {
		h.renderError(w, http.StatusNotFound, "Not Found", "Recipe not found")
		return
	}

	data := h.page(recipe.Title())
	data.Recipe = recipe
	serializer.RespondHTML(w, http.StatusOK, h.templates, "recipe_detail.html", data)
}

func (h *Handler) renderError(w http.ResponseWriter, status int, title, message string) {
	data := h.page(title)
	data.Message = message
	serializer.RespondHTML(w, status, h.templates, "error.html", data)
}

// allowPageMethod rejects anything but GET and HEAD with a plain 405.
func allowPageMethod(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// recipeIRIFromPath decodes the recipe segment once more, as links may
// carry an escaped IRI, and restores the "//" of the scheme that path
// cleaning collapses.
func recipeIRIFromPath(raw string) (string, error) {
	iri, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	for _, scheme := range []string{"http:", "https:"} {
		if rest, ok := strings.CutPrefix(iri, scheme+"/"); ok && !strings.HasPrefix(rest, "/") {
			iri = scheme + "//" + rest
		}
	}
	if iri == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "recipe IRI is empty")
	}
	return iri, nil
}
