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
	"net/url"
	"strings"

	"github.com/foodkg/recommender/pkg/errors"
	"github.com/foodkg/recommender/pkg/sparql"
)

// Candidate search limits.
const (
	DefaultCategory       = "main-dish"
	AnyCategory           = "any"
	DefaultCandidateLimit = 50
	MaxCandidateLimit     = 500
)

// CandidateQuery selects recipes by ingredient.
type CandidateQuery struct {
	// Ingredients are knowledge graph ingredient names. A recipe must contain
	// every one of them.
	Ingredients []string `json:"ingredients" yaml:"ingredients"`

	// Alternatives lists further names accepted in place of each ingredient,
	// keyed by the ingredient name. Typically the other matches of a fuzzy
	// resolved input.
	Alternatives map[string][]string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`

	// Category restricts results to a recipe category local name.
	// Empty means DefaultCategory, AnyCategory disables the restriction.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// GreenSugar keeps only recipes whose sugar content is rated FSA green.
	GreenSugar bool `json:"greenSugar,omitempty" yaml:"greenSugar,omitempty"`

	// Limit caps the number of results. Zero means DefaultCandidateLimit.
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// RecipeSummary identifies a candidate recipe.
type RecipeSummary struct {
	URI  string `json:"uri" yaml:"uri"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// RecipeSummaries is a list of candidate recipes.
type RecipeSummaries []RecipeSummary

// TableHeader implements serializer.Tabular.
func (r RecipeSummaries) TableHeader() []string { return []string{"NAME", "URI"} }

// TableRows implements serializer.Tabular.
func (r RecipeSummaries) TableRows() [][]string {
	rows := make([][]string, len(r))
	for i, s := range r {
		rows[i] = []string{s.Name, s.URI}
	}
	return rows
}

// IngredientIRIs returns the type IRIs an ingredient name may appear under.
func IngredientIRIs(name string) []string {
	local := url.PathEscape(strings.TrimSpace(name))
	return []string{HealsIngredientNS + local, RecipeIngredientNS + local}
}

// BuildCandidateQuery renders the candidate search query.
func BuildCandidateQuery(cq CandidateQuery) (string, error) {
	if len(cq.Ingredients) == 0 {
		return "", errors.New(errors.ErrCodeInvalidRequest, "at least one ingredient is required")
	}

	limit := cq.Limit
	switch {
	case limit < 0:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "limit must not be negative",
			map[string]any{"limit": limit})
	case limit == 0:
		limit = DefaultCandidateLimit
	case limit > MaxCandidateLimit:
		limit = MaxCandidateLimit
	}

	category := ""
	switch c := strings.TrimSpace(cq.Category); {
	case c == "":
		category = CategoryIRI(DefaultCategory)
	case strings.EqualFold(c, AnyCategory):
	default:
		category = CategoryIRI(c)
	}

	groups := make([][]string, 0, len(cq.Ingredients))
	for _, name := range cq.Ingredients {
		if strings.TrimSpace(name) == "" {
			return "", errors.New(errors.ErrCodeInvalidRequest, "ingredient name must not be empty")
		}
		var set orderedSet
		for _, n := range append([]string{name}, cq.Alternatives[name]...) {
			for _, iri := range IngredientIRIs(n) {
				if err := sparql.ValidateIRI(iri); err != nil {
					return "", err
				}
				set.add(iri)
			}
		}
		groups = append(groups, set.items)
	}

	return render(candidateTemplate, struct {
		Category   string
		Groups     [][]string
		GreenSugar bool
		Limit      int
	}{
		Category:   category,
		Groups:     groups,
		GreenSugar: cq.GreenSugar,
		Limit:      limit,
	})
}

// FindCandidates returns the recipes matching cq, ordered by name.
func FindCandidates(ctx context.Context, q Querier, cq CandidateQuery) (RecipeSummaries, error) {
	query, err := BuildCandidateQuery(cq)
	if err != nil {
		return nil, err
	}

	slog.Info("searching candidate recipes",
		"ingredients", cq.Ingredients,
		"category", cq.Category,
		"greenSugar", cq.GreenSugar)

	res, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching candidate recipes: %w", err)
	}

	bindings := res.Bindings()
	out := make(RecipeSummaries, 0, len(bindings))
	for _, b := range bindings {
		uri, ok := b.Value("recipe")
		if !ok {
			continue
		}
		name, _ := b.Value("name")
		out = append(out, RecipeSummary{URI: uri, Name: name})
	}
	slog.Debug("candidate recipes found", "count", len(out))
	return out, nil
}

// CategoryIRI returns the knowledge graph class for a recipe category name.
// Category classes end with a slash, e.g.
// <http://purl.org/recipekg/categories/main-dish/>.
func CategoryIRI(name string) string {
	return CategoryNS + url.PathEscape(name) + "/"
}
