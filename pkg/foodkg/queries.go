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
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"

	"github.com/foodkg/recommender/pkg/sparql"
)

// Knowledge graph namespaces.
const (
	HealsIngredientNS  = "http://purl.org/heals/ingredient/"
	RecipeIngredientNS = "http://purl.org/recipekg/ingredient/"
	RecipeKGNS         = "http://purl.org/recipekg/"
	CategoryNS         = "http://purl.org/recipekg/categories/"
)

//go:embed queries/*.rq queries/*.rq.tmpl
var queryFS embed.FS

var (
	ingredientListQuery = mustReadQuery("queries/ingredients.rq")

	candidateTemplate = template.Must(template.ParseFS(queryFS, "queries/candidates.rq.tmpl"))
	detailTemplate    = template.Must(template.ParseFS(queryFS, "queries/recipe_detail.rq.tmpl"))
)

// Querier executes SPARQL queries. *sparql.Client satisfies it.
type Querier interface {
	Query(ctx context.Context, query string) (*sparql.Results, error)
}

func mustReadQuery(name string) string {
	b, err := queryFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded query %s: %v", name, err))
	}
	return string(b)
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
