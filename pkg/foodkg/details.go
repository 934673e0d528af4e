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
	"sort"
	"strings"

	"github.com/foodkg/recommender/pkg/sparql"
)

// nutritionalProperties are the recipeKG predicates reported as nutrition facts.
var nutritionalProperties = []string{
	"hasCarbohydrateData",
	"hasFatData",
	"hasProteinData",
	"hasFiberData",
	"hasSugarData",
	"hasSodiumData",
	"hasCholesterolData",
	"hasSaturatedFatData",
	"hasVitaminAData",
	"hasVitaminCData",
	"hasCalciumData",
	"hasIronData",
	"hasZincData",
	"hasPotassiumData",
	"hasMagnesiumData",
}

// defaultUnits is used when the graph carries no unit for a nutrient.
var defaultUnits = map[string]string{
	"Carbohydrate": "g",
	"Fat":          "g",
	"Protein":      "g",
	"Fiber":        "g",
	"Sugar":        "g",
	"SaturatedFat": "g",
	"Sodium":       "mg",
	"Cholesterol":  "mg",
	"VitaminA":     "µg",
	"VitaminC":     "mg",
	"Calcium":      "mg",
	"Iron":         "mg",
	"Zinc":         "mg",
	"Potassium":    "mg",
	"Magnesium":    "mg",
}

// RecipeIngredient is one ingredient of a recipe.
type RecipeIngredient struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// RecipeDetails is everything the knowledge graph knows about one recipe.
// Scalar fields are empty when the graph has no value for them.
type RecipeDetails struct {
	URI                 string             `json:"uri" yaml:"uri"`
	Name                string             `json:"name,omitempty" yaml:"name,omitempty"`
	Description         string             `json:"description,omitempty" yaml:"description,omitempty"`
	USDAScore           string             `json:"usdaScore,omitempty" yaml:"usdaScore,omitempty"`
	Calories            string             `json:"calories,omitempty" yaml:"calories,omitempty"`
	RecipeYield         string             `json:"recipeYield,omitempty" yaml:"recipeYield,omitempty"`
	PrepTime            string             `json:"prepTime,omitempty" yaml:"prepTime,omitempty"`
	CookTime            string             `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	TotalTime           string             `json:"totalTime,omitempty" yaml:"totalTime,omitempty"`
	ServingSize         string             `json:"servingSize,omitempty" yaml:"servingSize,omitempty"`
	ServingSizeUnit     string             `json:"servingSizeUnit,omitempty" yaml:"servingSizeUnit,omitempty"`
	Ingredients         []RecipeIngredient `json:"ingredients" yaml:"ingredients"`
	DietaryRestrictions []string           `json:"dietaryRestrictions" yaml:"dietaryRestrictions"`
	NutritionalInfo     map[string]string  `json:"nutritionalInfo" yaml:"nutritionalInfo"`
	NutritionalContext  string             `json:"nutritionalContext" yaml:"nutritionalContext"`
}

// Title is the page title for the recipe.
func (d *RecipeDetails) Title() string {
	if d.Name != "" {
		return d.Name
	}
	return "Recipe Details"
}

// NutrientNames returns the nutritional info keys in display order.
func (d *RecipeDetails) NutrientNames() []string {
	names := make([]string, 0, len(d.NutritionalInfo))
	for k := range d.NutritionalInfo {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// BuildDetailQuery renders the recipe detail query for iri.
func BuildDetailQuery(iri string) (string, error) {
	if err := sparql.ValidateIRI(iri); err != nil {
		return "", err
	}
	return render(detailTemplate, struct {
		IRI                   string
		NutritionalProperties []string
	}{
		IRI:                   iri,
		NutritionalProperties: nutritionalProperties,
	})
}

// FetchRecipeDetails queries and aggregates the details of one recipe.
// It returns nil and no error when the recipe is not in the graph.
func FetchRecipeDetails(ctx context.Context, q Querier, iri string) (*RecipeDetails, error) {
	slog.Info("fetching recipe details", "uri", iri)

	query, err := BuildDetailQuery(iri)
	if err != nil {
		return nil, err
	}

	res, err := q.Query(ctx, query)
	if err != nil {
		recipeLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetching recipe %s: %w", iri, err)
	}

	bindings := res.Bindings()
	if len(bindings) == 0 {
		recipeLookups.WithLabelValues("not_found").Inc()
		slog.Warn("no results found for recipe", "uri", iri)
		return nil, nil
	}

	details := AggregateDetails(iri, bindings)
	recipeLookups.WithLabelValues("found").Inc()
	if len(details.NutritionalInfo) == 0 {
		slog.Warn("no nutritional info found for recipe", "uri", iri)
	} else {
		slog.Debug("recipe nutritional info", "uri", iri, "nutrients", details.NutrientNames())
	}
	return details, nil
}

// AggregateDetails folds the solution rows of the detail query into one
// RecipeDetails. Scalars keep their first non-empty value. Ingredients are
// unique by (type, name) and dietary restrictions by local name, both in
// first-seen order. Each nutrient keeps its first reported amount.
func AggregateDetails(iri string, bindings []sparql.Binding) *RecipeDetails {
	d := &RecipeDetails{
		URI:                 iri,
		Ingredients:         []RecipeIngredient{},
		DietaryRestrictions: []string{},
		NutritionalInfo:     map[string]string{},
	}

	seenIngredients := map[RecipeIngredient]struct{}{}
	seenDietary := map[string]struct{}{}
	seenNutrients := map[[2]string]struct{}{}

	firstOf := func(dst *string, b sparql.Binding, name string) {
		if *dst != "" {
			return
		}
		if v, ok := b.Value(name); ok {
			*dst = v
		}
	}

	for _, b := range bindings {
		firstOf(&d.Name, b, "name")
		firstOf(&d.Description, b, "description")
		firstOf(&d.USDAScore, b, "usdascore")
		firstOf(&d.Calories, b, "calAmount")
		firstOf(&d.RecipeYield, b, "recipeYield")
		firstOf(&d.PrepTime, b, "prepTime")
		firstOf(&d.CookTime, b, "cookTime")
		firstOf(&d.TotalTime, b, "totalTime")
		firstOf(&d.ServingSize, b, "servingSize")
		if d.ServingSizeUnit == "" {
			if v, ok := b.Value("servingSizeUnit"); ok {
				d.ServingSizeUnit = unitName(v)
			}
		}

		if typ, ok := b.Value("ingredientType"); ok {
			name, hasName := b.Value("ingredientName")
			if !hasName {
				name = sparql.LocalName(typ)
			}
			ing := RecipeIngredient{Name: name, Type: typ}
			if _, seen := seenIngredients[ing]; !seen {
				seenIngredients[ing] = struct{}{}
				d.Ingredients = append(d.Ingredients, ing)
			}
		}

		if v, ok := b.Value("dietaryRestriction"); ok {
			name := sparql.LocalName(v)
			if _, seen := seenDietary[name]; !seen {
				seenDietary[name] = struct{}{}
				d.DietaryRestrictions = append(d.DietaryRestrictions, name)
			}
		}

		prop, hasProp := b.Value("nutritionalProperty")
		amount, hasAmount := b.Value("nutritionalAmount")
		if !hasProp || !hasAmount {
			continue
		}
		propName := sparql.LocalName(prop)
		key := [2]string{propName, amount}
		if _, seen := seenNutrients[key]; seen {
			continue
		}
		seenNutrients[key] = struct{}{}

		display := nutrientDisplayName(propName)
		unit := ""
		if v, ok := b.Value("nutritionalUnit"); ok {
			unit = unitName(v)
		}
		if unit == "" {
			unit = defaultUnits[display]
		}

		value := amount
		if unit != "" {
			value = amount + " " + unit
		}
		if _, exists := d.NutritionalInfo[display]; !exists {
			d.NutritionalInfo[display] = value
		}
	}

	d.NutritionalContext = nutritionalContext(d)
	return d
}

// nutrientDisplayName turns hasSaturatedFatData into SaturatedFat.
func nutrientDisplayName(propName string) string {
	display := strings.ReplaceAll(propName, "has", "")
	display = strings.ReplaceAll(display, "Data", "")
	if display == "" {
		return propName
	}
	return display
}

// unitName reduces unit IRIs to their local name; literals pass through.
func unitName(v string) string {
	if sparql.IsHTTPIRI(v) {
		return sparql.LocalName(v)
	}
	return v
}

func nutritionalContext(d *RecipeDetails) string {
	switch {
	case d.ServingSize != "" && d.ServingSizeUnit != "":
		return fmt.Sprintf("per %s %s", d.ServingSize, d.ServingSizeUnit)
	case d.RecipeYield != "":
		return fmt.Sprintf("per serving (recipe yields %s)", d.RecipeYield)
	default:
		return "per serving"
	}
}
