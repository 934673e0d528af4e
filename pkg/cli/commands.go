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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/foodkg/recommender/pkg/api"
	"github.com/foodkg/recommender/pkg/foodkg"
	"github.com/foodkg/recommender/pkg/serializer"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the recipe web server",
		Description: `Starts the foodkgd HTTP server: home page, recipe pages, the /v1 JSON API,
and the /health, /ready and /metrics endpoints.

Configured from the environment (SPARQL_ENDPOINT, SECRET_KEY, PORT, ...).`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return api.ServeContext(ctx)
		},
	}
}

func ingredientsCmd() *cli.Command {
	return &cli.Command{
		Name:  "ingredients",
		Usage: "List the ingredients known to the knowledge graph",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			list, err := svc.Ingredients(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch ingredients: %w", err)
			}
			return writeOutput(ctx, cmd, list)
		},
	}
}

// ingredientFile is the document accepted by match --file.
type ingredientFile struct {
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

func matchCmd() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Match ingredient names against the knowledge graph",
		ArgsUsage: "<ingredient>...",
		Description: `Resolves free-form ingredient names to knowledge graph ingredients using
exact, plural/singular and fuzzy matching.

Names are taken from the arguments, or from a JSON/YAML file with an
"ingredients" list:

  foodkg match tomatos "green onion"
  foodkg match --file pantry.yaml -t table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "JSON or YAML file with an ingredients list",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, err := matchInputs(cmd)
			if err != nil {
				return err
			}

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			matches, err := svc.Match(ctx, inputs)
			if err != nil {
				return fmt.Errorf("failed to match ingredients: %w", err)
			}
			return writeOutput(ctx, cmd, matches)
		},
	}
}

func matchInputs(cmd *cli.Command) ([]string, error) {
	inputs := cmd.Args().Slice()
	if path := cmd.String("file"); path != "" {
		f, err := serializer.FromFile[ingredientFile](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load ingredients from %q: %w", path, err)
		}
		inputs = append(inputs, f.Ingredients...)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one ingredient is required, as an argument or via --file")
	}
	return inputs, nil
}

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:  "recipe",
		Usage: "Show the details of one recipe",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "uri",
				Aliases:  []string{"u"},
				Usage:    "recipe IRI",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			iri := cmd.String("uri")
			details, err := svc.RecipeDetails(ctx, iri)
			if err != nil {
				return fmt.Errorf("failed to fetch recipe: %w", err)
			}
			if details == nil {
				return fmt.Errorf("recipe not found: %s", iri)
			}
			return writeOutput(ctx, cmd, details)
		},
	}
}

// recipeSearch is the recipes command output. Table output lists the
// recipes only.
type recipeSearch struct {
	Matches foodkg.IngredientMatches `json:"matches" yaml:"matches"`
	Recipes foodkg.RecipeSummaries   `json:"recipes" yaml:"recipes"`
}

func (r recipeSearch) TableHeader() []string { return r.Recipes.TableHeader() }

func (r recipeSearch) TableRows() [][]string { return r.Recipes.TableRows() }

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:  "recipes",
		Usage: "Find recipes that contain all given ingredients",
		Description: `Matches every --ingredient against the knowledge graph and lists recipes
containing all of them.

  foodkg recipes --ingredient tomato --ingredient basil --category any -t table`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "ingredient",
				Aliases:  []string{"i"},
				Usage:    "ingredient name, repeat or comma separate for more",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "category",
				Value: foodkg.DefaultCategory,
				Usage: fmt.Sprintf("recipe category, %q for all", foodkg.AnyCategory),
			},
			&cli.BoolFlag{
				Name:  "green-sugar",
				Usage: "only recipes with an FSA green sugar rating",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: foodkg.DefaultCandidateLimit,
				Usage: fmt.Sprintf("maximum number of recipes (max %d)", foodkg.MaxCandidateLimit),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			cq := foodkg.CandidateQuery{
				Category:   cmd.String("category"),
				GreenSugar: cmd.Bool("green-sugar"),
				Limit:      cmd.Int("limit"),
			}

			recipes, matches, err := svc.FindRecipes(ctx, cmd.StringSlice("ingredient"), cq)
			if err != nil {
				return fmt.Errorf("failed to find recipes: %w", err)
			}
			slog.Debug("recipe search complete", "recipes", len(recipes))

			return writeOutput(ctx, cmd, recipeSearch{Matches: matches, Recipes: recipes})
		},
	}
}
