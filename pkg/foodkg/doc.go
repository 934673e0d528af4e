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

// Package foodkg answers recipe questions against the FoodKG knowledge graph.
//
// The package owns the SPARQL queries (embedded under queries/) and turns
// their solutions into domain types:
//
//   - IngredientCatalog lists the ingredient names used by any recipe and
//     caches the list in memory.
//   - Matcher resolves free-form ingredient names against that list,
//     tolerating case, naive plural forms and typos.
//   - FindCandidates searches recipes containing a set of ingredients,
//     optionally restricted by category and FSA sugar rating.
//   - FetchRecipeDetails aggregates the rows of the detail query into a
//     single RecipeDetails with ingredients, dietary restrictions and
//     nutrition facts.
//
// Service combines these behind one type for the web and CLI front ends:
//
//	client, _ := sparql.NewClientFromConfig(cfg)
//	svc := foodkg.NewService(client)
//	matches, err := svc.Match(ctx, []string{"tomatos", "Basil"})
//
// All query functions accept a Querier so tests can substitute canned
// results; *sparql.Client is the production implementation.
package foodkg
