package foodkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingredientCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodkg_ingredient_cache_hits_total",
			Help: "Total number of ingredient list cache hits",
		},
	)
	ingredientCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodkg_ingredient_cache_misses_total",
			Help: "Total number of ingredient list cache misses",
		},
	)

	matchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodkg_ingredient_matches_total",
			Help: "Ingredient match results by strategy",
		},
		[]string{"strategy"},
	)

	recipeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodkg_recipe_detail_lookups_total",
			Help: "Recipe detail lookups by result",
		},
		[]string{"result"},
	)
)
