package foodkg

import (
	"context"
	"strings"
	"sync"

	"github.com/foodkg/recommender/pkg/sparql"
)

// fakeQuerier answers queries with a caller supplied function and records
// what it was asked.
type fakeQuerier struct {
	mu      sync.Mutex
	queries []string
	answer  func(query string) (*sparql.Results, error)
}

func (f *fakeQuerier) Query(_ context.Context, query string) (*sparql.Results, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return f.answer(query)
}

func (f *fakeQuerier) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

// rows builds a SELECT result from rows of variable to value. Values that
// look like http IRIs become uri terms.
func rows(data ...map[string]string) *sparql.Results {
	bindings := make([]sparql.Binding, 0, len(data))
	for _, row := range data {
		b := sparql.Binding{}
		for k, v := range row {
			typ := sparql.TermLiteral
			if strings.HasPrefix(v, "http") {
				typ = sparql.TermURI
			}
			b[k] = sparql.Term{Type: typ, Value: v}
		}
		bindings = append(bindings, b)
	}
	return &sparql.Results{Results: &sparql.ResultSet{Bindings: bindings}}
}

func ingredientRows(names ...string) *sparql.Results {
	data := make([]map[string]string, len(names))
	for i, n := range names {
		data[i] = map[string]string{"ingredient": n}
	}
	return rows(data...)
}

func isIngredientListQuery(q string) bool {
	return strings.Contains(q, "AS ?ingredient")
}
