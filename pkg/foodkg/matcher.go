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
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher defaults.
const (
	DefaultCutoff         = 0.6
	DefaultHighSimilarity = 0.6
	DefaultMaxMatches     = 10
)

// Match strategies, used as metric labels.
const (
	strategyExact   = "exact"
	strategyVariant = "variant"
	strategyFuzzy   = "fuzzy"
	strategyNone    = "none"
)

// IngredientMatch pairs a user supplied ingredient with the knowledge graph
// ingredients it resolved to. Matches is empty when nothing was close enough.
type IngredientMatch struct {
	Input   string   `json:"input" yaml:"input"`
	Matches []string `json:"matches" yaml:"matches"`
}

// IngredientMatches is a list of match results.
type IngredientMatches []IngredientMatch

// TableHeader implements serializer.Tabular.
func (m IngredientMatches) TableHeader() []string { return []string{"INPUT", "MATCHES"} }

// TableRows implements serializer.Tabular.
func (m IngredientMatches) TableRows() [][]string {
	rows := make([][]string, len(m))
	for i, r := range m {
		matches := strings.Join(r.Matches, ", ")
		if matches == "" {
			matches = "-"
		}
		rows[i] = []string{r.Input, matches}
	}
	return rows
}

// Flatten returns every matched ingredient in input order.
func (m IngredientMatches) Flatten() []string {
	out := make([]string, 0, len(m))
	for _, r := range m {
		out = append(out, r.Matches...)
	}
	return out
}

// MatchOption configures a Matcher.
type MatchOption func(*Matcher)

// WithCutoff sets the minimum similarity for a fuzzy candidate.
func WithCutoff(cutoff float64) MatchOption {
	return func(m *Matcher) {
		if cutoff >= 0 && cutoff <= 1 {
			m.cutoff = cutoff
		}
	}
}

// WithHighSimilarity sets the score at or above which all fuzzy candidates
// are returned instead of only the best one.
func WithHighSimilarity(threshold float64) MatchOption {
	return func(m *Matcher) {
		if threshold >= 0 && threshold <= 1 {
			m.highSimilarity = threshold
		}
	}
}

// WithMaxMatches caps the fuzzy candidates considered per variant.
func WithMaxMatches(n int) MatchOption {
	return func(m *Matcher) {
		if n > 0 {
			m.maxMatches = n
		}
	}
}

// Matcher resolves free-form ingredient names against the knowledge graph
// ingredient list. It tolerates case, plural forms and typos.
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	cutoff         float64
	highSimilarity float64
	maxMatches     int

	// lower-cased name -> original name; later duplicates win
	byLower map[string]string
	// lower-cased names in first-seen order
	lowers []string
}

// NewMatcher builds a Matcher over the available ingredient names.
func NewMatcher(available []string, opts ...MatchOption) *Matcher {
	m := &Matcher{
		cutoff:         DefaultCutoff,
		highSimilarity: DefaultHighSimilarity,
		maxMatches:     DefaultMaxMatches,
		byLower:        make(map[string]string, len(available)),
		lowers:         make([]string, 0, len(available)),
	}
	for _, opt := range opts {
		opt(m)
	}

	lower := cases.Lower(language.Und)
	for _, name := range available {
		key := lower.String(name)
		if _, seen := m.byLower[key]; !seen {
			m.lowers = append(m.lowers, key)
		}
		m.byLower[key] = name
	}
	return m
}

// Match resolves every input. The result has one entry per input, in order.
//
// Resolution per input:
//  1. exact case-insensitive match, plus any plural or singular forms of the
//     matched name that are also in the list;
//  2. otherwise the first plural or singular form of the input that is in
//     the list, plus its own forms;
//  3. otherwise fuzzy matching: every candidate at or above the high
//     similarity threshold, best first, or the single best candidate.
func (m *Matcher) Match(inputs []string) IngredientMatches {
	lower := cases.Lower(language.Und)
	out := make(IngredientMatches, 0, len(inputs))

	for _, input := range inputs {
		inputLower := strings.TrimSpace(lower.String(input))
		variants := pluralForms(lower, input)
		slog.Debug("matching ingredient", "input", input, "variants", variants)

		if found := m.exact(lower, inputLower, variants); len(found) > 0 {
			out = append(out, IngredientMatch{Input: input, Matches: found})
			continue
		}

		found := m.fuzzy(inputLower, variants)
		if len(found) == 0 {
			matchOutcomes.WithLabelValues(strategyNone).Inc()
		} else {
			matchOutcomes.WithLabelValues(strategyFuzzy).Inc()
		}
		out = append(out, IngredientMatch{Input: input, Matches: found})
	}
	return out
}

// MatchedOnly returns every matched ingredient name across all inputs.
func (m *Matcher) MatchedOnly(inputs []string) []string {
	return m.Match(inputs).Flatten()
}

func (m *Matcher) exact(lower cases.Caser, inputLower string, variants []string) []string {
	var found orderedSet

	addWithForms := func(name string) {
		found.add(name)
		for _, v := range pluralForms(lower, name) {
			if kg, ok := m.byLower[v]; ok {
				found.add(kg)
			}
		}
	}

	if kg, ok := m.byLower[inputLower]; ok {
		addWithForms(kg)
		matchOutcomes.WithLabelValues(strategyExact).Inc()
		return found.items
	}

	for _, v := range variants {
		if kg, ok := m.byLower[v]; ok {
			addWithForms(kg)
			matchOutcomes.WithLabelValues(strategyVariant).Inc()
			break
		}
	}
	return found.items
}

func (m *Matcher) fuzzy(inputLower string, variants []string) []string {
	var candidates orderedSet
	for _, v := range variants {
		for _, c := range closeMatches(v, m.lowers, m.maxMatches, m.cutoff) {
			candidates.add(c)
		}
	}
	for _, c := range closeMatches(inputLower, m.lowers, m.maxMatches, m.cutoff) {
		candidates.add(c)
	}
	if len(candidates.items) == 0 {
		return []string{}
	}

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(candidates.items))
	for _, c := range candidates.items {
		best := similarity(inputLower, c)
		for _, v := range variants {
			if s := similarity(v, c); s > best {
				best = s
			}
		}
		ranked = append(ranked, scored{name: c, score: best})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	high := make([]string, 0, len(ranked))
	for _, r := range ranked {
		if r.score >= m.highSimilarity {
			high = append(high, m.byLower[r.name])
		}
	}
	if len(high) > 0 {
		return high
	}
	return []string{m.byLower[ranked[0].name]}
}

// pluralForms returns the lower-cased word plus naive singular and plural
// forms of it, without duplicates.
func pluralForms(lower cases.Caser, word string) []string {
	w := strings.TrimSpace(lower.String(word))
	n := utf8.RuneCountInString(w)

	var forms orderedSet
	forms.add(w)

	switch {
	case strings.HasSuffix(w, "ies"):
		forms.add(w[:len(w)-3] + "y")
	case strings.HasSuffix(w, "es") && n > 3:
		if !strings.ContainsRune("aeiou", rune(w[len(w)-3])) {
			forms.add(w[:len(w)-2])
			forms.add(w[:len(w)-1])
		}
	case strings.HasSuffix(w, "s") && n > 1:
		forms.add(w[:len(w)-1])
	}

	if !strings.HasSuffix(w, "s") {
		forms.add(w + "s")
	}
	switch {
	case strings.HasSuffix(w, "y") && n > 1:
		forms.add(w[:len(w)-1] + "ies")
	case strings.HasSuffix(w, "o"), strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "sh"), strings.HasSuffix(w, "x"):
		if !strings.HasSuffix(w, "es") {
			forms.add(w + "es")
		}
	}
	return forms.items
}

// closeMatches returns up to n possibilities whose similarity to word is at
// least cutoff, best first. Ties are ordered by descending name.
func closeMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 {
		return nil
	}

	sm := difflib.NewMatcher(nil, nil)
	sm.SetSeq2(chars(word))

	type scored struct {
		name  string
		score float64
	}
	var hits []scored
	for _, p := range possibilities {
		sm.SetSeq1(chars(p))
		if sm.RealQuickRatio() >= cutoff && sm.QuickRatio() >= cutoff {
			if r := sm.Ratio(); r >= cutoff {
				hits = append(hits, scored{name: p, score: r})
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name > hits[j].name
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

func similarity(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// chars splits s into single-character strings for sequence matching.
func chars(s string) []string {
	return strings.Split(s, "")
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
