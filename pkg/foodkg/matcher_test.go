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
	"reflect"
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var testIngredients = []string{
	"tomato", "tomatoes", "Basil", "potato", "cherry", "cherries", "onion", "garlic",
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []MatchOption
		want  []string
	}{
		{
			name:  "exact match includes known plural",
			input: "tomato",
			want:  []string{"tomato", "tomatoes"},
		},
		{
			name:  "case insensitive returns original casing",
			input: "BASIL",
			want:  []string{"Basil"},
		},
		{
			name:  "y to ies plural",
			input: "Cherry",
			want:  []string{"cherry", "cherries"},
		},
		{
			name:  "singular variant of plural input",
			input: "onions",
			want:  []string{"onion"},
		},
		{
			name:  "typo resolves to best candidate",
			input: "garlik",
			want:  []string{"garlic"},
		},
		{
			name:  "typo returns every close candidate best first",
			input: "tomatu",
			want:  []string{"tomato", "tomatoes"},
		},
		{
			name:  "high threshold keeps only the best candidate",
			input: "tomatu",
			opts:  []MatchOption{WithHighSimilarity(0.95)},
			want:  []string{"tomato"},
		},
		{
			name:  "strict cutoff rejects typo",
			input: "garlik",
			opts:  []MatchOption{WithCutoff(0.9)},
			want:  []string{},
		},
		{
			name:  "no match",
			input: "xyz",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(testIngredients, tt.opts...)
			got := m.Match([]string{tt.input})
			if len(got) != 1 {
				t.Fatalf("Match() returned %d results, want 1", len(got))
			}
			if got[0].Input != tt.input {
				t.Errorf("Input = %q, want %q", got[0].Input, tt.input)
			}
			if got[0].Matches == nil {
				t.Fatal("Matches is nil, want empty slice")
			}
			if !reflect.DeepEqual(got[0].Matches, tt.want) {
				t.Errorf("Matches = %v, want %v", got[0].Matches, tt.want)
			}
		})
	}
}

func TestMatcher_MatchedOnly(t *testing.T) {
	m := NewMatcher(testIngredients)
	got := m.MatchedOnly([]string{"basil", "xyz", "onions"})
	want := []string{"Basil", "onion"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchedOnly() = %v, want %v", got, want)
	}
}

func TestMatcher_PreservesInputOrder(t *testing.T) {
	m := NewMatcher(testIngredients)
	got := m.Match([]string{"potato", "garlic", "basil"})
	inputs := make([]string, len(got))
	for i, r := range got {
		inputs[i] = r.Input
	}
	if !reflect.DeepEqual(inputs, []string{"potato", "garlic", "basil"}) {
		t.Errorf("inputs = %v", inputs)
	}
}

func TestMatcher_DuplicateNamesLastWins(t *testing.T) {
	m := NewMatcher([]string{"Salt", "salt"})
	got := m.Match([]string{"SALT"})
	if !reflect.DeepEqual(got[0].Matches, []string{"salt"}) {
		t.Errorf("Matches = %v, want [salt]", got[0].Matches)
	}
}

func TestMatcher_InvalidOptionsIgnored(t *testing.T) {
	m := NewMatcher(nil, WithCutoff(1.5), WithHighSimilarity(-1), WithMaxMatches(0))
	if m.cutoff != DefaultCutoff || m.highSimilarity != DefaultHighSimilarity || m.maxMatches != DefaultMaxMatches {
		t.Errorf("options not ignored: %+v", m)
	}
}

func TestPluralForms(t *testing.T) {
	lower := cases.Lower(language.Und)
	tests := []struct {
		word string
		want []string
	}{
		{"Berries", []string{"berries", "berry"}},
		{"apple", []string{"apple", "apples"}},
		{"dish", []string{"dish", "dishs", "dishes"}},
		{"boxes", []string{"boxes", "box", "boxe"}},
		{"cherry", []string{"cherry", "cherrys", "cherries"}},
		{"potato", []string{"potato", "potatos", "potatoes"}},
		{"s", []string{"s"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := pluralForms(lower, tt.word); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pluralForms(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestCloseMatches(t *testing.T) {
	got := closeMatches("appel", []string{"ape", "apple", "peach", "puppy"}, 3, 0.6)
	if !reflect.DeepEqual(got, []string{"apple", "ape"}) {
		t.Errorf("closeMatches() = %v, want [apple ape]", got)
	}

	// equal scores order by descending name
	got = closeMatches("abc", []string{"abd", "abe"}, 3, 0.6)
	if !reflect.DeepEqual(got, []string{"abe", "abd"}) {
		t.Errorf("closeMatches() ties = %v, want [abe abd]", got)
	}

	got = closeMatches("abc", []string{"abd", "abe"}, 1, 0.6)
	if len(got) != 1 {
		t.Errorf("closeMatches() n=1 returned %v", got)
	}

	if got := closeMatches("abc", []string{"abd"}, 0, 0.6); got != nil {
		t.Errorf("closeMatches() n=0 = %v, want nil", got)
	}
}

func TestIngredientMatches_Table(t *testing.T) {
	m := IngredientMatches{
		{Input: "tomato", Matches: []string{"tomato", "tomatoes"}},
		{Input: "xyz", Matches: []string{}},
	}
	rows := m.TableRows()
	if rows[0][1] != "tomato, tomatoes" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][1] != "-" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if !reflect.DeepEqual(m.Flatten(), []string{"tomato", "tomatoes"}) {
		t.Errorf("Flatten() = %v", m.Flatten())
	}
}
