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

package sparql

// RDF term types as they appear in SPARQL JSON results.
const (
	TermURI     = "uri"
	TermLiteral = "literal"
	TermBNode   = "bnode"
)

// Term is a single RDF term bound to a variable.
type Term struct {
	Type     string `json:"type" yaml:"type"`
	Value    string `json:"value" yaml:"value"`
	Datatype string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty" yaml:"lang,omitempty"`
}

// Binding maps variable names to the terms bound in one solution.
// Unbound variables are absent.
type Binding map[string]Term

// Value returns the lexical value bound to name.
func (b Binding) Value(name string) (string, bool) {
	t, ok := b[name]
	if !ok {
		return "", false
	}
	return t.Value, true
}

// Head is the results header.
type Head struct {
	Vars []string `json:"vars,omitempty" yaml:"vars,omitempty"`
	Link []string `json:"link,omitempty" yaml:"link,omitempty"`
}

// ResultSet holds the solutions of a SELECT query.
type ResultSet struct {
	Bindings []Binding `json:"bindings" yaml:"bindings"`
}

// Results is a SPARQL 1.1 Query Results JSON document. SELECT queries populate
// Results; ASK queries populate Boolean.
type Results struct {
	Head    Head       `json:"head" yaml:"head"`
	Results *ResultSet `json:"results,omitempty" yaml:"results,omitempty"`
	Boolean *bool      `json:"boolean,omitempty" yaml:"boolean,omitempty"`
}

// Bindings returns the solutions, or nil for ASK results.
func (r *Results) Bindings() []Binding {
	if r == nil || r.Results == nil {
		return nil
	}
	return r.Results.Bindings
}

// Column returns the values bound to name across all solutions, skipping
// solutions where it is unbound.
func (r *Results) Column(name string) []string {
	bindings := r.Bindings()
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if v, ok := b.Value(name); ok {
			out = append(out, v)
		}
	}
	return out
}
