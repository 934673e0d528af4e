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

import (
	"strings"
	"unicode"

	"github.com/foodkg/recommender/pkg/errors"
)

// LocalName returns the part of an IRI after the last '/'.
// Strings without a '/' are returned unchanged.
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// IsHTTPIRI reports whether s looks like an http(s) IRI.
func IsHTTPIRI(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// iriForbidden lists the characters an IRIREF may not contain besides
// controls and space.
const iriForbidden = "<>\"{}|^`\\"

// ValidateIRI rejects values that are not valid IRI references and so
// cannot be embedded between angle brackets in a query.
func ValidateIRI(iri string) error {
	if iri == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "recipe IRI is empty")
	}
	if strings.ContainsAny(iri, iriForbidden) || strings.IndexFunc(iri, invalidIRIRune) >= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"IRI contains characters not allowed in an IRI reference",
			map[string]any{"iri": iri})
	}
	return nil
}

func invalidIRIRune(r rune) bool {
	return r <= 0x20 || unicode.IsSpace(r)
}
