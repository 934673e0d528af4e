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

// Package serializer encodes and decodes foodkg data for HTTP responses and
// CLI output.
//
// # HTTP Responses
//
// RespondJSON and RespondHTML render into a buffer before writing headers, so
// an encoding or template failure produces a clean 500 instead of a partial
// body:
//
//	serializer.RespondJSON(w, http.StatusOK, ingredients)
//	serializer.RespondHTML(w, http.StatusOK, tmpl, "index.html", page)
//
// # CLI Output
//
// Writer supports three formats:
//   - json: indented JSON
//   - yaml: YAML with two-space indent
//   - table: aligned columns for values implementing Tabular, otherwise
//     flattened FIELD/VALUE rows
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, matches); err != nil {
//	    return err
//	}
//
// # CLI Input
//
// Reader decodes JSON or YAML files, with the format inferred from the file
// extension:
//
//	pantry, err := serializer.FromFile[[]string]("pantry.yaml")
package serializer
