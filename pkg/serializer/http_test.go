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

package serializer

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"status":"ok"}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestRespondJSON_DifferentStatusCodes(t *testing.T) {
	codes := []int{http.StatusCreated, http.StatusBadRequest, http.StatusNotFound, http.StatusServiceUnavailable}
	for _, code := range codes {
		w := httptest.NewRecorder()
		RespondJSON(w, code, []string{"Tomato"})
		if w.Code != code {
			t.Errorf("expected status %d, got %d", code, w.Code)
		}
		var got []string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
			t.Errorf("unexpected body for %d: %s", code, w.Body.String())
		}
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 on encode failure, got %d", w.Code)
	}
	if strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		t.Error("content type should not claim JSON after encode failure")
	}
}

func TestRespondHTML(t *testing.T) {
	tmpl := template.Must(template.New("page.html").Parse(`<h1>{{.Title}}</h1>`))

	t.Run("renders", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondHTML(w, http.StatusOK, tmpl, "page.html", map[string]string{"Title": "Home & <Garden>"})

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("expected text/html, got %s", ct)
		}
		if got := w.Body.String(); got != "<h1>Home &amp; &lt;Garden&gt;</h1>" {
			t.Errorf("unexpected body %q", got)
		}
	})

	t.Run("custom status", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondHTML(w, http.StatusNotFound, tmpl, "page.html", map[string]string{"Title": "Missing"})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondHTML(w, http.StatusOK, tmpl, "missing.html", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "<h1>") {
			t.Error("partial template output must not be written")
		}
	})

	t.Run("nil template set", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondHTML(w, http.StatusOK, nil, "page.html", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}
