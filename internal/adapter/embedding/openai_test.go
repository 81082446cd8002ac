package embedding

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaEmbedder_Embed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req embeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}

		resp := embeddingResponse{}
		for i := range req.Input {
			resp.Data = append(resp.Data, embeddingData{
				Embedding: []float32{float32(i), 1, 2},
				Index:     i,
			})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	e, err := NewOllamaEmbedder("all-minilm", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if e.Dimension() != 384 {
		t.Errorf("expected dimension 384 for all-minilm, got %d", e.Dimension())
	}

	vectors, err := e.Embed([]string{"one", "two"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	if vectors[1][0] != 1 {
		t.Errorf("expected vectors ordered by index, got %v", vectors[1])
	}
}

func TestOllamaEmbedder_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`model not loaded`))
	}))
	defer server.Close()

	e, err := NewOllamaEmbedder("all-minilm", server.URL)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.Embed([]string{"text"}); err == nil {
		t.Error("expected error from failing endpoint")
	}
}

func TestOllamaEmbedder_EmptyInput(t *testing.T) {
	e, err := NewOllamaEmbedder("all-minilm", "http://localhost:1")
	if err != nil {
		t.Fatal(err)
	}

	vectors, err := e.Embed(nil)
	if err != nil {
		t.Fatal(err)
	}
	if vectors != nil {
		t.Errorf("expected no vectors for no input, got %v", vectors)
	}
}

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(8)

	a, err := e.Embed([]string{"hello"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Embed([]string{"hello"})
	if err != nil {
		t.Fatal(err)
	}

	for i := range a[0] {
		if a[0][i] != b[0][i] {
			t.Fatalf("mock embedder not deterministic at component %d", i)
		}
	}

	c, _ := e.Embed([]string{"different text"})
	same := true
	for i := range a[0] {
		if a[0][i] != c[0][i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected distinct texts to produce distinct vectors")
	}
}
