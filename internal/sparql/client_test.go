package sparql

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClient_Select(t *testing.T) {
	var gotQuery, gotAccept, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotQuery = r.PostFormValue("query")

		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(`{"head":{"vars":["s"]},"results":{"bindings":[{"s":{"type":"uri","value":"http://example.org/a"}}]}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger(), nil)
	result, err := client.Select(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "SELECT ?s WHERE { ?s ?p ?o }" {
		t.Errorf("query not passed through: %q", gotQuery)
	}
	if gotAccept != "application/sparql-results+json" {
		t.Errorf("unexpected Accept header: %s", gotAccept)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected Content-Type: %s", gotContentType)
	}
	if len(result.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(result.Bindings))
	}
	if s, _ := result.Bindings[0].String("s"); s != "http://example.org/a" {
		t.Errorf("unexpected binding value: %s", s)
	}
}

func TestClient_Select_QueryRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "MALFORMED QUERY: Lexical error at line 1", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger(), nil)
	_, err := client.Select(context.Background(), "SELECT nonsense")

	var rejected *ErrQueryRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrQueryRejected, got %v", err)
	}
	if rejected.Message != "MALFORMED QUERY: Lexical error at line 1" {
		t.Errorf("expected store diagnostic preserved, got %q", rejected.Message)
	}
}

func TestClient_Select_StoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger(), nil)
	_, err := client.Select(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }")

	var unavailable *ErrStoreUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if unavailable.Endpoint == "" {
		t.Error("expected endpoint in error")
	}
}

func TestClient_Select_ConnectionRefused(t *testing.T) {
	// Reserve a port, then close the server so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	client := NewClient(endpoint, testLogger(), nil)
	_, err := client.Select(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }")

	var unavailable *ErrStoreUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestClient_Select_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>surprise</html>")) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testLogger(), nil)
	if _, err := client.Select(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }"); err == nil {
		t.Fatal("expected decode error")
	}
}
