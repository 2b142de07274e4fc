package sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newQueryService(t *testing.T, handler http.HandlerFunc) (*QueryService, *[]string) {
	t.Helper()
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm() //nolint:errcheck
		queries = append(queries, r.PostFormValue("query"))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, testLogger(), nil)
	return NewQueryService(client, "http://kg.gaung.org/property/"), &queries
}

func emptyResult(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"head":{"vars":[]},"results":{"bindings":[]}}`)) //nolint:errcheck
}

func TestQueryService_Execute_AppendsLimit(t *testing.T) {
	svc, queries := newQueryService(t, emptyResult)

	if _, err := svc.Execute(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }\n", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := (*queries)[0]
	if !strings.HasSuffix(got, "LIMIT 50") {
		t.Errorf("expected LIMIT appended, got %q", got)
	}
}

func TestQueryService_Execute_NoLimit(t *testing.T) {
	svc, queries := newQueryService(t, emptyResult)

	if _, err := svc.Execute(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains((*queries)[0], "LIMIT") {
		t.Errorf("expected no LIMIT clause, got %q", (*queries)[0])
	}
}

func TestQueryService_Validate_OK(t *testing.T) {
	svc, queries := newQueryService(t, emptyResult)

	valid, message, err := svc.Validate(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected query to validate")
	}
	if message != "" {
		t.Errorf("expected empty message, got %q", message)
	}
	if !strings.HasSuffix((*queries)[0], "LIMIT 1") {
		t.Errorf("expected LIMIT 1 probe, got %q", (*queries)[0])
	}
}

func TestQueryService_Validate_Rejected(t *testing.T) {
	svc, _ := newQueryService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "MALFORMED QUERY", http.StatusBadRequest)
	})

	valid, message, err := svc.Validate(context.Background(), "SELECT nonsense")
	if err != nil {
		t.Fatalf("rejection should not surface as error: %v", err)
	}
	if valid {
		t.Error("expected query to be invalid")
	}
	if message != "MALFORMED QUERY" {
		t.Errorf("expected store diagnostic, got %q", message)
	}
}

func TestQueryService_Validate_StoreDown(t *testing.T) {
	svc, _ := newQueryService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	})

	if _, _, err := svc.Validate(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }"); err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func TestQueryService_Samples(t *testing.T) {
	svc := NewQueryService(nil, "http://kg.gaung.org/property/")

	samples := svc.Samples()
	if len(samples) == 0 {
		t.Fatal("expected sample queries")
	}
	for i, s := range samples {
		if !strings.Contains(s, "http://kg.gaung.org/property/") {
			t.Errorf("sample %d missing property namespace", i)
		}
		if !strings.Contains(s, "SELECT") {
			t.Errorf("sample %d is not a SELECT query", i)
		}
	}
}
