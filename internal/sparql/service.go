package sparql

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// QueryService exposes the raw-query use case: direct SPARQL execution
// against the store for advanced clients.
type QueryService struct {
	client     *Client
	propertyNS string
}

// NewQueryService creates a QueryService. propertyNS is the
// application's record-property namespace, used in sample queries.
func NewQueryService(client *Client, propertyNS string) *QueryService {
	return &QueryService{client: client, propertyNS: propertyNS}
}

// Execute runs a caller-supplied query, optionally capping the result
// set with a LIMIT clause. The result passes through in the store's
// native shape.
func (s *QueryService) Execute(ctx context.Context, query string, limit int) (*Result, error) {
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", strings.TrimRight(query, " \t\r\n"), limit)
	}
	return s.client.Select(ctx, query)
}

// Validate probes a query by executing it with LIMIT 1. It returns
// ok=false with the store's diagnostic when the store rejects it;
// transport failures are returned as errors.
func (s *QueryService) Validate(ctx context.Context, query string) (bool, string, error) {
	probe := strings.TrimRight(query, " \t\r\n") + " LIMIT 1"
	_, err := s.client.Select(ctx, probe)
	if err == nil {
		return true, "", nil
	}
	var rejected *ErrQueryRejected
	if errors.As(err, &rejected) {
		return false, rejected.Message, nil
	}
	return false, "", err
}

// Samples returns example queries for the query console.
func (s *QueryService) Samples() []string {
	ns := s.propertyNS
	return []string{
		`PREFIX kgp: <` + ns + `>
PREFIX schema: <http://schema.org/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>

SELECT ?country ?countryLabel (COUNT(?record) AS ?recordCount)
WHERE {
    ?record a kgp:healthRecord ;
            schema:location ?country .
    ?country rdfs:label ?countryLabel .
}
GROUP BY ?country ?countryLabel
ORDER BY DESC(?recordCount)
LIMIT 10`,

		`PREFIX kgp: <` + ns + `>
PREFIX schema: <http://schema.org/>

SELECT ?year (SUM(?cases) AS ?totalCases)
WHERE {
    ?record a kgp:healthRecord ;
            schema:year ?year ;
            kgp:hivCases ?cases .
}
GROUP BY ?year
ORDER BY ?year`,

		`PREFIX kgp: <` + ns + `>
PREFIX schema: <http://schema.org/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>

SELECT ?country ?countryLabel ?year ?bcg ?dtp3 ?measles1
WHERE {
    ?record a kgp:healthRecord ;
            schema:location ?country ;
            schema:year ?year ;
            kgp:bcg ?bcg ;
            kgp:dtp3 ?dtp3 ;
            kgp:measles1 ?measles1 .
    ?country rdfs:label ?countryLabel .
    FILTER(?year = "2020"^^xsd:gYear)
}
ORDER BY DESC(?bcg)
LIMIT 20`,
	}
}
