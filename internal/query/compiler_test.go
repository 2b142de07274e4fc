package query

import (
	"strings"
	"testing"
)

func testNamespaces() Namespaces {
	return Namespaces{
		Entity:           "http://kg.gaung.org/entity/",
		Property:         "http://kg.gaung.org/property/",
		Record:           "http://kg.gaung.org/record/",
		WikidataEntity:   "http://www.wikidata.org/entity/",
		WikidataProperty: "http://www.wikidata.org/prop/direct/",
	}
}

func TestCompiler_Search(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.Search("indo", "", 20, 20)

	for _, want := range []string{
		"SELECT DISTINCT ?entity ?label ?iso3Code",
		`FILTER(CONTAINS(LCASE(?label), LCASE("indo")))`,
		`FILTER(CONTAINS(LCASE(STR(?entity)), LCASE("indo")))`,
		"UNION",
		"OPTIONAL { ?entity wdt:P298 ?iso3Code . }",
		"LIMIT 20",
		"OFFSET 20",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("search query missing %q:\n%s", want, q)
		}
	}
}

func TestCompiler_Search_TypeFilters(t *testing.T) {
	c := NewCompiler(testNamespaces())

	tests := []struct {
		entityType string
		want       string
	}{
		{FilterCountry, "?entity wdt:P31/wdt:P279* wd:Q6256 ."},
		{FilterRegion, "FILTER(?regionType IN (wd:Q82794, wd:Q5107, wd:Q2418896))"},
		{FilterOrganization, "?entity wdt:P31/wdt:P279* wd:Q43229 ."},
	}

	for _, tt := range tests {
		t.Run(tt.entityType, func(t *testing.T) {
			q := c.Search("x", tt.entityType, 10, 0)
			if !strings.Contains(q, tt.want) {
				t.Errorf("missing type filter %q:\n%s", tt.want, q)
			}
		})
	}

	if q := c.Search("x", "", 10, 0); strings.Contains(q, "wdt:P31") {
		t.Errorf("unfiltered search must not constrain type:\n%s", q)
	}
}

func TestCompiler_Search_EscapesText(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.Search(`" } UNION { ?s ?p ?o`, "", 10, 0)
	if !strings.Contains(q, `LCASE("\" } UNION { ?s ?p ?o")`) {
		t.Errorf("search text not escaped:\n%s", q)
	}
}

func TestCompiler_SearchCount(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.SearchCount("indo", FilterCountry)
	if !strings.Contains(q, "(COUNT(DISTINCT ?entity) AS ?count)") {
		t.Errorf("missing COUNT projection:\n%s", q)
	}
	if strings.Contains(q, "LIMIT") || strings.Contains(q, "OFFSET") {
		t.Errorf("count query must not paginate:\n%s", q)
	}
	if strings.Contains(q, "iso3Code") {
		t.Errorf("count query should not fetch iso3:\n%s", q)
	}
}

func TestCompiler_EntityByID(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.EntityByID("http://www.wikidata.org/entity/Q252")
	if !strings.Contains(q, "<http://www.wikidata.org/entity/Q252> rdfs:label ?label .") {
		t.Errorf("missing label pattern:\n%s", q)
	}
	if !strings.Contains(q, "OPTIONAL { <http://www.wikidata.org/entity/Q252> wdt:P298 ?iso3Code . }") {
		t.Errorf("missing iso3 pattern:\n%s", q)
	}
}

func TestCompiler_EntityByISO3(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.EntityByISO3("IDN")
	if !strings.Contains(q, `?entity wdt:P298 "IDN" ;`) {
		t.Errorf("missing iso3 match:\n%s", q)
	}
}

func TestCompiler_Related(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.Related("http://www.wikidata.org/entity/Q252", 10)
	if !strings.Contains(q, "<http://www.wikidata.org/entity/Q252> wdt:P361 ?related .") {
		t.Errorf("missing forward direction:\n%s", q)
	}
	if !strings.Contains(q, "?related wdt:P361 <http://www.wikidata.org/entity/Q252> .") {
		t.Errorf("missing reverse direction:\n%s", q)
	}
	if !strings.Contains(q, "SELECT DISTINCT") {
		t.Errorf("related lookup must deduplicate:\n%s", q)
	}
	if !strings.Contains(q, "LIMIT 10") {
		t.Errorf("missing limit:\n%s", q)
	}
}

func TestCompiler_HealthRecords(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.HealthRecords("http://www.wikidata.org/entity/Q252", nil)

	for _, want := range []string{
		"?record a kgp:healthRecord ;",
		"schema:location <http://www.wikidata.org/entity/Q252> ;",
		"schema:year ?year .",
		"ORDER BY ?year",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("missing %q:\n%s", want, q)
		}
	}

	// Every indicator must be OPTIONAL so sparse records still match.
	for _, field := range healthIndicators {
		want := "OPTIONAL { ?record kgp:" + field + " ?" + field + " . }"
		if !strings.Contains(q, want) {
			t.Errorf("missing indicator pattern for %s:\n%s", field, q)
		}
	}

	if strings.Contains(q, "FILTER") {
		t.Errorf("year filter must be absent without a year:\n%s", q)
	}
}

func TestCompiler_HealthRecords_YearFilter(t *testing.T) {
	c := NewCompiler(testNamespaces())

	year := 2020
	q := c.HealthRecords("http://www.wikidata.org/entity/Q252", &year)
	if !strings.Contains(q, `FILTER(?year = "2020"^^xsd:gYear)`) {
		t.Errorf("missing typed year filter:\n%s", q)
	}
}

func TestCompiler_AvailableYears(t *testing.T) {
	c := NewCompiler(testNamespaces())

	q := c.AvailableYears("http://www.wikidata.org/entity/Q252")
	if !strings.Contains(q, "SELECT DISTINCT ?year") {
		t.Errorf("years must be distinct:\n%s", q)
	}
	if !strings.Contains(q, "ORDER BY ?year") {
		t.Errorf("years must be ordered:\n%s", q)
	}
}
