package query

import "fmt"

// Namespaces holds the RDF namespace prefixes compiled into every
// generated query.
type Namespaces struct {
	Entity           string // application entity namespace (kge:)
	Property         string // application record-property namespace (kgp:)
	Record           string // application record namespace (kgr:)
	WikidataEntity   string // upstream taxonomy entity namespace (wd:)
	WikidataProperty string // upstream taxonomy property namespace (wdt:)
}

const (
	rdfsNS   = "http://www.w3.org/2000/01/rdf-schema#"
	schemaNS = "http://schema.org/"
	xsdNS    = "http://www.w3.org/2001/XMLSchema#"
)

// EntityType filter values accepted by Search.
const (
	FilterCountry      = "country"
	FilterRegion       = "region"
	FilterOrganization = "organization"
)

// healthIndicators lists every record indicator property, in the fixed
// order queries and decoders use. Any subset may be absent per record,
// so each one is emitted as an OPTIONAL pattern.
var healthIndicators = []string{
	"hivCases", "malariaCases", "rabiesCases", "tuberculosisCases",
	"choleraCases", "guineaworm", "polioCases", "smallpoxCases", "yawsCases",
	"bcg", "dtp3", "hepb3", "hib3", "measles1", "polio3", "rotavirus", "rubella1",
	"populationAge0",
}

// Compiler builds the application's SPARQL queries.
type Compiler struct {
	ns Namespaces
}

// NewCompiler creates a Compiler for the configured namespaces.
func NewCompiler(ns Namespaces) *Compiler {
	return &Compiler{ns: ns}
}

// typeFilter returns the upstream-taxonomy patterns for an entity type
// filter, or nil when no filter applies.
func (c *Compiler) typeFilter(entityType string) []string {
	switch entityType {
	case FilterCountry:
		return []string{"?entity wdt:P31/wdt:P279* wd:Q6256 ."}
	case FilterRegion:
		return []string{
			"?entity wdt:P31/wdt:P279* ?regionType .",
			"FILTER(?regionType IN (wd:Q82794, wd:Q5107, wd:Q2418896))",
		}
	case FilterOrganization:
		return []string{"?entity wdt:P31/wdt:P279* wd:Q43229 ."}
	}
	return nil
}

// searchGroups returns the two UNIONed pattern groups shared by the
// search SELECT and COUNT queries: a case-insensitive containment
// match on the label, and the same match on the identifier's string
// form.
func (c *Compiler) searchGroups(text, entityType string, withISO3 bool) ([]string, []string) {
	lit := Literal(text)
	base := func(filter string) []string {
		g := []string{
			"?entity rdfs:label ?label .",
			filter,
		}
		g = append(g, c.typeFilter(entityType)...)
		if withISO3 {
			g = append(g, "OPTIONAL { ?entity wdt:P298 ?iso3Code . }")
		}
		return g
	}
	labelMatch := base(fmt.Sprintf("FILTER(CONTAINS(LCASE(?label), LCASE(%s)))", lit))
	idMatch := base(fmt.Sprintf("FILTER(CONTAINS(LCASE(STR(?entity)), LCASE(%s)))", lit))
	return labelMatch, idMatch
}

func (c *Compiler) searchBuilder(vars string) *Builder {
	return NewBuilder(vars).
		Prefix("wd", c.ns.WikidataEntity).
		Prefix("wdt", c.ns.WikidataProperty).
		Prefix("kge", c.ns.Entity).
		Prefix("rdfs", rdfsNS)
}

// Search compiles the entity search SELECT. Callers validate limit and
// offset before compiling; both are appended verbatim.
func (c *Compiler) Search(text, entityType string, limit, offset int) string {
	left, right := c.searchGroups(text, entityType, true)
	return c.searchBuilder("?entity ?label ?iso3Code").
		Distinct().
		Union(left, right).
		Limit(limit).
		Offset(offset).
		String()
}

// SearchCount compiles the COUNT query matching Search's filters.
func (c *Compiler) SearchCount(text, entityType string) string {
	left, right := c.searchGroups(text, entityType, false)
	return c.searchBuilder("(COUNT(DISTINCT ?entity) AS ?count)").
		Union(left, right).
		String()
}

// EntityByID compiles the label + optional ISO3 lookup for one entity.
func (c *Compiler) EntityByID(id string) string {
	ref := IRIRef(id)
	return NewBuilder("?label ?iso3Code").
		Prefix("wdt", c.ns.WikidataProperty).
		Prefix("rdfs", rdfsNS).
		Patternf("%s rdfs:label ?label .", ref).
		Patternf("OPTIONAL { %s wdt:P298 ?iso3Code . }", ref).
		String()
}

// EntityByISO3 compiles the reverse lookup from an ISO 3166-1 alpha-3
// code to an entity.
func (c *Compiler) EntityByISO3(code string) string {
	return NewBuilder("?entity ?label").
		Prefix("wdt", c.ns.WikidataProperty).
		Prefix("rdfs", rdfsNS).
		Patternf("?entity wdt:P298 %s ;", Literal(code)).
		Pattern("        rdfs:label ?label .").
		String()
}

// BasicInfo compiles the label/description/image lookup for the info
// box view.
func (c *Compiler) BasicInfo(id string) string {
	ref := IRIRef(id)
	return NewBuilder("?label ?description ?image").
		Prefix("wdt", c.ns.WikidataProperty).
		Prefix("rdfs", rdfsNS).
		Prefix("schema", schemaNS).
		Patternf("%s rdfs:label ?label .", ref).
		Patternf("OPTIONAL { %s schema:description ?description . }", ref).
		Patternf("OPTIONAL { %s wdt:P18 ?image . }", ref).
		String()
}

// Attributes compiles the fixed attribute battery (ISO3 code,
// population, area, capital, inception) as OPTIONAL patterns.
func (c *Compiler) Attributes(id string) string {
	ref := IRIRef(id)
	return NewBuilder("?iso3Code ?population ?area ?capital ?inception").
		Prefix("wdt", c.ns.WikidataProperty).
		Prefix("wd", c.ns.WikidataEntity).
		Prefix("rdfs", rdfsNS).
		Patternf("OPTIONAL { %s wdt:P298 ?iso3Code . }", ref).
		Patternf("OPTIONAL { %s wdt:P1082 ?population . }", ref).
		Patternf("OPTIONAL { %s wdt:P2046 ?area . }", ref).
		Patternf("OPTIONAL { %s wdt:P36 ?capital . }", ref).
		Patternf("OPTIONAL { %s wdt:P571 ?inception . }", ref).
		Limit(1).
		String()
}

// Label compiles the single-label lookup used to resolve entity-valued
// attributes such as the capital.
func (c *Compiler) Label(uri string) string {
	return NewBuilder("?label").
		Prefix("rdfs", rdfsNS).
		Patternf("%s rdfs:label ?label .", IRIRef(uri)).
		Limit(1).
		String()
}

// Related compiles the bidirectional "part of" lookup. The UNION
// deduplicates the two directions under DISTINCT.
func (c *Compiler) Related(id string, limit int) string {
	ref := IRIRef(id)
	return NewBuilder("?related ?label ?iso3Code").
		Distinct().
		Prefix("wdt", c.ns.WikidataProperty).
		Prefix("rdfs", rdfsNS).
		Union(
			[]string{fmt.Sprintf("%s wdt:P361 ?related .", ref)},
			[]string{fmt.Sprintf("?related wdt:P361 %s .", ref)},
		).
		Pattern("?related rdfs:label ?label .").
		Pattern("OPTIONAL { ?related wdt:P298 ?iso3Code . }").
		Limit(limit).
		String()
}

// HealthRecords compiles the per-location record query. Every
// indicator is OPTIONAL; a non-nil year adds a typed gYear equality
// filter. Results are ordered by year ascending.
func (c *Compiler) HealthRecords(locationID string, year *int) string {
	b := NewBuilder("*").
		Prefix("kgr", c.ns.Record).
		Prefix("kgp", c.ns.Property).
		Prefix("schema", schemaNS).
		Prefix("xsd", xsdNS).
		Pattern("?record a kgp:healthRecord ;").
		Patternf("        schema:location %s ;", IRIRef(locationID)).
		Pattern("        schema:year ?year .")
	if year != nil {
		b.Patternf(`FILTER(?year = "%d"^^xsd:gYear)`, *year)
	}
	for _, field := range healthIndicators {
		b.Patternf("OPTIONAL { ?record kgp:%s ?%s . }", field, field)
	}
	return b.OrderBy("?year").String()
}

// AvailableYears compiles the distinct-year query for one location.
func (c *Compiler) AvailableYears(locationID string) string {
	return NewBuilder("?year").
		Distinct().
		Prefix("kgp", c.ns.Property).
		Prefix("schema", schemaNS).
		Pattern("?record a kgp:healthRecord ;").
		Patternf("        schema:location %s ;", IRIRef(locationID)).
		Pattern("        schema:year ?year .").
		OrderBy("?year").
		String()
}
