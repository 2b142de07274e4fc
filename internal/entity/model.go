// Package entity models the knowledge graph's geopolitical entities
// and implements their store-backed lookups.
package entity

import (
	"fmt"

	"github.com/ayuwidi/gaung/internal/health"
)

// Type classifies an entity within the graph.
type Type string

// Known entity types.
const (
	TypeCountry      Type = "country"
	TypeRegion       Type = "region"
	TypeOrganization Type = "organization"
	TypeDivision     Type = "division"
)

// Entity is a country, region, or organization node in the graph.
// Value object, rebuilt fresh per request.
type Entity struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     Type   `json:"type"`
	ISO3Code string `json:"iso3_code,omitempty"`
}

// Validate reports construction-time invariant violations.
func (e *Entity) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entity ID cannot be empty")
	}
	if e.Label == "" {
		return fmt.Errorf("entity label cannot be empty")
	}
	return nil
}

// AttributeValueType tags how an attribute value should be rendered.
type AttributeValueType string

// Attribute value types.
const (
	ValueString AttributeValueType = "string"
	ValueNumber AttributeValueType = "number"
	ValueDate   AttributeValueType = "date"
	ValueURI    AttributeValueType = "uri"
	ValueEntity AttributeValueType = "entity"
)

// Attribute is one property of an entity with display metadata.
type Attribute struct {
	Property      string             `json:"property"`
	PropertyLabel string             `json:"property_label"`
	Value         string             `json:"value"`
	ValueLabel    string             `json:"value_label,omitempty"`
	ValueType     AttributeValueType `json:"value_type"`
	Unit          string             `json:"unit,omitempty"`
}

// Related is an entity connected through a named relationship.
type Related struct {
	Entity
	RelationshipType  string `json:"relationship_type"`
	RelationshipLabel string `json:"relationship_label"`
	Description       string `json:"description,omitempty"`
}

// Source is a provenance annotation for entity data.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Date string `json:"date,omitempty"`
}

// Info is the aggregate detail ("info box") view of an entity.
type Info struct {
	Entity
	Description   string          `json:"description,omitempty"`
	Image         string          `json:"image,omitempty"`
	Attributes    []Attribute     `json:"attributes"`
	HealthMetrics *health.Metrics `json:"health_metrics,omitempty"`
	Related       []Related       `json:"related_entities"`
	Sources       []Source        `json:"sources"`
}
