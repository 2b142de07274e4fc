package entity

import "strings"

// Classifier assigns an entity type from the shape of an identifier.
// The store does not return a type for most rows, so this heuristic
// fills the gap: identifiers under the application's own namespace are
// synthetic regional aggregates, and everything else defaults to
// country unless a Q-style upstream id is absent. Known approximation:
// a non-custom identifier that is not an upstream country still
// classifies as country.
type Classifier struct {
	customNS string
}

// NewClassifier creates a Classifier for the application's entity
// namespace.
func NewClassifier(customNS string) *Classifier {
	return &Classifier{customNS: customNS}
}

// Classify returns the heuristic type for an identifier.
func (c *Classifier) Classify(id string) Type {
	if c.customNS != "" && strings.HasPrefix(id, c.customNS) {
		return TypeRegion
	}
	if strings.Contains(id, "Q") {
		return TypeCountry
	}
	return TypeOrganization
}
