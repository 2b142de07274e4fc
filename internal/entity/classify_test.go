package entity

import "testing"

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier("http://kg.gaung.org/entity/")

	tests := []struct {
		name string
		id   string
		want Type
	}{
		{"custom namespace is region", "http://kg.gaung.org/entity/southeast-asia", TypeRegion},
		{"upstream Q id is country", "http://www.wikidata.org/entity/Q252", TypeCountry},
		{"bare Q id is country", "Q252", TypeCountry},
		{"no Q id is organization", "http://example.org/entity/who", TypeOrganization},
		{"https upstream Q id is country", "https://upstream.example/entity/Q252", TypeCountry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.id); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

func TestClassifier_EmptyCustomNamespace(t *testing.T) {
	c := NewClassifier("")
	if got := c.Classify("http://kg.gaung.org/entity/java"); got == TypeRegion {
		t.Error("without a custom namespace nothing should classify as region")
	}
}

func TestEntity_Validate(t *testing.T) {
	e := Entity{ID: "http://www.wikidata.org/entity/Q252", Label: "Indonesia", Type: TypeCountry}
	if err := e.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := (&Entity{Label: "x"}).Validate(); err == nil {
		t.Error("expected error for missing ID")
	}
	if err := (&Entity{ID: "x"}).Validate(); err == nil {
		t.Error("expected error for missing label")
	}
}
