// Package health models per-location health records and their derived
// metric aggregates.
package health

import "fmt"

// Record is the flat health data for one location and year. Every
// indicator is a pointer: nil means the store had no triple for it,
// which is distinct from a recorded zero.
type Record struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Year     int    `json:"year"`

	// Disease cases
	HIVCases          *float64 `json:"hiv_cases,omitempty"`
	MalariaCases      *float64 `json:"malaria_cases,omitempty"`
	RabiesCases       *float64 `json:"rabies_cases,omitempty"`
	TuberculosisCases *float64 `json:"tuberculosis_cases,omitempty"`
	CholeraCases      *float64 `json:"cholera_cases,omitempty"`
	Guineaworm        *float64 `json:"guineaworm,omitempty"`
	PolioCases        *float64 `json:"polio_cases,omitempty"`
	SmallpoxCases     *float64 `json:"smallpox_cases,omitempty"`
	YawsCases         *float64 `json:"yaws_cases,omitempty"`

	// Vaccination coverage (one-year-olds)
	BCG       *float64 `json:"bcg,omitempty"`
	DTP3      *float64 `json:"dtp3,omitempty"`
	HepB3     *float64 `json:"hepb3,omitempty"`
	Hib3      *float64 `json:"hib3,omitempty"`
	Measles1  *float64 `json:"measles1,omitempty"`
	Polio3    *float64 `json:"polio3,omitempty"`
	Rotavirus *float64 `json:"rotavirus,omitempty"`
	Rubella1  *float64 `json:"rubella1,omitempty"`

	// Population
	PopulationAge0 *float64 `json:"population_age0,omitempty"`
}

// Validate reports construction-time invariant violations.
func (r *Record) Validate() error {
	if r.Year < 1900 || r.Year > 2100 {
		return fmt.Errorf("invalid year: %d", r.Year)
	}
	return nil
}

// Category groups metric items for display.
type Category string

// Metric categories.
const (
	CategoryDisease     Category = "disease"
	CategoryVaccination Category = "vaccination"
	CategoryPopulation  Category = "population"
)

// Indicator describes one record field: its stable key, display label,
// unit, category, and how to read it from a Record.
type Indicator struct {
	ID       string
	Label    string
	Unit     string
	Category Category
	value    func(*Record) *float64
}

// indicators is the fixed field table. Its order governs metric
// emission order, independent of store response order.
var indicators = []Indicator{
	{"hivCases", "HIV/AIDS Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.HIVCases }},
	{"malariaCases", "Malaria Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.MalariaCases }},
	{"rabiesCases", "Rabies Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.RabiesCases }},
	{"tuberculosisCases", "Tuberculosis Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.TuberculosisCases }},
	{"choleraCases", "Cholera Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.CholeraCases }},
	{"guineaworm", "Guinea Worm Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.Guineaworm }},
	{"polioCases", "Polio Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.PolioCases }},
	{"smallpoxCases", "Smallpox Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.SmallpoxCases }},
	{"yawsCases", "Yaws Cases", "cases", CategoryDisease, func(r *Record) *float64 { return r.YawsCases }},
	{"bcg", "BCG", "children", CategoryVaccination, func(r *Record) *float64 { return r.BCG }},
	{"dtp3", "DTP3", "children", CategoryVaccination, func(r *Record) *float64 { return r.DTP3 }},
	{"hepb3", "HepB3", "children", CategoryVaccination, func(r *Record) *float64 { return r.HepB3 }},
	{"hib3", "Hib3", "children", CategoryVaccination, func(r *Record) *float64 { return r.Hib3 }},
	{"measles1", "Measles (1st dose)", "children", CategoryVaccination, func(r *Record) *float64 { return r.Measles1 }},
	{"polio3", "Polio (3rd dose)", "children", CategoryVaccination, func(r *Record) *float64 { return r.Polio3 }},
	{"rotavirus", "Rotavirus (last dose)", "children", CategoryVaccination, func(r *Record) *float64 { return r.Rotavirus }},
	{"rubella1", "Rubella (1st dose)", "children", CategoryVaccination, func(r *Record) *float64 { return r.Rubella1 }},
	{"populationAge0", "Population Age 0", "people", CategoryPopulation, func(r *Record) *float64 { return r.PopulationAge0 }},
}

// Indicators returns the fixed indicator table in emission order.
func Indicators() []Indicator {
	return indicators
}
