package health

import "sort"

// MetricItem is one derived metric value: a present record field with
// its display metadata.
type MetricItem struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Value    float64  `json:"value"`
	Year     int      `json:"year"`
	Unit     string   `json:"unit,omitempty"`
	Category Category `json:"category"`
}

// Metrics is the pivoted aggregate over all records for one location.
type Metrics struct {
	DiseaseCases        []MetricItem `json:"disease_cases"`
	VaccinationCoverage []MetricItem `json:"vaccination_coverage"`
	Population          []MetricItem `json:"population"`
	AvailableYears      []int        `json:"available_years"`
}

// Aggregate pivots a record sequence into grouped metric series. It
// returns nil for empty input so callers can distinguish "no data"
// from "data with no indicators". Emission order is the fixed
// indicator order within each record, records in input order.
func Aggregate(records []Record) *Metrics {
	if len(records) == 0 {
		return nil
	}

	m := &Metrics{
		DiseaseCases:        []MetricItem{},
		VaccinationCoverage: []MetricItem{},
		Population:          []MetricItem{},
	}
	years := make(map[int]struct{})
	for i := range records {
		years[records[i].Year] = struct{}{}
	}

	// Field-major emission: each indicator's series is contiguous, with
	// records in input order inside it.
	for _, ind := range indicators {
		for i := range records {
			rec := &records[i]
			v := ind.value(rec)
			if v == nil {
				continue
			}
			item := MetricItem{
				ID:       ind.ID,
				Label:    ind.Label,
				Value:    *v,
				Year:     rec.Year,
				Unit:     ind.Unit,
				Category: ind.Category,
			}
			switch ind.Category {
			case CategoryDisease:
				m.DiseaseCases = append(m.DiseaseCases, item)
			case CategoryVaccination:
				m.VaccinationCoverage = append(m.VaccinationCoverage, item)
			case CategoryPopulation:
				m.Population = append(m.Population, item)
			}
		}
	}

	m.AvailableYears = make([]int, 0, len(years))
	for y := range years {
		m.AvailableYears = append(m.AvailableYears, y)
	}
	sort.Ints(m.AvailableYears)

	return m
}
