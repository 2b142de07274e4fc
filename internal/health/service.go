package health

import (
	"context"
	"log/slog"

	"github.com/ayuwidi/gaung/internal/query"
	"github.com/ayuwidi/gaung/internal/sparql"
)

// Service answers health-record lookups against the store.
type Service struct {
	client   *sparql.Client
	compiler *query.Compiler
	logger   *slog.Logger
}

// NewService creates a health record service.
func NewService(client *sparql.Client, compiler *query.Compiler, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		compiler: compiler,
		logger:   logger.With(slog.String("component", "health")),
	}
}

// RecordsByLocation returns all health records for a location, ordered
// by year ascending. A non-nil year restricts to that year.
func (s *Service) RecordsByLocation(ctx context.Context, locationID string, year *int) ([]Record, error) {
	result, err := s.client.Select(ctx, s.compiler.HealthRecords(locationID, year))
	if err != nil {
		return nil, err
	}
	return decodeRecords(result, locationID), nil
}

// AvailableYears returns the ascending years with data for a location.
func (s *Service) AvailableYears(ctx context.Context, locationID string) ([]int, error) {
	result, err := s.client.Select(ctx, s.compiler.AvailableYears(locationID))
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, len(result.Bindings))
	for _, b := range result.Bindings {
		if y, ok := b.Int("year"); ok {
			years = append(years, y)
		}
	}
	return years, nil
}

// decodeRecords converts raw bindings into Records. Each of the
// indicator fields is decoded independently; a row missing id or year
// is dropped, but a record with no indicators at all is still emitted.
func decodeRecords(result *sparql.Result, locationID string) []Record {
	records := make([]Record, 0, len(result.Bindings))
	for _, b := range result.Bindings {
		id, ok := b.String("record")
		if !ok {
			continue
		}
		yr, ok := b.Int("year")
		if !ok {
			continue
		}

		rec := Record{
			ID:       id,
			Location: locationID,
			Year:     yr,

			HIVCases:          floatPtr(b, "hivCases"),
			MalariaCases:      floatPtr(b, "malariaCases"),
			RabiesCases:       floatPtr(b, "rabiesCases"),
			TuberculosisCases: floatPtr(b, "tuberculosisCases"),
			CholeraCases:      floatPtr(b, "choleraCases"),
			Guineaworm:        floatPtr(b, "guineaworm"),
			PolioCases:        floatPtr(b, "polioCases"),
			SmallpoxCases:     floatPtr(b, "smallpoxCases"),
			YawsCases:         floatPtr(b, "yawsCases"),

			BCG:       floatPtr(b, "bcg"),
			DTP3:      floatPtr(b, "dtp3"),
			HepB3:     floatPtr(b, "hepb3"),
			Hib3:      floatPtr(b, "hib3"),
			Measles1:  floatPtr(b, "measles1"),
			Polio3:    floatPtr(b, "polio3"),
			Rotavirus: floatPtr(b, "rotavirus"),
			Rubella1:  floatPtr(b, "rubella1"),

			PopulationAge0: floatPtr(b, "populationAge0"),
		}
		if err := rec.Validate(); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// floatPtr reads an optional numeric binding. Absent or uncoercible
// values decode to nil, never zero.
func floatPtr(b sparql.Binding, name string) *float64 {
	f, ok := b.Float(name)
	if !ok {
		return nil
	}
	return &f
}
