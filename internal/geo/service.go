package geo

import (
	"context"
	"log/slog"

	"github.com/ayuwidi/gaung/internal/entity"
)

// Service answers map lookups: static marker coordinates plus
// store-backed country detail by ISO3 code.
type Service struct {
	entities *entity.Service
	logger   *slog.Logger
}

// NewService creates a map service.
func NewService(entities *entity.Service, logger *slog.Logger) *Service {
	return &Service{
		entities: entities,
		logger:   logger.With(slog.String("component", "geo")),
	}
}

// Coordinates returns marker positions for all countries. No store
// round trip is involved.
func (s *Service) Coordinates() []CountryCoordinates {
	return AllCoordinates()
}

// CountryByISO3 resolves a country entity from its ISO 3166-1 alpha-3
// code, or nil when unknown to the store.
func (s *Service) CountryByISO3(ctx context.Context, code string) (*entity.Entity, error) {
	return s.entities.GetByISO3(ctx, code)
}
