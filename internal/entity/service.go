package entity

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/ayuwidi/gaung/internal/health"
	"github.com/ayuwidi/gaung/internal/query"
	"github.com/ayuwidi/gaung/internal/sparql"
)

const wikidataURIPrefix = "http://www.wikidata.org"

// Service answers entity search and detail lookups against the store.
type Service struct {
	client     *sparql.Client
	compiler   *query.Compiler
	classifier *Classifier
	healthSvc  *health.Service
	logger     *slog.Logger
}

// NewService creates an entity service.
func NewService(client *sparql.Client, compiler *query.Compiler, classifier *Classifier, healthSvc *health.Service, logger *slog.Logger) *Service {
	return &Service{
		client:     client,
		compiler:   compiler,
		classifier: classifier,
		healthSvc:  healthSvc,
		logger:     logger.With(slog.String("component", "entity")),
	}
}

// Search runs the paginated entity search. The SELECT and COUNT
// queries are independent round trips and run concurrently; either
// failure fails the call.
func (s *Service) Search(ctx context.Context, text, entityType string, page, pageSize int) ([]Entity, int, error) {
	offset := (page - 1) * pageSize

	var (
		entities []Entity
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.client.Select(gctx, s.compiler.Search(text, entityType, pageSize, offset))
		if err != nil {
			return err
		}
		entities = s.decodeEntities(result)
		return nil
	})
	g.Go(func() error {
		result, err := s.client.Select(gctx, s.compiler.SearchCount(text, entityType))
		if err != nil {
			return err
		}
		total = result.Count("count")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Suggestions returns autocomplete candidates. Queries shorter than
// two characters short-circuit to an empty result without a store
// round trip.
func (s *Service) Suggestions(ctx context.Context, text string, limit int) ([]Entity, error) {
	if utf8.RuneCountInString(text) < 2 {
		return []Entity{}, nil
	}
	entities, _, err := s.Search(ctx, text, "", 1, limit)
	return entities, err
}

// GetByID returns the entity with the given identifier, or nil when
// the store has no label for it.
func (s *Service) GetByID(ctx context.Context, id string) (*Entity, error) {
	result, err := s.client.Select(ctx, s.compiler.EntityByID(id))
	if err != nil {
		return nil, err
	}
	if len(result.Bindings) == 0 {
		return nil, nil
	}
	b := result.Bindings[0]
	label, _ := b.String("label")
	iso3, _ := b.String("iso3Code")
	return &Entity{
		ID:       id,
		Label:    label,
		Type:     s.classifier.Classify(id),
		ISO3Code: iso3,
	}, nil
}

// GetByISO3 returns the country entity carrying the given ISO 3166-1
// alpha-3 code, or nil.
func (s *Service) GetByISO3(ctx context.Context, code string) (*Entity, error) {
	result, err := s.client.Select(ctx, s.compiler.EntityByISO3(code))
	if err != nil {
		return nil, err
	}
	if len(result.Bindings) == 0 {
		return nil, nil
	}
	b := result.Bindings[0]
	id, _ := b.String("entity")
	label, _ := b.String("label")
	return &Entity{
		ID:       id,
		Label:    label,
		Type:     TypeCountry,
		ISO3Code: code,
	}, nil
}

// Related returns entities connected through the bidirectional
// "part of" relationship, capped at limit.
func (s *Service) Related(ctx context.Context, id string, limit int) ([]Entity, error) {
	result, err := s.client.Select(ctx, s.compiler.Related(id, limit))
	if err != nil {
		return nil, err
	}
	entities := make([]Entity, 0, len(result.Bindings))
	for _, b := range result.Bindings {
		rid, ok := b.String("related")
		if !ok {
			continue
		}
		label, ok := b.String("label")
		if !ok {
			continue
		}
		iso3, _ := b.String("iso3Code")
		entities = append(entities, Entity{
			ID:       rid,
			Label:    label,
			Type:     s.classifier.Classify(rid),
			ISO3Code: iso3,
		})
	}
	return entities, nil
}

// Info assembles the info-box view: basic fields, the attribute
// battery, related entities, and aggregated health metrics. The
// sub-queries after the basic lookup are data-independent and run
// concurrently; only the capital-label resolution is sequenced behind
// the attribute query whose result parameterizes it. Returns nil when
// the basic query has no rows.
func (s *Service) Info(ctx context.Context, id string) (*Info, error) {
	basic, err := s.client.Select(ctx, s.compiler.BasicInfo(id))
	if err != nil {
		return nil, err
	}
	if len(basic.Bindings) == 0 {
		return nil, nil
	}
	b := basic.Bindings[0]
	label, _ := b.String("label")
	description, _ := b.String("description")
	image, _ := b.String("image")

	var (
		attributes []Attribute
		related    []Entity
		metrics    *health.Metrics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attributes, err = s.attributes(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		related, err = s.Related(gctx, id, 10)
		return err
	})
	g.Go(func() error {
		records, err := s.healthSvc.RecordsByLocation(gctx, id, nil)
		if err != nil {
			return err
		}
		metrics = health.Aggregate(records)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	info := &Info{
		Entity: Entity{
			ID:    id,
			Label: label,
			Type:  s.classifier.Classify(id),
		},
		Description:   description,
		Image:         image,
		Attributes:    attributes,
		HealthMetrics: metrics,
		Related:       make([]Related, 0, len(related)),
		Sources:       []Source{wikidataSource(id)},
	}
	for _, e := range related {
		info.Related = append(info.Related, Related{
			Entity:            e,
			RelationshipType:  "partOf",
			RelationshipLabel: "Part of",
		})
	}
	return info, nil
}

// attributes runs the fixed attribute battery and decorates present
// values with display metadata. The capital is entity-valued, so its
// label is resolved by a dependent follow-up query.
func (s *Service) attributes(ctx context.Context, id string) ([]Attribute, error) {
	result, err := s.client.Select(ctx, s.compiler.Attributes(id))
	if err != nil {
		return nil, err
	}
	attributes := []Attribute{}
	if len(result.Bindings) == 0 {
		return attributes, nil
	}
	b := result.Bindings[0]

	if iso3, ok := b.String("iso3Code"); ok {
		attributes = append(attributes, Attribute{
			Property:      "http://www.wikidata.org/prop/direct/P298",
			PropertyLabel: "ISO 3166-1 alpha-3 code",
			Value:         iso3,
			ValueType:     ValueString,
		})
	}
	if population, ok := b.String("population"); ok {
		attributes = append(attributes, Attribute{
			Property:      "http://www.wikidata.org/prop/direct/P1082",
			PropertyLabel: "Population",
			Value:         population,
			ValueType:     ValueNumber,
			Unit:          "inhabitants",
		})
	}
	if capital, ok := b.String("capital"); ok {
		capitalLabel, err := s.entityLabel(ctx, capital)
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, Attribute{
			Property:      "http://www.wikidata.org/prop/direct/P36",
			PropertyLabel: "Capital",
			Value:         capital,
			ValueLabel:    capitalLabel,
			ValueType:     ValueEntity,
		})
	}
	if inception, ok := b.String("inception"); ok {
		// Truncate xsd:dateTime to the date part.
		if i := strings.Index(inception, "T"); i >= 0 {
			inception = inception[:i]
		}
		attributes = append(attributes, Attribute{
			Property:      "http://www.wikidata.org/prop/direct/P571",
			PropertyLabel: "Inception",
			Value:         inception,
			ValueType:     ValueDate,
		})
	}
	if area, ok := b.String("area"); ok {
		attributes = append(attributes, Attribute{
			Property:      "http://www.wikidata.org/prop/direct/P2046",
			PropertyLabel: "Area",
			Value:         area,
			ValueType:     ValueNumber,
			Unit:          "km²",
		})
	}
	return attributes, nil
}

// entityLabel resolves the label for an entity URI, falling back to
// the trailing upstream identifier when the store has no label.
func (s *Service) entityLabel(ctx context.Context, uri string) (string, error) {
	result, err := s.client.Select(ctx, s.compiler.Label(uri))
	if err != nil {
		return "", err
	}
	if len(result.Bindings) > 0 {
		if label, ok := result.Bindings[0].String("label"); ok {
			return label, nil
		}
	}
	if i := strings.LastIndex(uri, "/entity/"); i >= 0 {
		return uri[i+len("/entity/"):], nil
	}
	return "", nil
}

// decodeEntities converts search result bindings into entities. Rows
// without an identifier or label are dropped.
func (s *Service) decodeEntities(result *sparql.Result) []Entity {
	entities := make([]Entity, 0, len(result.Bindings))
	for _, b := range result.Bindings {
		id, ok := b.String("entity")
		if !ok {
			continue
		}
		label, ok := b.String("label")
		if !ok {
			continue
		}
		iso3, _ := b.String("iso3Code")
		entities = append(entities, Entity{
			ID:       id,
			Label:    label,
			Type:     s.classifier.Classify(id),
			ISO3Code: iso3,
		})
	}
	return entities
}

// wikidataSource builds the fixed provenance annotation. Only entities
// under the upstream namespace link back to it.
func wikidataSource(id string) Source {
	src := Source{Name: "Wikidata"}
	if strings.HasPrefix(id, wikidataURIPrefix) {
		src.URL = id
	}
	return src
}
