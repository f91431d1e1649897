package usecases

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/isonwater/internal/core/domain"
	"github.com/samirrijal/isonwater/internal/core/ports"
	"github.com/samirrijal/isonwater/internal/pkg/logging"
	"github.com/samirrijal/isonwater/internal/pkg/metrics"
	"github.com/samirrijal/isonwater/internal/pkg/telemetry"
)

// ClassifierService answers water/land questions against a land index.
type ClassifierService struct {
	land   ports.LandIndex
	tracer trace.Tracer
}

// NewClassifierService creates a new ClassifierService.
// A nil tracer falls back to the global service tracer.
func NewClassifierService(land ports.LandIndex, tracer trace.Tracer) *ClassifierService {
	if tracer == nil {
		tracer = telemetry.Tracer()
	}
	return &ClassifierService{land: land, tracer: tracer}
}

// Classify reports whether a single validated coordinate is on water.
func (s *ClassifierService) Classify(ctx context.Context, c domain.Coordinate) domain.Classification {
	_, span := s.startSpan(ctx, 1)
	result := s.classify(c)
	span.End()

	s.record(ctx, []domain.Classification{result})
	return result
}

// ClassifyBatch classifies every coordinate independently, preserving order.
func (s *ClassifierService) ClassifyBatch(ctx context.Context, cs []domain.Coordinate) []domain.Classification {
	_, span := s.startSpan(ctx, len(cs))
	results := make([]domain.Classification, 0, len(cs))
	for _, c := range cs {
		results = append(results, s.classify(c))
	}
	span.End()

	s.record(ctx, results)
	return results
}

// LandStats describes the index the service classifies against.
func (s *ClassifierService) LandStats() domain.LandStats {
	return s.land.Stats()
}

func (s *ClassifierService) classify(c domain.Coordinate) domain.Classification {
	return domain.Classification{
		Water: !s.land.Contains(c.Lat, c.Lon),
		Lat:   c.Lat,
		Lon:   c.Lon,
	}
}

func (s *ClassifierService) startSpan(ctx context.Context, count int) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, telemetry.SpanIsOnWater,
		trace.WithAttributes(attribute.Int(telemetry.AttrCount, count)))
}

func (s *ClassifierService) record(ctx context.Context, results []domain.Classification) {
	water := 0
	for _, r := range results {
		if r.Water {
			water++
		}
	}
	metrics.PointsClassified.WithLabelValues("water").Add(float64(water))
	metrics.PointsClassified.WithLabelValues("land").Add(float64(len(results) - water))
	metrics.BatchSize.Observe(float64(len(results)))

	logging.FromContext(ctx).Debug("classified points", "count", len(results), "water", water)
}
