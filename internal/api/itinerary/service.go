package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/roamplan/roamplan/app/observability/metrics"
	"github.com/roamplan/roamplan/internal/api/poi"
	"github.com/roamplan/roamplan/internal/types"
)

// ErrInvalidRequest is the only error GenerateItinerary surfaces to
// callers; every upstream or LLM failure degrades into the itinerary's
// source/notice fields instead.
var ErrInvalidRequest = errors.New("invalid itinerary request")

// Request defaults applied before fingerprinting, so implicit and
// explicit defaults share a cache entry.
const (
	defaultPace      = poi.PaceBalanced
	defaultTransport = "driving"
	defaultPriority  = "efficiency"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the planning pipeline's single entry point.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.Itinerary, error)
}

// ServiceImpl runs baseline building, hotel lookup, AI enrichment and
// caching. Concurrent identical requests are coalesced behind one
// pipeline execution.
type ServiceImpl struct {
	logger      *slog.Logger
	builder     poi.Service
	hotelSource poi.HotelSource // optional, may be nil
	enricher    *Enricher
	cache       *PlanCache
	group       singleflight.Group
	appMetrics  *metrics.AppMetrics // optional, may be nil
}

func NewServiceImpl(builder poi.Service, hotelSource poi.HotelSource, enricher *Enricher,
	cache *PlanCache, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		builder:     builder,
		hotelSource: hotelSource,
		enricher:    enricher,
		cache:       cache,
		appMetrics:  appMetrics,
	}
}

// GenerateItinerary validates the request, then serves the plan from
// cache or runs the full pipeline on a miss. It never fails for missing
// upstream data; only an invalid request yields an error.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary")
	defer span.End()

	req = normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("city", req.City), attribute.Int("days", req.Days))

	start := time.Now()
	if s.appMetrics != nil {
		s.appMetrics.ItineraryRequestsTotal.Add(ctx, 1)
		defer func() {
			s.appMetrics.PipelineDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}()
	}

	key := Fingerprint(req)
	span.SetAttributes(attribute.String("cache.key", key))

	if plan, _, ok := s.cache.Get(key); ok {
		s.logger.InfoContext(ctx, "Plan served from cache", slog.String("cache_key", key))
		span.AddEvent("Cache hit")
		span.SetStatus(codes.Ok, "Plan served from cache")
		if s.appMetrics != nil {
			s.appMetrics.CacheHitsTotal.Add(ctx, 1)
		}
		return &plan, nil
	}
	if s.appMetrics != nil {
		s.appMetrics.CacheMissesTotal.Add(ctx, 1)
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		// A concurrent request may have finished the pipeline while this
		// one waited on the flight group.
		if plan, _, ok := s.cache.Get(key); ok {
			return plan, nil
		}
		plan, pm := s.runPipeline(ctx, req)
		s.cache.Put(key, plan, pm)
		return plan, nil
	})
	if err != nil {
		// The pipeline itself never errors; keep the branch for safety.
		span.RecordError(err)
		return nil, fmt.Errorf("pipeline execution failed: %w", err)
	}
	if shared {
		span.AddEvent("Coalesced with in-flight identical request")
	}

	plan := v.(types.Itinerary).Clone()
	span.SetStatus(codes.Ok, "Plan generated")
	return &plan, nil
}

func (s *ServiceImpl) runPipeline(ctx context.Context, req types.TripRequest) (types.Itinerary, PipelineMetrics) {
	pm := PipelineMetrics{}

	baselineStart := time.Now()
	base := s.builder.BuildBaseline(ctx, req)
	pm.BaselineDuration = time.Since(baselineStart)

	hotels := s.searchHotels(ctx, req)

	var final types.Itinerary
	if s.enricher.Enabled() {
		enrichStart := time.Now()
		final, pm.LLMCalls = s.enricher.Enrich(ctx, req, base, hotels)
		pm.EnrichDuration = time.Since(enrichStart)
		if s.appMetrics != nil && pm.LLMCalls > 0 {
			s.appMetrics.LLMCallsTotal.Add(ctx, int64(pm.LLMCalls))
		}
	} else {
		s.logger.DebugContext(ctx, "No LLM backend configured, returning baseline",
			slog.String("city", req.City))
		final = base
		attachHotels(&final, hotels)
	}

	final.ID = uuid.New()
	s.logger.InfoContext(ctx, "Pipeline completed",
		slog.String("city", req.City),
		slog.String("source", final.Source),
		slog.Int("llm_calls", pm.LLMCalls),
		slog.Duration("baseline_duration", pm.BaselineDuration),
		slog.Duration("enrich_duration", pm.EnrichDuration))
	return final, pm
}

func (s *ServiceImpl) searchHotels(ctx context.Context, req types.TripRequest) []types.Hotel {
	if s.hotelSource == nil {
		return nil
	}
	checkIn := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 7+req.Days).Format("2006-01-02")
	hotels, err := s.hotelSource.SearchHotels(ctx, req.City, checkIn, checkOut, 2, 1)
	if err != nil {
		s.logger.WarnContext(ctx, "Hotel search failed, continuing without hotels",
			slog.String("city", req.City), slog.Any("error", err))
		return nil
	}
	return hotels
}

func normalizeRequest(req types.TripRequest) types.TripRequest {
	req.City = strings.TrimSpace(req.City)
	if strings.TrimSpace(req.Pace) == "" {
		req.Pace = defaultPace
	}
	if strings.TrimSpace(req.TransportMode) == "" {
		req.TransportMode = defaultTransport
	}
	if strings.TrimSpace(req.Priority) == "" {
		req.Priority = defaultPriority
	}
	return req
}

func validateRequest(req types.TripRequest) error {
	if req.City == "" {
		return fmt.Errorf("%w: city must not be empty", ErrInvalidRequest)
	}
	if req.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidRequest, req.Days)
	}
	return nil
}
