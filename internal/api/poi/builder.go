package poi

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/roamplan/roamplan/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service builds the deterministic baseline itinerary.
type Service interface {
	BuildBaseline(ctx context.Context, req types.TripRequest) types.Itinerary
}

// ServiceImpl drives the day scheduler across the trip, cycling the POI
// pool so a small pool is reused rather than exhausted.
type ServiceImpl struct {
	logger *slog.Logger
	source Source
}

func NewServiceImpl(source Source, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		source: source,
	}
}

// BuildBaseline always returns a structurally valid itinerary: real data
// produces a baseline schedule, missing data a placeholder one. Source
// errors are downgraded to "no data".
func (s *ServiceImpl) BuildBaseline(ctx context.Context, req types.TripRequest) types.Itinerary {
	ctx, span := otel.Tracer("POIService").Start(ctx, "BuildBaseline")
	defer span.End()
	span.SetAttributes(attribute.String("city", req.City), attribute.Int("days", req.Days))

	pois, err := s.source.SearchAttractions(ctx, req.City, req.Preferences)
	if err != nil {
		s.logger.WarnContext(ctx, "POI source failed, falling back to placeholder itinerary",
			slog.String("city", req.City), slog.Any("error", err))
		pois = nil
	}

	if len(pois) == 0 {
		span.AddEvent("no POI data, building placeholder")
		return s.buildPlaceholder(req)
	}

	profile := ProfileFor(req.Pace)
	it := types.Itinerary{
		City:          req.City,
		TotalDays:     req.Days,
		Pace:          req.Pace,
		TransportMode: req.TransportMode,
		Source:        types.SourceBaseline,
		Days:          make([]types.DayPlan, 0, req.Days),
	}

	poiIndex := 0
	for day := 1; day <= req.Days; day++ {
		dayPOIs := make([]types.POI, 0, profile.ActivitiesPerDay)
		for i := 0; i < profile.ActivitiesPerDay; i++ {
			dayPOIs = append(dayPOIs, pois[poiIndex%len(pois)])
			poiIndex++
		}
		activities := ScheduleDay(dayPOIs, req.City, req.Pace, req.TransportMode)
		it.Days = append(it.Days, types.DayPlan{
			DayNumber:   day,
			Description: fmt.Sprintf("Day %d covers %d stops around %s.", day, len(activities), req.City),
			Activities:  activities,
		})
	}

	s.logger.DebugContext(ctx, "Built baseline itinerary",
		slog.String("city", req.City), slog.Int("days", req.Days), slog.Int("pois", len(pois)))
	return it
}

func (s *ServiceImpl) buildPlaceholder(req types.TripRequest) types.Itinerary {
	profile := ProfileFor(req.Pace)
	activityType := "culture"
	if len(req.Preferences) > 0 && req.Preferences[0] != "" {
		activityType = req.Preferences[0]
	}

	it := types.Itinerary{
		City:          req.City,
		TotalDays:     req.Days,
		Pace:          req.Pace,
		TransportMode: req.TransportMode,
		Source:        types.SourcePlaceholder,
		Notice: fmt.Sprintf("No attraction data was available for %s; this is a generic outline. "+
			"Treat names and times as suggestions.", req.City),
		Days: make([]types.DayPlan, 0, req.Days),
	}

	for day := 1; day <= req.Days; day++ {
		activities := make([]types.Activity, 0, profile.ActivitiesPerDay)
		for i := 0; i < profile.ActivitiesPerDay; i++ {
			start := (9 + i*3) * 60
			activities = append(activities, types.Activity{
				Name:            fmt.Sprintf("%s highlight %d-%d", req.City, day, i+1),
				Type:            activityType,
				StartTime:       formatClock(start),
				EndTime:         formatClock(start + 180),
				DurationMinutes: 180,
				Description:     fmt.Sprintf("A well known stop in %s worth an unhurried visit.", req.City),
				Rating:          4.5,
				PriceRange:      "$$",
				PriceEstimate:   float64(50 * (i + 1)),
				Tags:            []string{"recommended", "popular"},
				Order:           i + 1,
			})
		}
		it.Days = append(it.Days, types.DayPlan{
			DayNumber:     day,
			Description:   fmt.Sprintf("Day %d: a flexible outline for %s.", day, req.City),
			Activities:    activities,
			IsPlaceholder: true,
		})
	}

	return it
}
