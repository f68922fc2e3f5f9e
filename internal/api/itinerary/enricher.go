package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	generativeAI "github.com/roamplan/roamplan/internal/api/generative_ai"
	"github.com/roamplan/roamplan/internal/types"
)

const (
	metaTemperature = 0.65
	dayTemperature  = 0.7
)

// Enricher runs the two-stage LLM enhancement: one trip-level meta pass,
// then one detail pass per day. Every stage is independently fallible and
// every failure degrades to a defined non-AI result; Enrich never returns
// an error.
type Enricher struct {
	logger *slog.Logger
	client generativeAI.Client
}

func NewEnricher(client generativeAI.Client, logger *slog.Logger) *Enricher {
	return &Enricher{logger: logger, client: client}
}

// Enabled reports whether an LLM backend is configured.
func (e *Enricher) Enabled() bool {
	return e != nil && e.client != nil
}

// Enrich returns the enriched itinerary and the number of LLM calls made.
// A meta-pass failure aborts enrichment and returns the baseline copy
// with source "fallback"; a detail-pass failure degrades only that day.
func (e *Enricher) Enrich(ctx context.Context, req types.TripRequest, base types.Itinerary, hotels []types.Hotel) (types.Itinerary, int) {
	ctx, span := otel.Tracer("AIEnricher").Start(ctx, "Enrich")
	defer span.End()
	span.SetAttributes(attribute.String("city", req.City), attribute.Int("days", len(base.Days)))

	calls := 0

	meta, err := e.metaPass(ctx, req, base, hotels)
	calls++
	if err != nil {
		e.logger.ErrorContext(ctx, "Meta pass failed, returning baseline as fallback",
			slog.String("city", req.City), slog.Any("error", err))
		span.RecordError(err)

		fallback := base.Clone()
		fallback.Source = types.SourceFallback
		fallback.LLMEnhanced = false
		fallback.Notice = "AI enhancement was unavailable; showing the scheduled draft."
		attachHotels(&fallback, hotels)
		return fallback, calls
	}

	plan := aiPlan{
		City:          meta.City,
		Summary:       meta.Summary,
		Pace:          meta.Pace,
		TransportMode: meta.TransportMode,
		Tips:          meta.Tips,
	}
	highlightByDay := make(map[int]string, len(meta.Days))
	for _, h := range meta.Days {
		highlightByDay[h.DayNumber] = h.Highlight
	}

	// Detail passes run sequentially in day-number order; a failed day
	// keeps its baseline activities with defaults filled in.
	working := base.Clone()
	failedDays := 0
	for i := range working.Days {
		day := working.Days[i]
		detail, err := e.dayPass(ctx, base.City, day)
		calls++
		if err != nil {
			e.logger.WarnContext(ctx, "Detail pass failed, keeping baseline day",
				slog.Int("day", day.DayNumber), slog.Any("error", err))
			failedDays++
			defaultEnhanceDay(&working.Days[i], highlightByDay[day.DayNumber])
			continue
		}
		if detail.DayNumber == 0 {
			detail.DayNumber = day.DayNumber
		}
		if detail.Theme == "" {
			detail.Theme = highlightByDay[day.DayNumber]
		}
		plan.Days = append(plan.Days, detail)
	}

	merged := Merge(working, plan, hotels)
	merged.Source = types.SourceLLMSplit
	merged.LLMEnhanced = true
	if failedDays > 0 {
		merged.Notice = fmt.Sprintf("%d day(s) could not be AI-enhanced and use the scheduled draft.", failedDays)
	}
	for i := range merged.Days {
		for j := range merged.Days[i].Activities {
			ensureActivityDefaults(&merged.Days[i].Activities[j])
		}
	}

	span.SetAttributes(attribute.Int("llm.calls", calls), attribute.Int("days.failed", failedDays))
	return merged, calls
}

func (e *Enricher) metaPass(ctx context.Context, req types.TripRequest, base types.Itinerary, hotels []types.Hotel) (metaResponse, error) {
	raw, err := e.client.Chat(ctx, []generativeAI.Message{
		{Role: generativeAI.RoleSystem, Content: metaSystemPrompt},
		{Role: generativeAI.RoleUser, Content: buildMetaPrompt(req, base, hotels)},
	}, metaTemperature, true)
	if err != nil {
		return metaResponse{}, fmt.Errorf("meta pass chat failed: %w", err)
	}

	meta, err := parseMetaResponse(raw)
	if err != nil {
		e.logger.DebugContext(ctx, "Unparseable meta response", slog.String("raw", truncate(raw, 500)))
		return metaResponse{}, err
	}
	return meta, nil
}

func (e *Enricher) dayPass(ctx context.Context, city string, day types.DayPlan) (dayResponse, error) {
	raw, err := e.client.Chat(ctx, []generativeAI.Message{
		{Role: generativeAI.RoleSystem, Content: daySystemPrompt},
		{Role: generativeAI.RoleUser, Content: buildDayPrompt(city, day)},
	}, dayTemperature, true)
	if err != nil {
		return dayResponse{}, fmt.Errorf("detail pass chat failed for day %d: %w", day.DayNumber, err)
	}

	detail, err := parseDayResponse(raw)
	if err != nil {
		e.logger.DebugContext(ctx, "Unparseable day response",
			slog.Int("day", day.DayNumber), slog.String("raw", truncate(raw, 500)))
		return dayResponse{}, err
	}
	return detail, nil
}

// defaultEnhanceDay is the non-AI fallback for a single day: it backfills
// the fields the detail pass would have polished without inventing new
// content.
func defaultEnhanceDay(day *types.DayPlan, highlight string) {
	if day.Theme == "" && highlight != "" {
		day.Theme = highlight
	}
	for i := range day.Activities {
		act := &day.Activities[i]
		if act.Description == "" {
			act.Description = fmt.Sprintf("%s is worth a visit.", act.Name)
		}
		ensureActivityDefaults(act)
	}
}

func attachHotels(it *types.Itinerary, hotels []types.Hotel) {
	if len(hotels) == 0 {
		return
	}
	n := len(hotels)
	if n > 5 {
		n = 5
	}
	it.RecommendedHotels = append([]types.Hotel(nil), hotels[:n]...)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
