package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/internal/api/itinerary"
	"github.com/roamplan/roamplan/internal/api/poi"
	"github.com/roamplan/roamplan/internal/types"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	source, err := poi.NewLocalSource()
	require.NoError(t, err)
	builder := poi.NewServiceImpl(source, logger)
	cache := itinerary.NewPlanCache(time.Hour, 10)
	service := itinerary.NewServiceImpl(builder, nil, nil, cache, nil, logger)
	handler := itinerary.NewHandlerImpl(service, logger)

	return SetupRouter(&Config{
		ItineraryHandler: handler,
		AllowedOrigins:   []string{"*"},
	})
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("ping", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pong", rr.Body.String())
	})

	t.Run("generate itinerary end to end", func(t *testing.T) {
		body := `{"city": "Tokyo", "days": 2, "pace": "balanced", "preferences": ["culture"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries/generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var plan types.Itinerary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
		assert.Equal(t, "Tokyo", plan.City)
		assert.Equal(t, types.SourceBaseline, plan.Source)
		assert.False(t, plan.LLMEnhanced)
		require.Len(t, plan.Days, 2)
		for _, day := range plan.Days {
			assert.NotEmpty(t, day.Activities)
			assert.Equal(t, "09:00", day.Activities[0].StartTime)
		}
	})

	t.Run("generate rejects GET", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/itineraries/generate", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("invalid payload is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries/generate", strings.NewReader(`{"city": "", "days": 0}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
