package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"walkroute/config"
	"walkroute/internal/delivery/api/router"
	"walkroute/internal/delivery/api/router/handler"
	deliverycontext "walkroute/internal/delivery/context"
	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"
	"walkroute/internal/infra/render"
	mockUsecase "walkroute/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*mockUsecase.MockPlannerUsecase, http.Handler) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	planner := mockUsecase.NewMockPlannerUsecase(t)
	isochrones := mockUsecase.NewMockIsochroneUsecase(t)
	renderer := render.NewRenderer(cfg.Render, logger)

	e := newEcho(cfg, logger, router.RouterParams{
		PlanHandler: handler.NewPlanHandler(handler.PlanHandlerParams{
			PlannerUC: planner, Renderer: renderer, Logger: logger,
		}),
		IsochroneHandler: handler.NewIsochroneHandler(handler.IsochroneHandlerParams{
			IsochroneUC: isochrones, Renderer: renderer, Logger: logger,
		}),
	})

	return planner, e
}

func TestServer_Health(t *testing.T) {
	_, srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_PlanErrorCarriesRequestID(t *testing.T) {
	planner, srv := newTestServer(t)

	planner.EXPECT().
		Plan(mock.Anything, entity.Location{Lng: 2.35, Lat: 48.85}, entity.DurationMinutes(30)).
		Return(nil, domainerrors.NewProviderError("directions", http.StatusTooManyRequests, "", nil)).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/routes/plan?lng=2.35&lat=48.85&minutes=30", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)
	assert.Contains(t, rec.Body.String(), "PROVIDER_ERROR")
}

func TestServer_UnknownRoute(t *testing.T) {
	_, srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
