package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/procurement-dashboard-api/internal/config"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	spendingmocks "github.com/vfg2006/procurement-dashboard-api/internal/usecases/spending/mocks"
	urgencymocks "github.com/vfg2006/procurement-dashboard-api/internal/usecases/urgency/mocks"
	"github.com/vfg2006/procurement-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	urgencyService := urgencymocks.NewMockUrgencyService(ctrl)
	spendingService := spendingmocks.NewMockSpendingService(ctrl)

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPaulo = time.FixedZone("BRT", -3*60*60)
	}

	cfg := &config.Config{
		App:  config.App{Location: saoPaulo},
		Cors: config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	h := NewHandler(cfg, urgencyService, spendingService, nil)

	t.Run("Passa pela cadeia de middlewares", func(t *testing.T) {
		urgencyService.EXPECT().
			ComputeUrgentKpis(gomock.Any()).
			Return(&domain.UrgentKpis{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/urgent/kpis", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("Série ancorada no fuso configurado", func(t *testing.T) {
		urgencyService.EXPECT().
			UrgentStatusSeries(gomock.Any(), domain.GranularityMonthly, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Granularity, now time.Time) (*domain.UrgentSeries, error) {
				assert.Equal(t, saoPaulo, now.Location())
				return domain.EmptyUrgentSeries(), nil
			})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/urgent/status", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/spend", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_004")
	})

	t.Run("Método não suportado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/dashboard/spend", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_005")
	})
}
