package handler

import (
	"net/http"

	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/urgency"
	"github.com/vfg2006/procurement-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/procurement-dashboard-api/pkg/log"
)

// GetUrgentByDepartment retorna a contagem de pedidos urgentes por departamento.
// Em caso de falha responde 500 com o payload vazio, para o gráfico continuar renderizando.
func GetUrgentByDepartment(service urgency.UrgencyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("urgent-by-department: agregando pedidos urgentes por departamento")

		breakdown, err := service.AggregateUrgentByDepartment(r.Context())
		if err != nil {
			logger.WithError(err).Error("urgent-by-department: erro ao agregar pedidos urgentes")
			writeJSON(w, logger, http.StatusInternalServerError, domain.DepartmentBreakdown{
				Labels: []string{},
				Data:   []int{},
			})
			return
		}

		logger.WithFields(log.Fields{
			"urgent_departments": len(breakdown.Labels),
		}).Info("urgent-by-department: agregação concluída")

		writeJSON(w, logger, http.StatusOK, breakdown)
	})
}

// GetUrgentStatus retorna a série de status/SLA de pedidos urgentes (?granularity=daily|weekly|monthly)
func GetUrgentStatus(service urgency.UrgencyService, clock Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		granularity, err := domain.ParseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			logger.WithField("granularity", r.URL.Query().Get("granularity")).Warn("urgent-status: granularidade inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Granularidade inválida. Valores aceitos: daily, weekly, monthly", nil)
			return
		}

		logger.WithField("granularity", granularity).Info("urgent-status: calculando série de status")

		series, err := service.UrgentStatusSeries(r.Context(), granularity, clock())
		if err != nil {
			logger.WithError(err).WithField("granularity", granularity).Error("urgent-status: erro ao calcular série de status")
			writeJSON(w, logger, http.StatusInternalServerError, domain.EmptyUrgentSeries())
			return
		}

		writeJSON(w, logger, http.StatusOK, series)
	})
}

// GetUrgentKpis retorna os indicadores escalares do painel de urgentes
func GetUrgentKpis(service urgency.UrgencyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("urgent-kpis: calculando indicadores")

		kpis, err := service.ComputeUrgentKpis(r.Context())
		if err != nil {
			logger.WithError(err).Error("urgent-kpis: erro ao calcular indicadores")
			writeJSON(w, logger, http.StatusInternalServerError, domain.UrgentKpis{})
			return
		}

		logger.WithFields(log.Fields{
			"urgent_open":   kpis.OpenUrgent,
			"urgent_closed": kpis.ClosedUrgent,
		}).Info("urgent-kpis: indicadores calculados")

		writeJSON(w, logger, http.StatusOK, kpis)
	})
}
