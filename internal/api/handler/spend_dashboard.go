package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/spending"
	"github.com/vfg2006/procurement-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/procurement-dashboard-api/pkg/log"
	"github.com/vfg2006/procurement-dashboard-api/pkg/utils"
)

// GetSpendSummary retorna o gasto por departamento e por fornecedor (?start_date=&end_date= no formato 2006-01-02)
func GetSpendSummary(service spending.SpendingService, clock Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		location := clock().Location()

		start, err := utils.ParseDate(startDate, location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida. Use o formato AAAA-MM-DD", nil)
			return
		}

		end, err := utils.ParseDate(endDate, location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida. Use o formato AAAA-MM-DD", nil)
			return
		}

		filters := domain.SpendFilters{StartDate: start, EndDate: end}

		logger.WithFields(log.Fields{
			"start_date": startDate,
			"end_date":   endDate,
		}).Info("spend: calculando gastos por departamento e fornecedor")

		summary, err := service.SpendSummary(r.Context(), filters)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidPeriod) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("spend: erro ao calcular gastos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular gastos", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

// GetSpendSeries retorna o gasto por intervalo de tempo
func GetSpendSeries(service spending.SpendingService, clock Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		granularity, err := domain.ParseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Granularidade inválida. Valores aceitos: daily, weekly, monthly", nil)
			return
		}

		logger.WithField("granularity", granularity).Info("spend-series: calculando série de gastos")

		series, err := service.SpendSeries(r.Context(), granularity, clock())
		if err != nil {
			logger.WithError(err).Error("spend-series: erro ao calcular série de gastos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular série de gastos", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, series)
	})
}
