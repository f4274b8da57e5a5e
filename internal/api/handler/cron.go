package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/procurement-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/procurement-dashboard-api/pkg/log"
)

// CronJobTypeOverdueUrgent identifica o relatório de pedidos urgentes atrasados
const CronJobTypeOverdueUrgent = "overdue-urgent"

// CronJob é o que o handler precisa de um serviço agendado
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	OverdueUrgentReportService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeOverdueUrgent:
			if services.OverdueUrgentReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório de atrasados não disponível", nil)
				return
			}
			services.OverdueUrgentReportService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: overdue-urgent", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		writeJSON(w, logger, http.StatusAccepted, response)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.OverdueUrgentReportService != nil {
			status[CronJobTypeOverdueUrgent] = services.OverdueUrgentReportService.GetStatus()
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
