package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/procurement-dashboard-api/internal/api/handler/router"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"report_running": false, "report_cron": "0 7 * * *"}
}

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{OverdueUrgentReportService: job})...))

	t.Run("Dispara o relatório de atrasados", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/v1/cron/overdue-urgent/run")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"message":"Cron job iniciada com sucesso","type":"overdue-urgent"}`, rec.Body.String())
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Tipo desconhecido é 400", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/v1/cron/meta/run")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Status", func(t *testing.T) {
		rec := serve(t, rt, http.MethodGet, "/v1/cron")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.JSONEq(t, `{"overdue-urgent":{"report_running":false,"report_cron":"0 7 * * *"}}`, rec.Body.String())
	})

	t.Run("Serviço ausente", func(t *testing.T) {
		empty := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

		rec := serve(t, empty, http.MethodPost, "/v1/cron/overdue-urgent/run")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		rec = serve(t, empty, http.MethodGet, "/v1/cron")
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := serve(t, rt, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
