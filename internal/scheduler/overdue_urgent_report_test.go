package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/procurement-dashboard-api/internal/config"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestReportService(t *testing.T, now time.Time) (*OverdueUrgentReportService, *mocks.MockPurchaseOrderRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockOrderRepo := mocks.NewMockPurchaseOrderRepository(ctrl)

	service := NewOverdueUrgentReportService(mockOrderRepo, &config.Config{
		App:           config.App{Location: time.UTC},
		OverdueReport: config.OverdueReport{CronSchedule: "0 7 * * *"},
	})
	service.now = func() time.Time { return now }

	return service, mockOrderRepo
}

func TestOverdueUrgentReportService_BuildReport(t *testing.T) {
	now := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)
	oldest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Agrupa atrasados por departamento e guarda o prazo mais antigo", func(t *testing.T) {
		service, mockOrderRepo := newTestReportService(t, now)

		mockOrderRepo.EXPECT().
			ListOrders(gomock.Any(), domain.OrderFilter{
				Priority:       domain.PriorityUrgent,
				Statuses:       domain.PendingStatuses,
				NeededByBefore: &now,
			}).
			Return([]domain.PurchaseOrder{
				{ID: "PO1", DepartmentName: "Manutenção", NeededBy: &recent},
				{ID: "PO2", DepartmentName: "Manutenção", NeededBy: &oldest},
				{ID: "PO3", DepartmentName: "", NeededBy: &recent},
			}, nil)

		report, err := service.BuildReport(context.Background())
		require.NoError(t, err)

		assert.Len(t, report.RunID, 6)
		assert.Equal(t, now, report.GeneratedAt)
		assert.Equal(t, 3, report.TotalOverdue)
		assert.Equal(t, map[string]int{"Manutenção": 2, domain.UnassignedLabel: 1}, report.ByDepartment)
		require.NotNil(t, report.OldestDueAt)
		assert.Equal(t, oldest, *report.OldestDueAt)
	})

	t.Run("Sem atrasados", func(t *testing.T) {
		service, mockOrderRepo := newTestReportService(t, now)

		mockOrderRepo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return([]domain.PurchaseOrder{}, nil)

		report, err := service.BuildReport(context.Background())
		require.NoError(t, err)
		assert.Zero(t, report.TotalOverdue)
		assert.Empty(t, report.ByDepartment)
		assert.Nil(t, report.OldestDueAt)
	})
}

func TestOverdueUrgentReportService_runReport(t *testing.T) {
	now := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)

	t.Run("Guarda o último relatório no status", func(t *testing.T) {
		service, mockOrderRepo := newTestReportService(t, now)

		mockOrderRepo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return([]domain.PurchaseOrder{
			{ID: "PO1", DepartmentName: "TI"},
		}, nil)

		service.runReport(context.Background())

		status := service.GetStatus()
		assert.Equal(t, false, status["report_running"])
		assert.Equal(t, "0 7 * * *", status["report_cron"])
		assert.Equal(t, now, status["last_run_started_at"])
		assert.Equal(t, "", status["last_error"])

		report, ok := status["last_report"].(*domain.OverdueReport)
		require.True(t, ok)
		assert.Equal(t, 1, report.TotalOverdue)
	})

	t.Run("Falha mantém o relatório anterior e registra o erro", func(t *testing.T) {
		service, mockOrderRepo := newTestReportService(t, now)

		previous := &domain.OverdueReport{RunID: "abc123"}
		service.lastReport = previous

		mockOrderRepo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		service.runReport(context.Background())

		status := service.GetStatus()
		assert.Same(t, previous, status["last_report"])
		assert.Contains(t, status["last_error"], "db down")
	})

	t.Run("Execução em andamento descarta a nova", func(t *testing.T) {
		service, _ := newTestReportService(t, now)
		service.reportRunning = true

		// nenhuma chamada ao repositório é esperada
		service.runReport(context.Background())
		service.TriggerManualSync()

		assert.Equal(t, true, service.GetStatus()["report_running"])
	})
}

func TestOverdueUrgentReportService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _ := newTestReportService(t, time.Now())

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		service, _ := newTestReportService(t, time.Now())
		service.config.Enabled = true
		service.config.CronSchedule = "not a cron"

		err := service.Start(context.Background())
		assert.ErrorContains(t, err, "erro ao agendar")
	})
}
