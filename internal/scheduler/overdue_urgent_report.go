package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/procurement-dashboard-api/internal/config"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"github.com/vfg2006/procurement-dashboard-api/pkg/utils"
)

// OverdueUrgentReportConfig representa a configuração do relatório de pedidos urgentes atrasados
type OverdueUrgentReportConfig struct {
	CronSchedule string
	Enabled      bool
	Location     *time.Location
}

// OverdueUrgentReportService agenda e executa o resumo diário de pedidos urgentes pendentes com prazo vencido
type OverdueUrgentReportService struct {
	scheduler        *gocron.Scheduler
	config           OverdueUrgentReportConfig
	orderRepo        repository.PurchaseOrderRepository
	now              func() time.Time
	reportRunning    bool
	reportMutex      sync.Mutex
	lastRunStartedAt time.Time
	lastReport       *domain.OverdueReport
	lastError        string
}

// NewOverdueUrgentReportService cria uma nova instância do serviço de relatório de atrasados
func NewOverdueUrgentReportService(
	orderRepo repository.PurchaseOrderRepository,
	appConfig *config.Config,
) *OverdueUrgentReportService {
	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	reportConfig := OverdueUrgentReportConfig{
		CronSchedule: appConfig.OverdueReport.CronSchedule,
		Enabled:      appConfig.OverdueReport.Enabled,
		Location:     location,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reportConfig.CronSchedule,
		"report_enabled": reportConfig.Enabled,
		"timezone":       location.String(),
	}).Info("Configuração do relatório de pedidos urgentes atrasados carregada")

	return &OverdueUrgentReportService{
		scheduler: gocron.NewScheduler(location),
		config:    reportConfig,
		orderRepo: orderRepo,
		now: func() time.Time {
			return time.Now().In(location)
		},
	}
}

// Start inicia o agendador
func (s *OverdueUrgentReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório de pedidos urgentes atrasados desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de pedidos urgentes atrasados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de pedidos urgentes atrasados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de pedidos urgentes atrasados")
		s.scheduler.Stop()
	}()

	return nil
}

// runReport é a execução protegida: se já houver uma em andamento, a nova é descartada
func (s *OverdueUrgentReportService) runReport(ctx context.Context) {
	s.reportMutex.Lock()
	if s.reportRunning {
		s.reportMutex.Unlock()
		logrus.Info("Relatório de pedidos urgentes atrasados já em andamento, ignorando")
		return
	}
	s.reportRunning = true
	s.lastRunStartedAt = s.now()
	s.reportMutex.Unlock()

	report, err := s.BuildReport(ctx)

	s.reportMutex.Lock()
	defer s.reportMutex.Unlock()
	s.reportRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao gerar relatório de pedidos urgentes atrasados")
		return
	}

	s.lastError = ""
	s.lastReport = report

	logrus.WithFields(logrus.Fields{
		"run_id":        report.RunID,
		"total_overdue": report.TotalOverdue,
		"by_department": report.ByDepartment,
	}).Info("Relatório de pedidos urgentes atrasados concluído")
}

// BuildReport lista os pedidos urgentes em aberto com needed_by vencido e agrupa por departamento
func (s *OverdueUrgentReportService) BuildReport(ctx context.Context) (*domain.OverdueReport, error) {
	now := s.now()

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da execução")
	}

	orders, err := s.orderRepo.ListOrders(ctx, domain.OrderFilter{
		Priority:       domain.PriorityUrgent,
		Statuses:       domain.PendingStatuses,
		NeededByBefore: &now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedidos urgentes atrasados")
	}

	report := &domain.OverdueReport{
		RunID:        runID,
		GeneratedAt:  now,
		TotalOverdue: len(orders),
		ByDepartment: make(map[string]int),
	}

	for _, order := range orders {
		department := order.DepartmentName
		if department == "" {
			department = domain.UnassignedLabel
		}
		report.ByDepartment[department]++

		if order.NeededBy != nil && (report.OldestDueAt == nil || order.NeededBy.Before(*report.OldestDueAt)) {
			oldest := *order.NeededBy
			report.OldestDueAt = &oldest
		}
	}

	return report, nil
}

// TriggerManualSync inicia manualmente uma execução do relatório
func (s *OverdueUrgentReportService) TriggerManualSync() {
	s.reportMutex.Lock()
	if s.reportRunning {
		s.reportMutex.Unlock()
		logrus.Info("Relatório de pedidos urgentes atrasados já em andamento, ignorando solicitação manual")
		return
	}
	s.reportMutex.Unlock()

	logrus.Info("Iniciando execução manual do relatório de pedidos urgentes atrasados")
	go s.runReport(context.Background())
}

// GetStatus retorna o status atual do relatório
func (s *OverdueUrgentReportService) GetStatus() map[string]any {
	s.reportMutex.Lock()
	defer s.reportMutex.Unlock()

	return map[string]any{
		"report_running":      s.reportRunning,
		"report_cron":         s.config.CronSchedule,
		"report_enabled":      s.config.Enabled,
		"last_run_started_at": s.lastRunStartedAt,
		"last_report":         s.lastReport,
		"last_error":          s.lastError,
	}
}
