package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/procurement-dashboard-api/internal/api/handler"
	"github.com/vfg2006/procurement-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/procurement-dashboard-api/internal/config"
	"github.com/vfg2006/procurement-dashboard-api/internal/scheduler"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/spending"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/urgency"
	"github.com/vfg2006/procurement-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/procurement-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	urgencyService urgency.UrgencyService,
	spendingService spending.SpendingService,
	overdueReportService *scheduler.OverdueUrgentReportService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, urgencyService, spendingService, overdueReportService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais (panic → logging → CORS)
func NewHandler(
	config *config.Config,
	urgencyService urgency.UrgencyService,
	spendingService spending.SpendingService,
	overdueReportService *scheduler.OverdueUrgentReportService,
) http.Handler {
	location := config.App.Location
	if location == nil {
		location = time.UTC
	}
	clock := handler.ClockIn(location)

	cronServices := handler.CronJobServices{}
	if overdueReportService != nil {
		cronServices.OverdueUrgentReportService = overdueReportService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.UrgentDashboard(urgencyService, clock)...),
		router.WithRoutes(handler.SpendDashboard(spendingService, clock)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", r.URL.Path)
		})),
		router.WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", r.Method)
		})),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
