package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/procurement-dashboard-api/internal/api"
	"github.com/vfg2006/procurement-dashboard-api/internal/config"
	"github.com/vfg2006/procurement-dashboard-api/internal/scheduler"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/spending"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/urgency"
	"github.com/vfg2006/procurement-dashboard-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.SetLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewPurchaseOrderRepository(pgConn)
	departmentRepo := repository.NewDepartmentRepository(pgConn)

	urgencyService := urgency.NewService(orderRepo, departmentRepo)
	spendingService := spending.NewService(orderRepo)

	overdueReportService := scheduler.NewOverdueUrgentReportService(orderRepo, cfg)
	if err := overdueReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de pedidos urgentes atrasados")
	}

	server, err := api.New(cfg, urgencyService, spendingService, overdueReportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
