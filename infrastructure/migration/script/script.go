package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/procurement-dashboard-api/internal/config"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"github.com/vfg2006/procurement-dashboard-api/pkg/utils"
)

// Número de pedidos de demonstração espalhados pelos últimos seis meses
const seedOrders = 240

var schema = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id   VARCHAR(16) PRIMARY KEY,
		name VARCHAR(120) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		id   VARCHAR(16) PRIMARY KEY,
		name VARCHAR(120) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id            VARCHAR(16) PRIMARY KEY,
		department_id VARCHAR(16) NULL REFERENCES departments(id),
		needed_by     TIMESTAMPTZ NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rfqs (
		id         VARCHAR(16) PRIMARY KEY,
		request_id VARCHAR(16) NULL REFERENCES requests(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id         VARCHAR(16) PRIMARY KEY,
		rfq_id     VARCHAR(16) NOT NULL REFERENCES rfqs(id),
		vendor_id  VARCHAR(16) NULL REFERENCES vendors(id),
		priority   VARCHAR(10) NOT NULL DEFAULT 'Normal',
		status     VARCHAR(10) NOT NULL DEFAULT 'OPEN',
		total      NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchase_orders_priority_created ON purchase_orders (priority, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_purchase_orders_status ON purchase_orders (status)`,
}

var (
	departmentNames = []string{"Manutenção", "Produção", "Almoxarifado", "Qualidade", "TI"}
	vendorNames     = []string{"Acme Industrial", "Rolamentos Sul", "Eletro Peças", "Química Norte"}
	priorities      = []domain.Priority{domain.PriorityLow, domain.PriorityNormal, domain.PriorityHigh, domain.PriorityUrgent}
	statuses        = []domain.OrderStatus{
		domain.OrderStatusOpen,
		domain.OrderStatusPartial,
		domain.OrderStatusReceived,
		domain.OrderStatusClosed,
		domain.OrderStatusCancelled,
	}
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de criação do schema e carga de demonstração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	if err := seed(ctx, tx, time.Now().In(cfg.App.Location)); err != nil {
		logrus.WithError(err).Error("Erro na carga, revertendo transação")
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Fatal("Erro ao reverter transação")
		}
		return
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar transação")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Carga de demonstração concluída")
}

func seed(ctx context.Context, tx *sql.Tx, now time.Time) error {
	for _, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	logrus.Info("Schema criado")

	departmentIDs, err := insertNamed(ctx, tx, "departments", departmentNames)
	if err != nil {
		return err
	}

	vendorIDs, err := insertNamed(ctx, tx, "vendors", vendorNames)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(now.Year()), uint64(now.YearDay())))
	oldest := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())
	window := now.Sub(oldest)

	for i := 0; i < seedOrders; i++ {
		createdAt := oldest.Add(time.Duration(rng.Int64N(int64(window))))

		// parte das requisições sem departamento e sem prazo, para exercitar o "Unassigned"
		var departmentID, neededBy any
		if rng.IntN(10) > 0 {
			departmentID = departmentIDs[rng.IntN(len(departmentIDs))]
		}
		if rng.IntN(5) > 0 {
			neededBy = createdAt.AddDate(0, 0, 3+rng.IntN(20))
		}

		requestID, err := insertRow(ctx, tx, "requests", []string{"department_id", "needed_by", "created_at"}, departmentID, neededBy, createdAt)
		if err != nil {
			return err
		}

		rfqID, err := insertRow(ctx, tx, "rfqs", []string{"request_id", "created_at"}, requestID, createdAt)
		if err != nil {
			return err
		}

		var vendorID any
		if rng.IntN(8) > 0 {
			vendorID = vendorIDs[rng.IntN(len(vendorIDs))]
		}

		status := statuses[rng.IntN(len(statuses))]
		updatedAt := createdAt.Add(time.Duration(rng.IntN(30*24)) * time.Hour)
		if updatedAt.After(now) {
			updatedAt = now
		}
		total := decimal.NewFromInt(int64(50 + rng.IntN(20000))).Add(decimal.New(int64(rng.IntN(100)), -2))

		if _, err := insertRow(ctx, tx, "purchase_orders",
			[]string{"rfq_id", "vendor_id", "priority", "status", "total", "created_at", "updated_at"},
			rfqID, vendorID, string(priorities[rng.IntN(len(priorities))]), string(status), total.StringFixed(2), createdAt, updatedAt,
		); err != nil {
			return err
		}

		if i > 0 && i%50 == 0 {
			logrus.Infof("Progresso: %d/%d pedidos inseridos", i, seedOrders)
		}
	}

	return nil
}

func insertNamed(ctx context.Context, tx *sql.Tx, table string, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, err := insertRow(ctx, tx, table, []string{"name"}, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	logrus.WithField("table", table).Infof("%d registros inseridos", len(ids))
	return ids, nil
}

func insertRow(ctx context.Context, tx *sql.Tx, table string, columns []string, values ...any) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id para %s: %w", table, err)
	}

	sqlQuery, args, err := squirrel.
		Insert(table).
		Columns(append([]string{"id"}, columns...)...).
		Values(append([]any{id}, values...)...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir insert em %s: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return "", fmt.Errorf("erro ao inserir em %s: %w", table, err)
	}

	return id, nil
}
