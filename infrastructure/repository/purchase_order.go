// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
)

//go:generate mockgen -source=purchase_order.go -destination=mocks/mock_purchase_order.go -package=mocks

const (
	purchaseOrdersTable = "purchase_orders po"
)

type PurchaseOrderRepository interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.PurchaseOrder, error)
	CountOrders(ctx context.Context, filter domain.OrderFilter) (int, error)
}

type purchaseOrderRepository struct {
	conn postgres.Queryer
}

func NewPurchaseOrderRepository(conn postgres.Queryer) PurchaseOrderRepository {
	return &purchaseOrderRepository{
		conn: conn,
	}
}

// ListOrders busca os pedidos já com a cadeia pedido → RFQ → requisição → departamento resolvida.
// Qualquer elo nulo resulta em departamento "Unassigned".
func (r *purchaseOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.PurchaseOrder, error) {
	queryBuilder := applyOrderFilter(r.baseQuery(
		"po.id",
		"po.priority",
		"po.status",
		"po.total",
		"po.created_at",
		"po.updated_at",
		"rq.needed_by",
		"d.id",
		"d.name",
		"v.name",
	), filter).
		OrderBy("po.created_at ASC", "po.id ASC")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	orders := make([]domain.PurchaseOrder, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido de compra: %w", err)
		}
		orders = append(orders, *order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *purchaseOrderRepository) CountOrders(ctx context.Context, filter domain.OrderFilter) (int, error) {
	sqlQuery, args, err := applyOrderFilter(r.baseQuery("COUNT(*)"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, wrapQueryError(err)
	}

	return count, nil
}

func (r *purchaseOrderRepository) baseQuery(columns ...string) squirrel.SelectBuilder {
	return squirrel.
		Select(columns...).
		From(purchaseOrdersTable).
		LeftJoin("rfqs q ON q.id = po.rfq_id").
		LeftJoin("requests rq ON rq.id = q.request_id").
		LeftJoin("departments d ON d.id = rq.department_id").
		LeftJoin("vendors v ON v.id = po.vendor_id").
		PlaceholderFormat(squirrel.Dollar)
}

func applyOrderFilter(queryBuilder squirrel.SelectBuilder, filter domain.OrderFilter) squirrel.SelectBuilder {
	if filter.Priority != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"po.priority": string(filter.Priority)})
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"po.status": statuses})
	}

	if filter.CreatedFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"po.created_at": *filter.CreatedFrom})
	}

	if filter.CreatedTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"po.created_at": *filter.CreatedTo})
	}

	if filter.HasNeededBy {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"rq.needed_by": nil})
	}

	if filter.NeededByBefore != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"rq.needed_by": *filter.NeededByBefore})
	}

	return queryBuilder
}

func (r *purchaseOrderRepository) scanOrder(rows *sql.Rows) (*domain.PurchaseOrder, error) {
	order := &domain.PurchaseOrder{}

	var (
		priority       string
		status         string
		neededBy       sql.NullTime
		departmentID   sql.NullString
		departmentName sql.NullString
		vendorName     sql.NullString
	)

	err := rows.Scan(
		&order.ID,
		&priority,
		&status,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
		&neededBy,
		&departmentID,
		&departmentName,
		&vendorName,
	)
	if err != nil {
		return nil, err
	}

	order.Priority = domain.Priority(priority)
	order.Status = domain.OrderStatus(status)

	if neededBy.Valid {
		order.NeededBy = &neededBy.Time
	}

	order.DepartmentName = domain.UnassignedLabel
	if departmentID.Valid {
		order.DepartmentID = &departmentID.String
		if departmentName.Valid && departmentName.String != "" {
			order.DepartmentName = departmentName.String
		}
	}

	order.VendorName = domain.UnassignedLabel
	if vendorName.Valid && vendorName.String != "" {
		order.VendorName = vendorName.String
	}

	return order, nil
}

func wrapQueryError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
