package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/database/postgres"
)

//go:generate mockgen -source=department.go -destination=mocks/mock_department.go -package=mocks

type DepartmentRepository interface {
	CountDepartments(ctx context.Context) (int, error)
}

type departmentRepository struct {
	conn postgres.Queryer
}

func NewDepartmentRepository(conn postgres.Queryer) DepartmentRepository {
	return &departmentRepository{
		conn: conn,
	}
}

func (r *departmentRepository) CountDepartments(ctx context.Context) (int, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From("departments").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, wrapQueryError(err)
	}

	return count, nil
}
