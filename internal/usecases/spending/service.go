package spending

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/urgency"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// SpendingService soma o valor dos pedidos não cancelados por dimensão e por período
type SpendingService interface {
	SpendByDepartment(ctx context.Context, filters domain.SpendFilters) (*domain.SpendBreakdown, error)
	SpendByVendor(ctx context.Context, filters domain.SpendFilters) (*domain.SpendBreakdown, error)
	SpendSummary(ctx context.Context, filters domain.SpendFilters) (*domain.SpendSummary, error)
	SpendSeries(ctx context.Context, granularity domain.Granularity, now time.Time) (*domain.SpendSeries, error)
}

type Service struct {
	orderRepository repository.PurchaseOrderRepository
}

func NewService(orderRepository repository.PurchaseOrderRepository) SpendingService {
	return &Service{
		orderRepository: orderRepository,
	}
}

func (s *Service) SpendByDepartment(ctx context.Context, filters domain.SpendFilters) (*domain.SpendBreakdown, error) {
	orders, err := s.listBillable(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar gastos por departamento")
	}

	return sumBy(orders, func(order domain.PurchaseOrder) string {
		return order.DepartmentName
	}), nil
}

func (s *Service) SpendByVendor(ctx context.Context, filters domain.SpendFilters) (*domain.SpendBreakdown, error) {
	orders, err := s.listBillable(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar gastos por fornecedor")
	}

	return sumBy(orders, func(order domain.PurchaseOrder) string {
		return order.VendorName
	}), nil
}

// SpendSummary calcula as duas quebras em paralelo
func (s *Service) SpendSummary(ctx context.Context, filters domain.SpendFilters) (*domain.SpendSummary, error) {
	if err := validatePeriod(filters); err != nil {
		return nil, err
	}

	var byDepartment, byVendor *domain.SpendBreakdown

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		byDepartment, err = s.SpendByDepartment(gctx, filters)
		return err
	})

	g.Go(func() error {
		var err error
		byVendor, err = s.SpendByVendor(gctx, filters)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.SpendSummary{
		ByDepartment: *byDepartment,
		ByVendor:     *byVendor,
	}, nil
}

func (s *Service) SpendSeries(ctx context.Context, granularity domain.Granularity, now time.Time) (*domain.SpendSeries, error) {
	ranges, err := urgency.RangesFor(granularity, now)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(ranges))
	data := make([]float64, 0, len(ranges))

	for _, timeRange := range ranges {
		start, end := timeRange.Start, timeRange.End

		orders, err := s.orderRepository.ListOrders(ctx, domain.OrderFilter{
			Statuses:    domain.BillableStatuses,
			CreatedFrom: &start,
			CreatedTo:   &end,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar gastos do intervalo %s", timeRange.Label)
		}

		total := decimal.Zero
		for _, order := range orders {
			total = total.Add(order.Total)
		}

		labels = append(labels, timeRange.Label)
		data = append(data, total.Round(2).InexactFloat64())
	}

	return &domain.SpendSeries{
		Labels: labels,
		Series: []domain.SpendNamedSeries{
			{Name: domain.SeriesSpend, Data: data},
		},
	}, nil
}

func (s *Service) listBillable(ctx context.Context, filters domain.SpendFilters) ([]domain.PurchaseOrder, error) {
	if err := validatePeriod(filters); err != nil {
		return nil, err
	}

	filter := domain.OrderFilter{
		Statuses:    domain.BillableStatuses,
		CreatedFrom: filters.StartDate,
	}

	// data final vem sem hora, então o dia inteiro entra no período
	if filters.EndDate != nil {
		end := time.Date(filters.EndDate.Year(), filters.EndDate.Month(), filters.EndDate.Day(), 23, 59, 59, int(999*time.Millisecond), filters.EndDate.Location())
		filter.CreatedTo = &end
	}

	return s.orderRepository.ListOrders(ctx, filter)
}

func validatePeriod(filters domain.SpendFilters) error {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return domain.ErrInvalidPeriod
	}
	return nil
}

// sumBy agrupa preservando a ordem de aparição; rótulo vazio vira Unassigned
func sumBy(orders []domain.PurchaseOrder, key func(domain.PurchaseOrder) string) *domain.SpendBreakdown {
	labels := []string{}
	totals := []decimal.Decimal{}
	index := make(map[string]int)

	for _, order := range orders {
		label := key(order)
		if label == "" {
			label = domain.UnassignedLabel
		}

		i, exists := index[label]
		if !exists {
			i = len(labels)
			index[label] = i
			labels = append(labels, label)
			totals = append(totals, decimal.Zero)
		}
		totals[i] = totals[i].Add(order.Total)
	}

	data := make([]float64, 0, len(totals))
	for _, total := range totals {
		data = append(data, total.Round(2).InexactFloat64())
	}

	return &domain.SpendBreakdown{
		Labels: labels,
		Data:   data,
	}
}
