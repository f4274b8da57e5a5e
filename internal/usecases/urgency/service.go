package urgency

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/procurement-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// UrgencyService agrega os pedidos de prioridade Urgent para o painel
type UrgencyService interface {
	// UrgentStatusSeries monta a série de status/SLA para a granularidade pedida, ancorada em now
	UrgentStatusSeries(ctx context.Context, granularity domain.Granularity, now time.Time) (*domain.UrgentSeries, error)

	// ComputeSeriesForRanges conta total, fora/dentro do SLA, concluídos e pendentes por intervalo
	ComputeSeriesForRanges(ctx context.Context, ranges []domain.TimeRange, now time.Time) (*domain.UrgentSeries, error)

	// AggregateUrgentByDepartment conta pedidos urgentes por departamento
	AggregateUrgentByDepartment(ctx context.Context) (*domain.DepartmentBreakdown, error)

	// ComputeUrgentKpis calcula os indicadores escalares do painel
	ComputeUrgentKpis(ctx context.Context) (*domain.UrgentKpis, error)
}

type Service struct {
	orderRepository      repository.PurchaseOrderRepository
	departmentRepository repository.DepartmentRepository
}

func NewService(
	orderRepository repository.PurchaseOrderRepository,
	departmentRepository repository.DepartmentRepository,
) UrgencyService {
	return &Service{
		orderRepository:      orderRepository,
		departmentRepository: departmentRepository,
	}
}

func (s *Service) UrgentStatusSeries(ctx context.Context, granularity domain.Granularity, now time.Time) (*domain.UrgentSeries, error) {
	ranges, err := RangesFor(granularity, now)
	if err != nil {
		return nil, err
	}

	return s.ComputeSeriesForRanges(ctx, ranges, now)
}

// ComputeSeriesForRanges faz uma consulta por intervalo, em sequência. Qualquer falha aborta o cálculo inteiro.
func (s *Service) ComputeSeriesForRanges(ctx context.Context, ranges []domain.TimeRange, now time.Time) (*domain.UrgentSeries, error) {
	labels := make([]string, 0, len(ranges))
	total := make([]int, 0, len(ranges))
	overSLA := make([]int, 0, len(ranges))
	withinSLA := make([]int, 0, len(ranges))
	completed := make([]int, 0, len(ranges))
	pending := make([]int, 0, len(ranges))

	for _, timeRange := range ranges {
		start, end := timeRange.Start, timeRange.End

		orders, err := s.orderRepository.ListOrders(ctx, domain.OrderFilter{
			Priority:    domain.PriorityUrgent,
			CreatedFrom: &start,
			CreatedTo:   &end,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar pedidos urgentes do intervalo %s", timeRange.Label)
		}

		counts := countOrders(orders, now)

		labels = append(labels, timeRange.Label)
		total = append(total, counts.total)
		overSLA = append(overSLA, counts.overSLA)
		withinSLA = append(withinSLA, counts.withinSLA)
		completed = append(completed, counts.completed)
		pending = append(pending, counts.pending)
	}

	return &domain.UrgentSeries{
		Labels: labels,
		Series: []domain.NamedSeries{
			{Name: domain.SeriesTotal, Data: total},
			{Name: domain.SeriesOverSLA, Data: overSLA},
			{Name: domain.SeriesWithinSLA, Data: withinSLA},
			{Name: domain.SeriesCompleted, Data: completed},
			{Name: domain.SeriesPending, Data: pending},
		},
	}, nil
}

func (s *Service) AggregateUrgentByDepartment(ctx context.Context) (*domain.DepartmentBreakdown, error) {
	orders, err := s.orderRepository.ListOrders(ctx, domain.OrderFilter{Priority: domain.PriorityUrgent})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedidos urgentes por departamento")
	}

	return groupByDepartment(orders), nil
}

// ComputeUrgentKpis executa as quatro leituras em paralelo; a primeira falha cancela as demais
func (s *Service) ComputeUrgentKpis(ctx context.Context) (*domain.UrgentKpis, error) {
	kpis := &domain.UrgentKpis{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.orderRepository.CountOrders(gctx, domain.OrderFilter{
			Priority: domain.PriorityUrgent,
			Statuses: domain.PendingStatuses,
		})
		if err != nil {
			return errors.Wrap(err, "erro ao contar pedidos urgentes em aberto")
		}
		kpis.OpenUrgent = count
		return nil
	})

	g.Go(func() error {
		count, err := s.orderRepository.CountOrders(gctx, domain.OrderFilter{
			Priority: domain.PriorityUrgent,
			Statuses: domain.CompletedStatuses,
		})
		if err != nil {
			return errors.Wrap(err, "erro ao contar pedidos urgentes concluídos")
		}
		kpis.ClosedUrgent = count
		return nil
	})

	g.Go(func() error {
		orders, err := s.orderRepository.ListOrders(gctx, domain.OrderFilter{Priority: domain.PriorityUrgent})
		if err != nil {
			return errors.Wrap(err, "erro ao buscar departamentos com pedidos urgentes")
		}
		kpis.UrgentPerDept.Current = countDistinctDepartments(orders)

		totalDepts, err := s.departmentRepository.CountDepartments(gctx)
		if err != nil {
			return errors.Wrap(err, "erro ao contar departamentos")
		}
		kpis.UrgentPerDept.TotalDepts = totalDepts
		return nil
	})

	g.Go(func() error {
		orders, err := s.orderRepository.ListOrders(gctx, domain.OrderFilter{
			Priority:    domain.PriorityUrgent,
			Statuses:    domain.CompletedStatuses,
			HasNeededBy: true,
		})
		if err != nil {
			return errors.Wrap(err, "erro ao buscar pedidos urgentes concluídos com prazo")
		}
		kpis.OnTimePct = OnTimePercentage(orders)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return kpis, nil
}

// groupByDepartment preserva a ordem em que cada departamento apareceu
func groupByDepartment(orders []domain.PurchaseOrder) *domain.DepartmentBreakdown {
	breakdown := &domain.DepartmentBreakdown{
		Labels: []string{},
		Data:   []int{},
	}

	index := make(map[string]int)
	for _, order := range orders {
		name := order.DepartmentName
		if name == "" {
			name = domain.UnassignedLabel
		}

		i, exists := index[name]
		if !exists {
			i = len(breakdown.Labels)
			index[name] = i
			breakdown.Labels = append(breakdown.Labels, name)
			breakdown.Data = append(breakdown.Data, 0)
		}
		breakdown.Data[i]++
	}

	return breakdown
}

func countDistinctDepartments(orders []domain.PurchaseOrder) int {
	departments := make(map[string]struct{})
	for _, order := range orders {
		if order.DepartmentID == nil {
			continue
		}
		departments[*order.DepartmentID] = struct{}{}
	}
	return len(departments)
}
