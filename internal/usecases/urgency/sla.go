package urgency

import (
	"time"

	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
)

// ClassifySLA classifica um pedido em relação ao prazo (needed_by) da requisição de origem.
//
// Pedido em aberto cujo prazo ainda não venceu também conta como dentro do SLA, ou seja,
// "dentro do SLA" mistura "entregue no prazo" com "prazo ainda não estourado".
func ClassifySLA(order domain.PurchaseOrder, now time.Time) domain.SLAStatus {
	if order.NeededBy == nil {
		return domain.SLAUnclassified
	}

	neededBy := *order.NeededBy

	if order.IsCompleted() && !order.UpdatedAt.After(neededBy) {
		return domain.SLAWithin
	}

	if neededBy.Before(now) {
		return domain.SLAOver
	}

	return domain.SLAWithin
}

// IsOnTime indica pedido concluído com última atualização até o needed_by
func IsOnTime(order domain.PurchaseOrder) bool {
	return order.NeededBy != nil && order.IsCompleted() && !order.UpdatedAt.After(*order.NeededBy)
}

// OnTimePercentage calcula o percentual de pedidos no prazo entre os que têm needed_by.
// Sem nenhum pedido com prazo o resultado é 0.
func OnTimePercentage(orders []domain.PurchaseOrder) float64 {
	withDueDate := 0
	onTime := 0

	for _, order := range orders {
		if order.NeededBy == nil {
			continue
		}

		withDueDate++
		if IsOnTime(order) {
			onTime++
		}
	}

	if withDueDate == 0 {
		return 0
	}

	return float64(onTime) / float64(withDueDate) * 100
}

type bucketCounts struct {
	total     int
	overSLA   int
	withinSLA int
	completed int
	pending   int
}

func countOrders(orders []domain.PurchaseOrder, now time.Time) bucketCounts {
	counts := bucketCounts{total: len(orders)}

	for _, order := range orders {
		if order.IsCompleted() {
			counts.completed++
		} else {
			counts.pending++
		}

		switch ClassifySLA(order, now) {
		case domain.SLAWithin:
			counts.withinSLA++
		case domain.SLAOver:
			counts.overSLA++
		}
	}

	return counts
}
