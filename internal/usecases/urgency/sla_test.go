package urgency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestClassifySLA(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		order     domain.PurchaseOrder
		expected  domain.SLAStatus
		completed bool
	}{
		{
			name:      "Sem needed_by fica sem classificação",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusClosed, UpdatedAt: twoDaysAgo},
			expected:  domain.SLAUnclassified,
			completed: true,
		},
		{
			name:      "Concluído antes do prazo fica dentro do SLA",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusClosed, NeededBy: timePtr(yesterday), UpdatedAt: twoDaysAgo},
			expected:  domain.SLAWithin,
			completed: true,
		},
		{
			name:      "Concluído exatamente no prazo fica dentro do SLA",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusReceived, NeededBy: timePtr(yesterday), UpdatedAt: yesterday},
			expected:  domain.SLAWithin,
			completed: true,
		},
		{
			name:      "Concluído depois do prazo vencido fica fora do SLA",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusClosed, NeededBy: timePtr(twoDaysAgo), UpdatedAt: yesterday},
			expected:  domain.SLAOver,
			completed: true,
		},
		{
			name:      "Em aberto com prazo vencido fica fora do SLA",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusOpen, NeededBy: timePtr(yesterday), UpdatedAt: twoDaysAgo},
			expected:  domain.SLAOver,
			completed: false,
		},
		{
			// em aberto e ainda no prazo conta como dentro do SLA, mesmo sem ter cumprido nada
			name:      "Em aberto com prazo futuro fica dentro do SLA",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusPartial, NeededBy: timePtr(tomorrow), UpdatedAt: twoDaysAgo},
			expected:  domain.SLAWithin,
			completed: false,
		},
		{
			name:      "Cancelado com prazo vencido fica fora do SLA e pendente",
			order:     domain.PurchaseOrder{Status: domain.OrderStatusCancelled, NeededBy: timePtr(yesterday), UpdatedAt: twoDaysAgo},
			expected:  domain.SLAOver,
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := ClassifySLA(tt.order, now)
			assert.Equal(t, tt.expected, first)
			assert.Equal(t, tt.completed, tt.order.IsCompleted())

			// mesma entrada, mesma classificação
			assert.Equal(t, first, ClassifySLA(tt.order, now))
		})
	}
}

func TestOnTimePercentage(t *testing.T) {
	neededBy := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	before := neededBy.Add(-time.Hour)
	after := neededBy.Add(time.Hour)

	t.Run("Sem pedidos com prazo retorna zero", func(t *testing.T) {
		assert.Zero(t, OnTimePercentage(nil))
		assert.Zero(t, OnTimePercentage([]domain.PurchaseOrder{
			{Status: domain.OrderStatusClosed, UpdatedAt: before},
		}))
	})

	t.Run("Ignora pedidos sem prazo no denominador", func(t *testing.T) {
		orders := []domain.PurchaseOrder{
			{Status: domain.OrderStatusClosed, NeededBy: timePtr(neededBy), UpdatedAt: before},
			{Status: domain.OrderStatusReceived, NeededBy: timePtr(neededBy), UpdatedAt: before},
			{Status: domain.OrderStatusClosed, NeededBy: timePtr(neededBy), UpdatedAt: after},
			{Status: domain.OrderStatusClosed, UpdatedAt: before},
		}

		pct := OnTimePercentage(orders)
		assert.InDelta(t, 66.6666, pct, 0.001)
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)
	})

	t.Run("Todos no prazo retorna 100", func(t *testing.T) {
		orders := []domain.PurchaseOrder{
			{Status: domain.OrderStatusClosed, NeededBy: timePtr(neededBy), UpdatedAt: neededBy},
		}
		assert.Equal(t, 100.0, OnTimePercentage(orders))
	})
}

func TestCountOrders(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	orders := []domain.PurchaseOrder{
		{Status: domain.OrderStatusOpen},
		{Status: domain.OrderStatusOpen, NeededBy: timePtr(yesterday)},
		{Status: domain.OrderStatusClosed, NeededBy: timePtr(yesterday), UpdatedAt: yesterday.Add(-time.Hour)},
	}

	counts := countOrders(orders, now)

	assert.Equal(t, bucketCounts{total: 3, overSLA: 1, withinSLA: 1, completed: 1, pending: 2}, counts)
	assert.Equal(t, counts.total, counts.completed+counts.pending)
}
