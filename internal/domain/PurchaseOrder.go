// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnassignedLabel é usado quando a cadeia pedido → RFQ → requisição → departamento (ou fornecedor) está incompleta
const UnassignedLabel = "Unassigned"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusPartial   OrderStatus = "PARTIAL"
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusClosed    OrderStatus = "CLOSED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var (
	// PendingStatuses são os status de pedidos ainda não concluídos
	PendingStatuses = []OrderStatus{OrderStatusOpen, OrderStatusPartial}
	// CompletedStatuses são os status que contam como pedido concluído
	CompletedStatuses = []OrderStatus{OrderStatusReceived, OrderStatusClosed}
	// BillableStatuses são os status considerados nos relatórios de gastos (tudo menos cancelado)
	BillableStatuses = []OrderStatus{OrderStatusOpen, OrderStatusPartial, OrderStatusReceived, OrderStatusClosed}
)

// IsCompleted indica se o status representa um pedido concluído (RECEIVED ou CLOSED)
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusReceived || s == OrderStatusClosed
}

// PurchaseOrder é a visão achatada de um pedido de compra usada pelos relatórios.
// NeededBy e o departamento vêm da requisição de origem (pedido → RFQ → requisição).
type PurchaseOrder struct {
	ID             string          `json:"id"`
	Priority       Priority        `json:"priority"`
	Status         OrderStatus     `json:"status"`
	Total          decimal.Decimal `json:"total"`
	NeededBy       *time.Time      `json:"needed_by,omitempty"`
	DepartmentID   *string         `json:"department_id,omitempty"`
	DepartmentName string          `json:"department_name"`
	VendorName     string          `json:"vendor_name"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsCompleted é derivado do status, não é persistido
func (o PurchaseOrder) IsCompleted() bool {
	return o.Status.IsCompleted()
}

// OrderFilter define os critérios aceitos pelo repositório de pedidos.
// Campos vazios não filtram.
type OrderFilter struct {
	Priority       Priority
	Statuses       []OrderStatus
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	HasNeededBy    bool
	NeededByBefore *time.Time
}
