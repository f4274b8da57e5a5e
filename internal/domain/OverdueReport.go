package domain

import "time"

// OverdueReport é o resumo gerado pela rotina de pedidos urgentes atrasados
type OverdueReport struct {
	RunID        string         `json:"run_id"`
	GeneratedAt  time.Time      `json:"generated_at"`
	TotalOverdue int            `json:"total_overdue"`
	ByDepartment map[string]int `json:"by_department"`
	OldestDueAt  *time.Time     `json:"oldest_due_at,omitempty"`
}
