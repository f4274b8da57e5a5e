package domain

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("a data de início não pode ser posterior à data de fim")

// SeriesSpend é o nome da série do gráfico de gastos
const SeriesSpend = "Spend"

// SpendFilters delimita o período (por created_at) dos relatórios de gastos
type SpendFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SpendBreakdown é o gasto total por rótulo, em reais arredondados para duas casas
type SpendBreakdown struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type SpendSummary struct {
	ByDepartment SpendBreakdown `json:"byDepartment"`
	ByVendor     SpendBreakdown `json:"byVendor"`
}

type SpendNamedSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type SpendSeries struct {
	Labels []string           `json:"labels"`
	Series []SpendNamedSeries `json:"series"`
}
