package domain

// Nomes das séries do gráfico de status de pedidos urgentes, nesta ordem
const (
	SeriesTotal     = "Total"
	SeriesOverSLA   = "Over SLA"
	SeriesWithinSLA = "Within SLA"
	SeriesCompleted = "Completed"
	SeriesPending   = "Pending"
)

type SLAStatus string

const (
	SLAWithin       SLAStatus = "within_sla"
	SLAOver         SLAStatus = "over_sla"
	SLAUnclassified SLAStatus = "unclassified"
)

// NamedSeries é uma série numérica alinhada índice a índice com os rótulos
type NamedSeries struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// UrgentSeries é o payload do gráfico de status/SLA por intervalo de tempo
type UrgentSeries struct {
	Labels []string      `json:"labels"`
	Series []NamedSeries `json:"series"`
}

// DepartmentBreakdown é a contagem por rótulo na ordem em que o rótulo apareceu
type DepartmentBreakdown struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type UrgentPerDept struct {
	Current    int `json:"current"`
	TotalDepts int `json:"totalDepts"`
}

// UrgentKpis reúne os indicadores escalares do painel de pedidos urgentes
type UrgentKpis struct {
	OpenUrgent    int           `json:"openUrgent"`
	ClosedUrgent  int           `json:"closedUrgent"`
	OnTimePct     float64       `json:"onTimePct"`
	UrgentPerDept UrgentPerDept `json:"urgentPerDept"`
}

// EmptyUrgentSeries monta o payload vazio, mas válido, com as cinco séries
func EmptyUrgentSeries() *UrgentSeries {
	names := []string{SeriesTotal, SeriesOverSLA, SeriesWithinSLA, SeriesCompleted, SeriesPending}
	series := make([]NamedSeries, 0, len(names))
	for _, name := range names {
		series = append(series, NamedSeries{Name: name, Data: []int{}})
	}

	return &UrgentSeries{
		Labels: []string{},
		Series: series,
	}
}
