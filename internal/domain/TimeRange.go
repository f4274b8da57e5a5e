package domain

import (
	"errors"
	"time"
)

var ErrInvalidGranularity = errors.New("granularidade inválida")

// TimeRange é um intervalo fechado [Start, End] com rótulo para exibição.
// End sempre cai em 23:59:59.999 do último dia do intervalo.
type TimeRange struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains indica se t está dentro do intervalo (bordas inclusivas)
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity converte o parâmetro da query. Vazio vira mensal.
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case "":
		return GranularityMonthly, nil
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(value), nil
	default:
		return "", ErrInvalidGranularity
	}
}

// BucketCount retorna a quantidade de intervalos exibidos para cada granularidade
func (g Granularity) BucketCount() int {
	switch g {
	case GranularityDaily:
		return 14
	case GranularityWeekly:
		return 8
	default:
		return 6
	}
}
