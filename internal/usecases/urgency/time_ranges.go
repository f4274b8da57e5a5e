package urgency

import (
	"time"

	"github.com/vfg2006/procurement-dashboard-api/internal/domain"
)

const (
	monthLabelLayout = "Jan"
	dayLabelLayout   = "Jan 2"
)

// MonthlyRanges gera n meses de calendário terminando no mês de now, do mais antigo para o mais recente
func MonthlyRanges(now time.Time, n int) []domain.TimeRange {
	if n <= 0 {
		return []domain.TimeRange{}
	}

	ranges := make([]domain.TimeRange, 0, n)
	for i := n - 1; i >= 0; i-- {
		// time.Date normaliza meses negativos para o ano anterior
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		lastDay := start.AddDate(0, 1, -1)

		ranges = append(ranges, domain.TimeRange{
			Label: start.Format(monthLabelLayout),
			Start: start,
			End:   endOfDay(lastDay),
		})
	}

	return ranges
}

// WeeklyRanges gera n semanas de domingo a sábado terminando na semana de now
func WeeklyRanges(now time.Time, n int) []domain.TimeRange {
	if n <= 0 {
		return []domain.TimeRange{}
	}

	sunday := now.Day() - int(now.Weekday())

	ranges := make([]domain.TimeRange, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), sunday-7*i, 0, 0, 0, 0, now.Location())
		saturday := time.Date(now.Year(), now.Month(), sunday-7*i+6, 0, 0, 0, 0, now.Location())

		ranges = append(ranges, domain.TimeRange{
			Label: start.Format(dayLabelLayout),
			Start: start,
			End:   endOfDay(saturday),
		})
	}

	return ranges
}

// DailyRanges gera n dias de calendário terminando no dia de now
func DailyRanges(now time.Time, n int) []domain.TimeRange {
	if n <= 0 {
		return []domain.TimeRange{}
	}

	ranges := make([]domain.TimeRange, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, now.Location())

		ranges = append(ranges, domain.TimeRange{
			Label: start.Format(dayLabelLayout),
			Start: start,
			End:   endOfDay(start),
		})
	}

	return ranges
}

// RangesFor devolve os intervalos padrão da granularidade (14 dias, 8 semanas ou 6 meses)
func RangesFor(granularity domain.Granularity, now time.Time) ([]domain.TimeRange, error) {
	switch granularity {
	case domain.GranularityDaily:
		return DailyRanges(now, granularity.BucketCount()), nil
	case domain.GranularityWeekly:
		return WeeklyRanges(now, granularity.BucketCount()), nil
	case domain.GranularityMonthly:
		return MonthlyRanges(now, granularity.BucketCount()), nil
	default:
		return nil, domain.ErrInvalidGranularity
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
