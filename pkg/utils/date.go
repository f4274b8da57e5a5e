package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta uma data AAAA-MM-DD à meia-noite do fuso informado. String vazia devolve nil.
func ParseDate(dateStr string, location *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if location == nil {
		location = time.UTC
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, location)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
