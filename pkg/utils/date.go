package utils

import "time"

// ParseDate interpreta um parâmetro de data (yyyy-mm-dd) vindo da query
// string. Vazio vira data zero, não erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
