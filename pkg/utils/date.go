package utils

import "time"

// ParseDate aceita datas no formato YYYY-MM-DD ou RFC3339.
// String vazia devolve a data zero sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			incomingDate, err = time.Parse(time.RFC3339, dateStr)
			if err != nil {
				return nil, err
			}
		}

		date = incomingDate
	}

	return &date, nil
}
