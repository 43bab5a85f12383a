package entity

import "time"

// DateLayout formato de fecha de calendario usado en la API y en la BD.
const DateLayout = "2006-01-02"

// DateOnly trunca a medianoche UTC conservando el día de calendario.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
