package petcare

import (
	"strings"
	"time"
)

// DateLayout es el formato con el que se persisten todas las fechas.
const DateLayout = "2006-01-02"

// DateOf trunca t a su fecha de calendario (medianoche UTC).
// Se toma la fecha en la zona de t, no la de UTC: 2024-05-01T23:00-03:00 es el 1 de mayo.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := DateOf(*t)
	return &d
}

// ParseDate acepta YYYY-MM-DD o RFC3339 (los productos guardaban timestamps completos).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, InvalidArgument("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), nil
	}
	return time.Time{}, InvalidArgument("date %q must be YYYY-MM-DD or RFC3339", s)
}

// ParseOptionalDate devuelve nil para "".
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate es el inverso de ParseDate para fechas ya normalizadas.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// DateRange es un intervalo cerrado [Start, End] a granularidad de día.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange valida y normaliza el rango.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, InvalidArgument("date range requires start and end")
	}
	r := DateRange{Start: DateOf(start), End: DateOf(end)}
	if r.Start.After(r.End) {
		return DateRange{}, InvalidArgument("date range start %s after end %s", FormatDate(r.Start), FormatDate(r.End))
	}
	return r, nil
}

// Contains incluye ambos extremos.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.Start) && !d.After(r.End)
}
