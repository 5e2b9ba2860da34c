// Package isotime serializa timestamps de la base (sin zona) como fecha-hora ISO-8601 local.
package isotime

import (
	"database/sql"
	"encoding/json"
	"time"
)

const (
	layout      = "2006-01-02T15:04:05"
	layoutMicro = "2006-01-02T15:04:05.000000"
)

// Time es un timestamp de columna DATETIME. Los campos anulables usan *Time.
type Time struct {
	time.Time
}

// From convierte un sql.NullTime en *Time (nil cuando la columna es NULL).
func From(nt sql.NullTime) *Time {
	if !nt.Valid {
		return nil
	}
	return &Time{Time: nt.Time}
}

func Ptr(t time.Time) *Time {
	return &Time{Time: t}
}

func (t Time) String() string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(layoutMicro)
	}
	return t.Format(layout)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, l := range []string{layoutMicro, layout, time.RFC3339Nano} {
		if parsed, err := time.Parse(l, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	_, err := time.Parse(layout, s)
	return err
}
