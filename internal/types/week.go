package types

import (
	"database/sql"
	"database/sql/driver"
	"time"
)

// Week is an ISO week, identified by the Monday it starts on.
// Weeks always start on Monday at 00:00, independent of locale.
type Week time.Time

// NewWeek returns the Week starting on the given day.
// The day must be a Monday, otherwise the result is shifted
// back to the Monday of the week the day is in.
func NewWeek(year int, month time.Month, day int) Week {
	return WeekOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// WeekOf returns the Week in which a time occurs in that time's location.
func WeekOf(t time.Time) Week {
	// time.Weekday counts from Sunday = 0, ISO weeks start on Monday
	offset := (int(t.Weekday()) + 6) % 7

	year, month, day := t.AddDate(0, 0, -offset).Date()
	return Week(time.Date(year, month, day, 0, 0, 0, 0, t.Location()))
}

// String returns the Monday the week starts on, formatted as YYYY-MM-DD.
func (w Week) String() string {
	return time.Time(w).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
func (w Week) MarshalJSON() ([]byte, error) {
	return time.Time(w).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The parsed time is normalized to the Monday of its week.
func (w *Week) UnmarshalJSON(data []byte) error {
	var t time.Time
	err := t.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	*w = WeekOf(t)
	return nil
}

// ParseWeek parses a "YYYY-MM-DD" string and returns the Week containing that day.
func ParseWeek(s string) (Week, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Week{}, err
	}

	return WeekOf(t), nil
}

// Scan writes the value from the database.
func (w *Week) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*w = Week(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (w Week) Value() (driver.Value, error) {
	year, month, day := time.Time(w).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Week) GormDataType() string {
	return "date"
}

// IsZero reports if the week is the zero value.
func (w Week) IsZero() bool {
	return time.Time(w).IsZero()
}

// Next returns the week directly after w.
func (w Week) Next() Week {
	return Week(time.Time(w).AddDate(0, 0, 7))
}

// Before reports whether the week instant w is before v.
func (w Week) Before(v Week) bool {
	return time.Time(w).Before(time.Time(v))
}

// After reports whether the week instant w is after v.
func (w Week) After(v Week) bool {
	return time.Time(w).After(time.Time(v))
}

// Equal reports whether w and v represent the same week.
func (w Week) Equal(v Week) bool {
	return time.Time(w).Equal(time.Time(v))
}

// Contains reports whether the time instant is in the week.
func (w Week) Contains(t time.Time) bool {
	return WeekOf(t).Equal(w)
}
