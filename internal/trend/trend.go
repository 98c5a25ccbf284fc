// Package trend computes zero-filled, period-aligned spending series
// for the dashboard charts.
package trend

import (
	"errors"
	"time"

	"github.com/pfdash/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Frequency selects the bucket length for resampling.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var ErrFrequencyInvalid = errors.New("the frequency must be one of 'weekly', 'monthly'")

// ParseFrequency parses the string representation of a Frequency,
// e.g. from a URL parameter.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	case FrequencyMonthly:
		return FrequencyMonthly, nil
	}

	return "", ErrFrequencyInvalid
}

// bucket returns the start of the period containing t.
//
// Months start on the first of the month, weeks on Monday 00:00
// (see types.Week). All bucket starts are normalized to UTC.
func (f Frequency) bucket(t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return time.Time(types.WeekOf(t.In(time.UTC)))
	default:
		return time.Time(types.MonthOf(t.In(time.UTC)))
	}
}

// next returns the start of the period directly after the period
// starting at t.
func (f Frequency) next(t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return time.Time(types.Week(t).Next())
	default:
		return time.Time(types.Month(t).AddDate(0, 1))
	}
}

// Record is the spending data the resampler works on.
type Record struct {
	Amount    decimal.Decimal
	Category  string
	Timestamp time.Time
}

// Point is one aggregated period of a trend series.
type Point struct {
	PeriodStart time.Time       `json:"periodStart" example:"2024-01-01T00:00:00Z"` // Start of the period the amount is aggregated over
	Category    string          `json:"category" example:"Groceries"`               // Category the point belongs to
	Amount      decimal.Decimal `json:"amount" example:"134.97"`                    // Sum of all record amounts in the period
}

// Resample aggregates the records of one category into fixed-frequency
// buckets and fills every empty period between the first and the last
// bucket with a zero amount.
//
// Only records whose category matches exactly are considered. The result
// is sorted ascending by period start. When no record matches, the
// series is empty.
//
// Resample is a pure function, the input slice is not modified.
func Resample(records []Record, category string, frequency Frequency) []Point {
	sums := make(map[time.Time]decimal.Decimal)

	var min, max time.Time
	for _, record := range records {
		if record.Category != category {
			continue
		}

		start := frequency.bucket(record.Timestamp)
		sums[start] = sums[start].Add(record.Amount)

		if min.IsZero() || start.Before(min) {
			min = start
		}
		if max.IsZero() || start.After(max) {
			max = start
		}
	}

	// No matching records: there is no date range to span,
	// so the series is empty.
	points := make([]Point, 0, len(sums))
	if len(sums) == 0 {
		return points
	}

	// Walking from the first to the last bucket yields the series in
	// ascending order, with every missing period filled with zero.
	for start := min; !start.After(max); start = frequency.next(start) {
		points = append(points, Point{
			PeriodStart: start,
			Category:    category,
			Amount:      sums[start],
		})
	}

	return points
}
