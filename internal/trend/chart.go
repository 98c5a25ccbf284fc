package trend

// Series is one line of a chart.
type Series struct {
	Name   string  `json:"name" example:"Groceries"` // Name of the series, the category it was built from
	Points []Point `json:"points"`                   // Zero-filled trend points, ascending by period start
}

// Chart is a declarative description of a multi-series line chart.
// It carries no rendering state, the presentation layer decides how
// to draw it.
type Chart struct {
	Title  string   `json:"title" example:"Monthly Trends"` // Chart title
	XAxis  string   `json:"xAxis" example:"Month"`          // Label of the x axis
	YAxis  string   `json:"yAxis" example:"Amount"`         // Label of the y axis
	Series []Series `json:"series"`                         // One line per requested category
}

// BuildChart builds the chart specification for the requested categories
// at the given frequency.
//
// Categories are rendered in request order, duplicates result in
// duplicate series. When the record set is nil or no category is
// requested, the chart is empty: no series and no metadata.
func BuildChart(records []Record, categories []string, frequency Frequency) Chart {
	chart := Chart{
		Series: make([]Series, 0, len(categories)),
	}

	if records == nil || len(categories) == 0 {
		return chart
	}

	for _, category := range categories {
		chart.Series = append(chart.Series, Series{
			Name:   category,
			Points: Resample(records, category, frequency),
		})
	}

	chart.YAxis = "Amount"
	if frequency == FrequencyWeekly {
		chart.Title = "Weekly Trends"
		chart.XAxis = "Week"
	} else {
		chart.Title = "Monthly Trends"
		chart.XAxis = "Month"
	}

	return chart
}
