package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfdash/backend/internal/httputil"
	"github.com/pfdash/backend/internal/trend"
)

// ChartResponse is the response for a chart request.
type ChartResponse struct {
	Data  *trend.Chart `json:"data"`  // The chart specification
	Error *string      `json:"error"` // Error message, only set when the request failed
}

// RegisterChartRoutes registers the routes for charts with
// the RouterGroup that is passed.
func RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:frequency", OptionsChart)
	r.GET("/:frequency", GetChart)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Charts
// @Success		204
// @Failure		400	{object}	httpError
// @Param			frequency	path	string	true	"Frequency, one of 'weekly', 'monthly'"
// @Router			/v1/charts/{frequency} [options]
func OptionsChart(c *gin.Context) {
	_, err := trend.ParseFrequency(c.Param("frequency"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get chart
// @Description	Builds the multi-series trend chart for the selected categories. The chart is computed fresh from the full record set on every request.
// @Tags			Charts
// @Produce		json
// @Success		200	{object}	ChartResponse
// @Failure		400	{object}	ChartResponse
// @Failure		500	{object}	ChartResponse
// @Param			frequency	path	string		true	"Frequency, one of 'weekly', 'monthly'"
// @Param			category	query	[]string	false	"Categories to draw, one series each, in the order given"
// @Router			/v1/charts/{frequency} [get]
func GetChart(c *gin.Context) {
	frequency, err := trend.ParseFrequency(c.Param("frequency"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return
	}

	records, err := allRecords()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &s,
		})
		return
	}

	data := make([]trend.Record, 0, len(records))
	for _, record := range records {
		data = append(data, trend.Record{
			Amount:    record.Amount,
			Category:  record.Category,
			Timestamp: record.Timestamp,
		})
	}

	chart := trend.BuildChart(data, c.QueryArray("category"), frequency)
	c.JSON(http.StatusOK, ChartResponse{Data: &chart})
}
