package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfdash/backend/internal/httputil"
	"github.com/pfdash/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterRecordRoutes registers the routes for spending records with
// the RouterGroup that is passed.
func RegisterRecordRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRecordList)
	r.GET("", GetRecords)
	r.POST("", CreateRecords)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Records
// @Success		204
// @Router			/v1/records [options]
func OptionsRecordList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create records
// @Description	Appends new spending records. Records can not be updated or deleted afterwards.
// @Tags			Records
// @Produce		json
// @Success		201		{object}	RecordCreateResponse
// @Failure		400		{object}	RecordCreateResponse
// @Failure		500		{object}	RecordCreateResponse
// @Param			records	body		[]RecordEditable	true	"Records"
// @Router			/v1/records [post]
func CreateRecords(c *gin.Context) {
	var editables []RecordEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecordCreateResponse{}

	for _, editable := range editables {
		// Missing input is a user error, not a persistence error
		if editable.Amount == nil {
			status = r.appendError(errRecordAmountRequired, status)
			continue
		}

		if editable.Category == "" {
			status = r.appendError(errRecordCategoryRequired, status)
			continue
		}

		record, err := editable.model()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&record).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecord(record)
		r.Data = append(r.Data, RecordResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get records
// @Description	Returns the spending record set, ascending by timestamp
// @Tags			Records
// @Produce		json
// @Success		200			{object}	RecordListResponse
// @Failure		500			{object}	RecordListResponse
// @Param			category	query		[]string	false	"Only return records with one of these categories"
// @Router			/v1/records [get]
func GetRecords(c *gin.Context) {
	records, err := allRecords()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordListResponse{
			Error: &s,
		})
		return
	}

	categories := c.QueryArray("category")

	data := make([]Record, 0, len(records))
	for _, record := range records {
		if len(categories) > 0 && !slices.Contains(categories, record.Category) {
			continue
		}

		data = append(data, newRecord(record))
	}

	c.JSON(http.StatusOK, RecordListResponse{Data: data})
}

// allRecords reads the full materialized record set.
//
// The record set is read in full on every chart-affecting request.
// Entry volume for a single user is small enough that this does not
// need pagination or streaming.
func allRecords() ([]models.SpendingRecord, error) {
	var records []models.SpendingRecord

	err := models.DB.Order("timestamp ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
