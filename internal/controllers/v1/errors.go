package v1

import (
	"errors"
	"net/http"

	"github.com/pfdash/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the category name must not be empty and may only contain letters and numbers"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Record errors
var (
	errRecordAmountRequired   = errors.New("the amount must be set")
	errRecordCategoryRequired = errors.New("a category must be selected")
	errRecordDateInvalid      = errors.New("the date must be in YYYY-MM-DD or RFC 3339 format")
)
