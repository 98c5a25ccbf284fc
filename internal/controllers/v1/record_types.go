package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pfdash/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Record is the API representation of a spending record.
type Record struct {
	ID        uuid.UUID       `json:"id" example:"d1b4a89c-2a51-4a03-9a7a-6e5b5e8e0c57"`
	CreatedAt time.Time       `json:"createdAt" example:"2024-01-07T18:43:00.271152Z"`
	Amount    decimal.Decimal `json:"amount" example:"14.37"`
	Category  string          `json:"category" example:"Groceries"`
	Timestamp time.Time       `json:"timestamp" example:"2024-01-15T14:43:27Z"`
}

func newRecord(model models.SpendingRecord) Record {
	return Record{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		Amount:    model.Amount,
		Category:  model.Category,
		Timestamp: model.Timestamp,
	}
}

// RecordEditable represents the fields of a spending record that are
// set on creation. Records are never edited afterwards.
//
// Amount is a pointer so that a missing amount can be told apart
// from an explicit zero.
type RecordEditable struct {
	Amount   *decimal.Decimal `json:"amount" example:"14.37"`       // Amount spent
	Category string           `json:"category" example:"Groceries"` // Name of the category
	Date     string           `json:"date" example:"2024-01-15"`    // Date of the expense, defaults to now
}

// model converts the editable into a spending record.
//
// The date may be sent as RFC 3339 or as a plain date. A plain date is
// combined with the current clock time, matching how the dashboard
// submits the date picker value. An empty date stays zero and is
// defaulted to the current time on save.
func (editable RecordEditable) model() (models.SpendingRecord, error) {
	record := models.SpendingRecord{
		Category: editable.Category,
	}

	if editable.Amount != nil {
		record.Amount = *editable.Amount
	}

	if editable.Date == "" {
		return record, nil
	}

	timestamp, err := time.Parse(time.RFC3339, editable.Date)
	if err != nil {
		day, dayErr := time.Parse("2006-01-02", editable.Date)
		if dayErr != nil {
			return models.SpendingRecord{}, errRecordDateInvalid
		}

		now := time.Now().In(time.UTC)
		timestamp = time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
	}

	record.Timestamp = timestamp
	return record, nil
}

type RecordResponse struct {
	Data  *Record `json:"data"`  // The record data
	Error *string `json:"error"` // Error message, only set when the request failed
}

type RecordCreateResponse struct {
	Data  []RecordResponse `json:"data"`  // One response per record in the request
	Error *string          `json:"error"` // Error message for the request itself
}

func (r *RecordCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecordResponse{Error: &s})

	// Errors escalate the status code of the response
	newStatus := status(err)
	if currentStatus < newStatus {
		return newStatus
	}

	return currentStatus
}

type RecordListResponse struct {
	Data  []Record `json:"data"`  // The full record set
	Error *string  `json:"error"` // Error message, only set when the request failed
}
