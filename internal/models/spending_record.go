package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SpendingRecord represents a single expense.
//
// Records are append-only. They are never updated or deleted, so the
// model has no update hooks.
type SpendingRecord struct {
	DefaultModel
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.37"`   // Amount spent, no currency attached
	Category  string          `json:"category" example:"Groceries"`                       // Name of the category the expense belongs to
	Timestamp time.Time       `json:"timestamp" example:"2024-01-15T14:43:27.000000Z"`    // Time the expense occurred
}

// TableName sets the table name for spending records.
func (SpendingRecord) TableName() string {
	return "spending"
}

// BeforeSave sets the timezone for the Timestamp to UTC and
// defaults it to the current time when it is unset.
func (r *SpendingRecord) BeforeSave(_ *gorm.DB) error {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().In(time.UTC)
	} else {
		r.Timestamp = r.Timestamp.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamp to use UTC as timezone, not +0000.
func (r *SpendingRecord) AfterFind(tx *gorm.DB) error {
	err := r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.Timestamp = r.Timestamp.In(time.UTC)
	return nil
}
