package models

import (
	"errors"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// Category represents a user defined label classifying spending records.
//
// Names are not unique: the source of truth for classification is the
// name string on each spending record, duplicates are tolerated.
type Category struct {
	DefaultModel
	Name string `json:"name" gorm:"column:category_name" example:"Groceries"` // Name of the category
}

var ErrCategoryNameInvalid = errors.New("the category name must not be empty and may only contain letters and numbers")

// TableName sets the table name for categories.
func (Category) TableName() string {
	return "categories"
}

// BeforeSave validates the category name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCategoryNameInvalid
	}

	for _, r := range c.Name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrCategoryNameInvalid
		}
	}

	return nil
}
