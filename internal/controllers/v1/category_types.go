package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pfdash/backend/internal/models"
)

// Category is the API representation of a category.
type Category struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-07T18:43:00.271152Z"`
	Name      string    `json:"name" example:"Groceries"`
}

func newCategory(model models.Category) Category {
	return Category{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		Name:      model.Name,
	}
}

// CategoryEditable represents the editable fields of a category.
type CategoryEditable struct {
	Name string `json:"name" example:"Groceries"` // Name of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // The category data
	Error *string   `json:"error"` // Error message, only set when the request failed
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`  // One response per category in the request
	Error *string            `json:"error"` // Error message for the request itself
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// Errors escalate the status code of the response
	newStatus := status(err)
	if currentStatus < newStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // Error message, only set when the request failed
}
