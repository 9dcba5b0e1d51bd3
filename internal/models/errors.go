package models

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrGeneral is returned when the database failed in a way we cannot
	// explain to the user. The message matches what clients of the API
	// have always received for unexpected failures.
	ErrGeneral = errors.New("Server Error")

	// ErrResourceNotFound is wrapped with the resource name by the query
	// callback, e.g. "Không tìm thấy danh mục".
	ErrResourceNotFound = errors.New("Không tìm thấy")

	ErrEmailExists    = errors.New("Email đã tồn tại")
	ErrCategoryExists = errors.New("Danh mục đã tồn tại")
)

// ErrBudgetExists is returned when a budget for the same
// (owner, category, month, year) tuple already exists. It carries the ID
// of the existing record so that the client can offer to update it
// instead.
type ErrBudgetExists struct {
	BudgetID uuid.UUID
}

func (e ErrBudgetExists) Error() string {
	return "Định mức cho danh mục này trong tháng đã tồn tại."
}
