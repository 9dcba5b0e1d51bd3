// Package httperrors maps errors to the fixed-shape {message} JSON body
// every handler returns on failure.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/chitieu/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Message string `json:"message" example:"Không tìm thấy danh mục"`
}

// New generates a struct containing the HTTP error on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Message: msg,
	})
}

// InvalidBody is used when the request body could not be bound.
func InvalidBody(c *gin.Context) {
	New(c, http.StatusBadRequest, "Dữ liệu trong yêu cầu không hợp lệ")
}

// Handler handles errors from the models layer.
func Handler(c *gin.Context, err error) {
	var budgetExists models.ErrBudgetExists

	switch {
	// Duplicate budget tuple: surface the existing record's ID so the
	// caller can decide to update it instead.
	case errors.As(err, &budgetExists):
		c.JSON(http.StatusConflict, gin.H{
			"message":  budgetExists.Error(),
			"budgetId": budgetExists.BudgetID,
		})

	// No record found => 404
	case errors.Is(err, models.ErrResourceNotFound):
		New(c, http.StatusNotFound, err.Error())

	case errors.Is(err, models.ErrEmailExists),
		errors.Is(err, models.ErrCategoryExists):
		New(c, http.StatusBadRequest, err.Error())

	// End of file reached when reading
	case errors.Is(io.EOF, err):
		New(c, http.StatusBadRequest, "Nội dung yêu cầu không được để trống")

	// All other errors
	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		New(c, http.StatusInternalServerError, models.ErrGeneral.Error())
	}
}
