package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chitieu/backend/internal/format"
	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/internal/httputil"
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.POST("", CreateExpense)
	r.GET("", GetExpenses)
	r.GET("/by-month-year", GetExpensesByMonthYear)
	r.GET("/total", GetTotalExpense)
	r.PUT("/:id", UpdateExpense)
	r.DELETE("/:id", DeleteExpense)
}

type ExpenseCreate struct {
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// ExpenseUpdate uses pointers so that omitted fields keep their
// current value. Month and year are deliberately not bindable, they
// are always derived from the date.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal `json:"amount"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}

// ExpenseResponse is an expense with its display amount.
type ExpenseResponse struct {
	models.Expense
	FormattedAmount string `json:"formattedAmount"`
}

// categoryExists verifies that the category belongs to the user.
func categoryExists(user *models.User, id uuid.UUID) error {
	var category models.Category
	return models.DB.Where("owner_id = ?", user.ID).First(&category, id).Error
}

// CreateExpense records a new expense for the authenticated user.
func CreateExpense(c *gin.Context) {
	var data ExpenseCreate
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if data.CategoryID == uuid.Nil || data.Description == "" || data.Date == "" {
		httperrors.New(c, http.StatusBadRequest, "Vui lòng điền vào tất cả ô trống!")
		return
	}

	if !data.Amount.IsPositive() {
		httperrors.New(c, http.StatusBadRequest, "Số tiền phải là một số lớn hơn 0!")
		return
	}

	date, err := httputil.ParseDate(data.Date)
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "Ngày không hợp lệ")
		return
	}

	user := currentUser(c)

	if err := categoryExists(user, data.CategoryID); err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			httperrors.New(c, http.StatusNotFound, "Danh mục không tồn tại")
			return
		}
		httperrors.Handler(c, err)
		return
	}

	expense := models.Expense{
		Amount:      data.Amount,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		Date:        date,
		OwnerID:     user.ID,
	}

	err = models.DB.Create(&expense).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses lists the user's expenses, newest first, with their
// display amounts.
func GetExpenses(c *gin.Context) {
	user := currentUser(c)

	var expenses []models.Expense
	err := models.DB.
		Preload("Category").
		Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Find(&expenses).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, withFormattedAmounts(expenses))
}

// GetExpensesByMonthYear lists the user's expenses for one month.
func GetExpensesByMonthYear(c *gin.Context) {
	user := currentUser(c)

	month, errMonth := strconv.Atoi(c.Query("month"))
	year, errYear := strconv.Atoi(c.Query("year"))
	if errMonth != nil || errYear != nil || month < 1 || month > 12 {
		httperrors.New(c, http.StatusBadRequest, "Thiếu tham số month hoặc year")
		return
	}

	var expenses []models.Expense
	err := models.DB.
		Preload("Category").
		Where("owner_id = ? AND month = ? AND year = ?", user.ID, month, year).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, withFormattedAmounts(expenses))
}

// GetTotalExpense sums the user's expenses, optionally restricted to
// one month.
func GetTotalExpense(c *gin.Context) {
	user := currentUser(c)

	q := models.DB.Model(&models.Expense{}).Where("owner_id = ?", user.ID)

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			httperrors.New(c, http.StatusBadRequest, "Thiếu tham số month hoặc year")
			return
		}
		q = q.Where("month = ?", month)
	}

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			httperrors.New(c, http.StatusBadRequest, "Thiếu tham số month hoặc year")
			return
		}
		q = q.Where("year = ?", year)
	}

	var total decimal.NullDecimal
	err := q.Select("SUM(amount)").Scan(&total).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	sum := decimal.Zero
	if total.Valid {
		sum = total.Decimal
	}

	c.JSON(http.StatusOK, gin.H{
		"total":          sum,
		"formattedTotal": format.Abbreviate(sum),
	})
}

// UpdateExpense changes an expense. When the date changes, month and
// year are re-derived in the same write.
func UpdateExpense(c *gin.Context) {
	user := currentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "ID không hợp lệ")
		return
	}

	var expense models.Expense
	err = models.DB.Where("owner_id = ?", user.ID).First(&expense, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data ExpenseUpdate
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if data.Amount != nil {
		if !data.Amount.IsPositive() {
			httperrors.New(c, http.StatusBadRequest, "Số tiền phải là một số lớn hơn 0!")
			return
		}
		expense.Amount = *data.Amount
	}

	if data.CategoryID != nil {
		if err := categoryExists(user, *data.CategoryID); err != nil {
			if errors.Is(err, models.ErrResourceNotFound) {
				httperrors.New(c, http.StatusNotFound, "Danh mục không tồn tại")
				return
			}
			httperrors.Handler(c, err)
			return
		}
		expense.CategoryID = *data.CategoryID
	}

	if data.Description != nil {
		expense.Description = *data.Description
	}

	if data.Date != nil {
		date, err := httputil.ParseDate(*data.Date)
		if err != nil {
			httperrors.New(c, http.StatusBadRequest, "Ngày không hợp lệ")
			return
		}
		expense.Date = date
	}

	err = models.DB.Save(&expense).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense deletes an expense.
func DeleteExpense(c *gin.Context) {
	user := currentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "ID không hợp lệ")
		return
	}

	var expense models.Expense
	err = models.DB.Where("owner_id = ?", user.ID).First(&expense, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa chi phí thành công"})
}

func withFormattedAmounts(expenses []models.Expense) []ExpenseResponse {
	data := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, ExpenseResponse{
			Expense:         e,
			FormattedAmount: format.Abbreviate(e.Amount),
		})
	}

	return data
}
