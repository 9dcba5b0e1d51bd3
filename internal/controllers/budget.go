package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/internal/httputil"
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.POST("", CreateBudget)
	r.GET("", GetBudgets)
	r.GET("/by-month", GetBudgetsByMonth)
	r.PUT("/:id", UpdateBudget)
	r.DELETE("/:id", DeleteBudget)
}

type BudgetCreate struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Limit      decimal.Decimal `json:"limit"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
}

// BudgetUpdate uses pointers so that omitted fields keep their
// current value. The category of a budget cannot be changed.
type BudgetUpdate struct {
	Limit *decimal.Decimal `json:"limit"`
	Month *int             `json:"month"`
	Year  *int             `json:"year"`
}

// CreateBudget sets a spending limit for one category in one month.
// Only one budget may exist per category and month, a second attempt
// is answered with a conflict that names the existing budget.
func CreateBudget(c *gin.Context) {
	var data BudgetCreate
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if data.CategoryID == uuid.Nil || data.Month == 0 || data.Year == 0 {
		httperrors.New(c, http.StatusBadRequest, "Thiếu dữ liệu cần thiết")
		return
	}

	if data.Month < 1 || data.Month > 12 {
		httperrors.New(c, http.StatusBadRequest, "Tháng phải nằm trong khoảng từ 1 đến 12")
		return
	}

	if !data.Limit.IsPositive() {
		httperrors.New(c, http.StatusBadRequest, "Định mức phải là một số lớn hơn 0!")
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

	err := models.CheckBudgetUnique(models.DB, user.ID, data.CategoryID, data.Month, data.Year)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	budget := models.Budget{
		CategoryID: data.CategoryID,
		Limit:      data.Limit,
		Month:      data.Month,
		Year:       data.Year,
		OwnerID:    user.ID,
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// GetBudgets lists the user's budgets, newest first.
func GetBudgets(c *gin.Context) {
	user := currentUser(c)

	var budgets []models.Budget
	err := models.DB.
		Preload("Category").
		Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Find(&budgets).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// GetBudgetsByMonth lists the user's budgets for one month.
func GetBudgetsByMonth(c *gin.Context) {
	user := currentUser(c)

	month, errMonth := strconv.Atoi(c.Query("month"))
	year, errYear := strconv.Atoi(c.Query("year"))
	if errMonth != nil || errYear != nil || month < 1 || month > 12 {
		httperrors.New(c, http.StatusBadRequest, "Thiếu tham số month hoặc year")
		return
	}

	var budgets []models.Budget
	err := models.DB.
		Preload("Category").
		Where("owner_id = ? AND month = ? AND year = ?", user.ID, month, year).
		Find(&budgets).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// UpdateBudget changes the limit, month or year of a budget.
func UpdateBudget(c *gin.Context) {
	user := currentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "ID không hợp lệ")
		return
	}

	var budget models.Budget
	err = models.DB.Where("owner_id = ?", user.ID).First(&budget, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data BudgetUpdate
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if data.Limit != nil {
		if !data.Limit.IsPositive() {
			httperrors.New(c, http.StatusBadRequest, "Định mức phải là một số lớn hơn 0!")
			return
		}
		budget.Limit = *data.Limit
	}

	if data.Month != nil {
		if *data.Month < 1 || *data.Month > 12 {
			httperrors.New(c, http.StatusBadRequest, "Tháng phải nằm trong khoảng từ 1 đến 12")
			return
		}
		budget.Month = *data.Month
	}

	if data.Year != nil {
		budget.Year = *data.Year
	}

	err = models.DB.Save(&budget).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// DeleteBudget deletes a budget.
func DeleteBudget(c *gin.Context) {
	user := currentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "ID không hợp lệ")
		return
	}

	var budget models.Budget
	err = models.DB.Where("owner_id = ?", user.ID).First(&budget, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa định mức thành công"})
}
