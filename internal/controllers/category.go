package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/internal/httputil"
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.POST("", CreateCategory)
	r.GET("", GetCategories)
	r.PUT("/:id", UpdateCategory)
	r.DELETE("/:id", DeleteCategory)
}

type CategoryEditable struct {
	Name string `json:"name"`
}

// CreateCategory creates a new category for the authenticated user.
func CreateCategory(c *gin.Context) {
	var data CategoryEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if strings.TrimSpace(data.Name) == "" {
		httperrors.New(c, http.StatusBadRequest, "Tên danh mục không được để trống")
		return
	}

	user := currentUser(c)

	var existing models.Category
	err := models.DB.Where("owner_id = ? AND name = ?", user.ID, strings.TrimSpace(data.Name)).First(&existing).Error
	if err == nil {
		httperrors.New(c, http.StatusBadRequest, models.ErrCategoryExists.Error())
		return
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		httperrors.Handler(c, err)
		return
	}

	category := models.Category{
		Name:    data.Name,
		OwnerID: user.ID,
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories returns the categories of the authenticated user. When
// the user has none yet, the default set is seeded first.
func GetCategories(c *gin.Context) {
	user := currentUser(c)

	err := models.SeedDefaultCategories(models.DB, user.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var categories []models.Category
	err = models.DB.
		Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// UpdateCategory renames a category.
func UpdateCategory(c *gin.Context) {
	user := currentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "ID không hợp lệ")
		return
	}

	var category models.Category
	err = models.DB.Where("owner_id = ?", user.ID).First(&category, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data CategoryEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if strings.TrimSpace(data.Name) == "" {
		httperrors.New(c, http.StatusBadRequest, "Tên danh mục không được để trống")
		return
	}

	category.Name = data.Name
	err = models.DB.Save(&category).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category.
func DeleteCategory(c *gin.Context) {
	user := currentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "ID không hợp lệ")
		return
	}

	var category models.Category
	err = models.DB.Where("owner_id = ?", user.ID).First(&category, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa danh mục thành công"})
}
