package controllers

import (
	"net/http"
	"strconv"

	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the routes for statistics with the
// RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.GET("/year", GetYearlyStats)
}

// GetYearlyStats returns the spending report for one calendar year.
func GetYearlyStats(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "Thiếu tham số year")
		return
	}

	user := currentUser(c)

	stats, err := models.ComputeYearlyStats(models.DB, user.ID, year)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
