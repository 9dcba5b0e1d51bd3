// Package controllers implements the request handlers of the API.
package controllers

import (
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by the authentication middleware.
const (
	ContextUser   = "currentUser"
	ContextToken  = "currentToken"
	ContextClaims = "currentClaims"
)

// currentUser returns the authenticated user. The authentication
// middleware guarantees it is set on every route that reaches a
// handler using it.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(ContextUser).(*models.User)
}
