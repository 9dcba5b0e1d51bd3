package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chitieu/backend/internal/auth"
	"github.com/chitieu/backend/internal/config"
	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/internal/httputil"
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAuthRoutes registers registration and login with the public
// router group and session management with the authenticated one.
func RegisterAuthRoutes(public, authed *gin.RouterGroup, cfg *config.Config) {
	public.POST("/register", Register(cfg))
	public.POST("/login", Login(cfg))

	authed.POST("/logout", Logout)
	authed.GET("/me", Me)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public profile of a user.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Register creates a local account.
func Register(_ *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data RegisterRequest
		if err := httputil.BindData(c, &data); err != nil {
			return
		}

		if data.Name == "" || data.Email == "" || data.Password == "" {
			httperrors.New(c, http.StatusBadRequest, "Thiếu dữ liệu cần thiết")
			return
		}

		var existing models.User
		err := models.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(data.Email))).First(&existing).Error
		if err == nil {
			httperrors.New(c, http.StatusBadRequest, models.ErrEmailExists.Error())
			return
		}
		if !errors.Is(err, models.ErrResourceNotFound) {
			httperrors.Handler(c, err)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			httperrors.Handler(c, err)
			return
		}

		user := models.User{
			Name:     data.Name,
			Email:    data.Email,
			Password: string(hashed),
			Provider: models.ProviderLocal,
		}

		err = models.DB.Create(&user).Error
		if err != nil {
			httperrors.Handler(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Đăng ký thành công"})
	}
}

// Login verifies the credentials and issues a bearer token.
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data LoginRequest
		if err := httputil.BindData(c, &data); err != nil {
			return
		}

		var user models.User
		err := models.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(data.Email))).First(&user).Error
		if err != nil {
			if errors.Is(err, models.ErrResourceNotFound) {
				httperrors.New(c, http.StatusBadRequest, "Tài khoản không tồn tại")
				return
			}

			httperrors.Handler(c, err)
			return
		}

		err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password))
		if err != nil {
			httperrors.New(c, http.StatusBadRequest, "Sai mật khẩu")
			return
		}

		token, err := auth.GenerateToken(cfg.JWT.Secret, user.ID, cfg.JWT.Expiry())
		if err != nil {
			httperrors.Handler(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Đăng nhập thành công",
			"token":   token,
			"user": UserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
		})
	}
}

// Logout revokes the current token by blacklisting it until its own
// expiry.
func Logout(c *gin.Context) {
	token := c.MustGet(ContextToken).(string)
	claims := c.MustGet(ContextClaims).(*auth.Claims)

	err := models.BlacklistToken(models.DB, token, claims.ExpiresAt.Time)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// Entries for tokens that expired on their own are useless now
	if err := models.CleanupExpiredTokens(models.DB); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đăng xuất thành công"})
}

// Me returns the profile of the authenticated user.
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
