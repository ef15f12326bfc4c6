package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffly_backend/internals/configs"
	dto "staffly_backend/internals/features/users/auth/dto"
	model "staffly_backend/internals/features/users/auth/model"
	helper "staffly_backend/internals/helpers"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := h.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    access,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromUserModel(user),
	})
}

/* ======================= LOGOUT ======================= */
// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
	}

	entry := model.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiresAt: time.Now().Add(accessTokenTTL),
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke token")
	}

	c.ClearCookie(helper.AccessTokenCookie)
	return helper.JsonOK(c, "Logged out", nil)
}

func signToken(user model.UserModel, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
