package controllers

import (
	"errors"
	"time"

	"packflow/config"
	"packflow/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func signToken(userID uint, sessionID string, ttl int) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    float64(userID),
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(ttl) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// Login verifies credentials, opens a session and sets the access and
// refresh token cookies.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input loginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Email and password are required"})
	}

	var user models.User
	if err := c.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	sessionID := uuid.New().String()
	now := time.Now()

	// One active session per user.
	c.DB.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", user.ID, true).
		Update("is_active", false)

	session := models.UserSession{
		UserID:         user.ID,
		SessionID:      sessionID,
		IPAddress:      ctx.IP(),
		UserAgent:      string(ctx.Request().Header.UserAgent()),
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Duration(config.RefreshExpiration) * time.Second),
	}
	if err := c.DB.Create(&session).Error; err != nil {
		return respondError(ctx, err)
	}

	accessToken, err := signToken(user.ID, sessionID, config.AccessExpiration)
	if err != nil {
		return respondError(ctx, err)
	}
	refreshToken, err := signToken(user.ID, sessionID, config.RefreshExpiration)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Cookie(config.GetAccessCookie(accessToken))
	ctx.Cookie(config.GetRefreshCookie(refreshToken))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role,
		},
	})
}

// Refresh validates the refresh cookie against the session and issues a new
// access token cookie.
func (c *AuthController) Refresh(ctx *fiber.Ctx) error {
	refresh := ctx.Cookies("refresh_token")
	if refresh == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Missing refresh token"})
	}

	token, err := jwt.Parse(refresh, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid refresh token"})
	}
	userID, okUser := claims["user_id"].(float64)
	sessionID, okSession := claims["session_id"].(string)
	if !okUser || !okSession {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid refresh token"})
	}

	var session models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ? AND expires_at > ?",
		sessionID, true, time.Now()).First(&session).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Session expired"})
	}

	accessToken, err := signToken(uint(userID), sessionID, config.AccessExpiration)
	if err != nil {
		return respondError(ctx, err)
	}
	ctx.Cookie(config.GetAccessCookie(accessToken))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Token refreshed"})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "invalid session"})
	}

	var session models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).First(&session).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "invalid session"})
	}

	session.IsActive = false
	session.LastActivityAt = time.Now()
	c.DB.Save(&session)

	ctx.Cookie(config.GetAccessCookie(""))
	ctx.Cookie(config.GetRefreshCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Logout successful"})
}

func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged in",
		"data":    ctx.Locals("userData"),
	})
}
