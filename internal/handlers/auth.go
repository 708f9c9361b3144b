package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/hash"
	"github.com/sstarkov/styleshop/internal/jwtmiddleware"
	"github.com/sstarkov/styleshop/internal/models"
	"github.com/sstarkov/styleshop/internal/mykafka"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
	Producer  *mykafka.Producer
}

type authResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    models.User `json:"user"`
}

func (h *AuthHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["userID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	var existing models.User
	err := h.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return respondError(c, http.StatusBadRequest, "Username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	err = h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return respondError(c, http.StatusBadRequest, "Email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	token, err := jwtmiddleware.SignToken(user.ID, h.JWTSecret)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]interface{}{
		"type":     "user_registrated",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := jwtmiddleware.SignToken(user.ID, h.JWTSecret)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]interface{}{
		"type":     "user_loged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := jwtmiddleware.UserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "Missing or invalid token")
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return respondError(c, http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    user,
	})
}
