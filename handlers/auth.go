package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"quickcourt/models"
	"quickcourt/store"
	"quickcourt/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// AuthHandler serves demo registration and login.
type AuthHandler struct {
	Users  store.UserStore
	Logger *zap.Logger
}

func NewAuthHandler(users store.UserStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

type registerInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "fullName, email and password (min 6 chars) are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		FullName: input.FullName,
		Email:    strings.ToLower(input.Email),
		Role:     "user",
	}
	if err := h.Users.CreateUser(c.Request.Context(), user, hash); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		h.Logger.Error("failed to create user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Success: true, Token: token, User: &user})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, hash, err := h.Users.GetUserByEmail(c.Request.Context(), strings.ToLower(input.Email))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Success: true, Token: token, User: &user})
}
