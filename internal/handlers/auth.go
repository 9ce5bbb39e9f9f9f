package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/auth"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/middleware"
)

// AuthHandler exposes register/login/me. Token issuance stays here at the
// edge; the services only ever see user identifiers.
type AuthHandler struct {
	users  *marketplace.UserService
	issuer *auth.TokenIssuer
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), marketplace.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		failFor(c, err)
		return
	}

	token, err := h.issuer.Generate(user.ID)
	if err != nil {
		failFor(c, err)
		return
	}
	created(c, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failFor(c, err)
		return
	}

	token, err := h.issuer.Generate(user.ID)
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		failFor(c, err)
		return
	}
	ok(c, user)
}
