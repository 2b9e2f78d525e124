package controllers

import (
	"errors"
	"net/http"

	"github.com/georgesofianosgr/care-track/services"
	"github.com/georgesofianosgr/care-track/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc    *services.AuthService
	Secret []byte
}

func NewAuthController(svc *services.AuthService, secret []byte) *AuthController {
	return &AuthController{Svc: svc, Secret: secret}
}

// Login resolves or creates a user by email and returns it with a session
// token.
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Svc.LoginWithEmail(c.Request.Context(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Session returns the user the persisted session pointer resolves to.
func (h *AuthController) Session(c *gin.Context) {
	user, err := h.Svc.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthController) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// userIDFromCtx reads the user id set by the auth middleware.
func userIDFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
