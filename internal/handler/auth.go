package handler

import (
	"net/http"
	"strings"

	"github.com/oscarmanceraa/KitchON/internal/apierror"
	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login answers {usuario, token} on success, 401 otherwise.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify re-validates the bearer token against the account store: a token
// outlives neither its expiry nor its account's Activo estado.
func (h *AuthHandler) Verify(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, apierror.New("Token no proporcionado"))
		return
	}
	resp, err := h.svc.Verify(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
