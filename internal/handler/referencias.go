package handler

import (
	"net/http"

	"github.com/oscarmanceraa/KitchON/internal/service"

	"github.com/gin-gonic/gin"
)

// ReferenciasHandler serves the read-only lookup catalogs.
type ReferenciasHandler struct{ svc service.ReferenciaService }

func NewReferenciasHandler(svc service.ReferenciaService) *ReferenciasHandler {
	return &ReferenciasHandler{svc: svc}
}

func (h *ReferenciasHandler) ListarEstados(c *gin.Context) {
	resp, err := h.svc.ListarEstados(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferenciasHandler) ListarMesas(c *gin.Context) {
	resp, err := h.svc.ListarMesas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferenciasHandler) ListarTiposProducto(c *gin.Context) {
	resp, err := h.svc.ListarTiposProducto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferenciasHandler) ListarTiposUsuario(c *gin.Context) {
	resp, err := h.svc.ListarTiposUsuario(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
