package handler

import (
	"net/http"
	"os"

	"github.com/oscarmanceraa/KitchON/internal/apierror"
	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/infra"
	"github.com/oscarmanceraa/KitchON/internal/repository"
	"github.com/oscarmanceraa/KitchON/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

func (h *OrdenesHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdenesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesHandler) ActualizarEstado(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarEstadoOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orden eliminada exitosamente"})
}

// TicketsHandler serves the kitchen ticket PDF for an order. The worker pool
// renders tickets asynchronously after creation; a miss here falls back to
// rendering synchronously.
type TicketsHandler struct {
	ordenes     repository.OrdenRepository
	storagePath string
}

func NewTicketsHandler(ordenes repository.OrdenRepository, storagePath string) *TicketsHandler {
	return &TicketsHandler{ordenes: ordenes, storagePath: storagePath}
}

func (h *TicketsHandler) Descargar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	path := infra.TicketPath(h.storagePath, id)
	if _, err := os.Stat(path); err != nil {
		orden, err := h.ordenes.FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, apierror.New("Orden no encontrada"))
			return
		}
		if path, err = infra.GenerateTicketPDF(orden, h.storagePath); err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			return
		}
	}

	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
