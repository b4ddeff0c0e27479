package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/handler"
	"github.com/oscarmanceraa/KitchON/internal/model"
	"github.com/oscarmanceraa/KitchON/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// A nil Redis client disables caching; lists come straight from the store.
func newReferenciaService() service.ReferenciaService {
	return service.NewReferenciaService(
		newStubEstadoRepo(),
		newStubMesaRepo(3),
		newStubTipoProductoRepo(),
		newStubTipoUsuarioRepo(),
		nil,
	)
}

func TestListarEstados(t *testing.T) {
	svc := newReferenciaService()

	estados, err := svc.ListarEstados(context.Background())
	assert.NoError(t, err)
	assert.Len(t, estados, len(model.Estados))
	assert.Equal(t, model.EstadoActivo, estados[0].Estado)
	assert.Equal(t, uint(1), estados[0].IdEstado)
}

func TestListarMesas(t *testing.T) {
	svc := newReferenciaService()

	mesas, err := svc.ListarMesas(context.Background())
	assert.NoError(t, err)
	assert.Len(t, mesas, 3)
	assert.Equal(t, "Mesa 1", mesas[0].Mesa)
}

func TestListarTiposUsuario(t *testing.T) {
	svc := newReferenciaService()

	tipos, err := svc.ListarTiposUsuario(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tipos, 3)
	assert.Equal(t, model.TipoUsuarioAdministrador, tipos[0].TipoUsuario)
}

func TestReferenciasHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReferenciasHandler(newReferenciaService())
	r.GET("/estados", h.ListarEstados)
	r.GET("/tipos-producto", h.ListarTiposProducto)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/estados", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var estados []dto.EstadoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &estados))
	assert.Len(t, estados, len(model.Estados))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/tipos-producto", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var tipos []dto.TipoProductoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tipos))
	assert.NotEmpty(t, tipos)
}
