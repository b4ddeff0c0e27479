package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/model"
	"github.com/oscarmanceraa/KitchON/internal/service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newUsuarioService() (service.UsuarioService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo, newStubTipoUsuarioRepo(), newStubEstadoRepo())
	return svc, repo
}

func TestCrearUsuario_ConPersona(t *testing.T) {
	svc, repo := newUsuarioService()

	segundo := "Andrés"
	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Persona: dto.PersonaRequest{
			PrimerNombre:   "Juan",
			SegundoNombre:  &segundo,
			PrimerApellido: "Pérez",
		},
		IdTipoUsuario: 2,
		Username:      "juan",
		Password:      "mesero123",
		IdEstado:      1,
	})
	assert.NoError(t, err)
	assert.NotZero(t, resp.IdUsuario)
	assert.Equal(t, "juan", resp.Username)
	assert.NotNil(t, resp.Persona)
	assert.Equal(t, "Juan", resp.Persona.PrimerNombre)
	assert.Equal(t, "Andrés", *resp.Persona.SegundoNombre)

	// The stored credential is a bcrypt hash of the submitted password,
	// never the plaintext.
	stored := repo.items[resp.IdUsuario]
	assert.NotEqual(t, "mesero123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("mesero123")))
}

func TestCrearUsuario_TipoInexistente(t *testing.T) {
	svc, repo := newUsuarioService()

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Persona:       dto.PersonaRequest{PrimerNombre: "Ana", PrimerApellido: "Ruiz"},
		IdTipoUsuario: 99,
		Username:      "ana",
		Password:      "clave123",
		IdEstado:      1,
	})
	assert.True(t, errors.Is(err, service.ErrReferenciaInvalida))
	assert.Empty(t, repo.items)
}

func TestActualizarUsuario_CambioDePassword(t *testing.T) {
	svc, repo := newUsuarioService()
	u := seedUser(t, repo, "carlos", "vieja123", model.TipoUsuarioMesero, true)

	_, err := svc.Actualizar(context.Background(), u.ID, dto.ActualizarUsuarioRequest{
		Password: "nueva456",
	})
	assert.NoError(t, err)

	stored := repo.items[u.ID]
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("vieja123")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva456")))
}

func TestActualizarUsuario_Desactivar(t *testing.T) {
	svc, repo := newUsuarioService()
	u := seedUser(t, repo, "carlos", "mesero123", model.TipoUsuarioMesero, true)

	resp, err := svc.Actualizar(context.Background(), u.ID, dto.ActualizarUsuarioRequest{
		IdEstado: 7, // Inactivo
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.IdEstado)

	// The password hash is untouched by a status-only update.
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.items[u.ID].PasswordHash), []byte("mesero123")))
}

func TestActualizarUsuario_Inexistente(t *testing.T) {
	svc, _ := newUsuarioService()

	_, err := svc.Actualizar(context.Background(), 99, dto.ActualizarUsuarioRequest{IdEstado: 1})
	assert.True(t, errors.Is(err, service.ErrNoEncontrado))
}

func TestListarUsuarios(t *testing.T) {
	svc, repo := newUsuarioService()
	seedUser(t, repo, "admin", "admin123", model.TipoUsuarioAdministrador, true)
	seedUser(t, repo, "maria", "mesero123", model.TipoUsuarioMesero, true)

	list, err := svc.Listar(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "admin", list[0].Username)
}
