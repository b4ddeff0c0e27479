package service

import (
	"context"
	"errors"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/model"
	"github.com/oscarmanceraa/KitchON/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type UsuarioService interface {
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
}

type usuarioService struct {
	repo    repository.UsuarioRepository
	tipos   repository.TipoUsuarioRepository
	estados repository.EstadoRepository
}

func NewUsuarioService(
	repo repository.UsuarioRepository,
	tipos repository.TipoUsuarioRepository,
	estados repository.EstadoRepository,
) UsuarioService {
	return &usuarioService{repo: repo, tipos: tipos, estados: estados}
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *usuarioToResponse(&usuarios[i]))
	}
	return resp, nil
}

func (s *usuarioService) ObtenerPorID(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return usuarioToResponse(u), nil
}

// Crear registers the account and its Persona in one write. The plaintext
// password is hashed here and discarded.
func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.tipos.FindByID(ctx, req.IdTipoUsuario); err != nil {
		return nil, refErr(err, "tipo de usuario", req.IdTipoUsuario)
	}
	if _, err := s.estados.FindByID(ctx, req.IdEstado); err != nil {
		return nil, refErr(err, "estado", req.IdEstado)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		TipoUsuarioID: req.IdTipoUsuario,
		Username:      req.Username,
		PasswordHash:  string(hash),
		EstadoID:      req.IdEstado,
		Persona: &model.Persona{
			PrimerNombre:    req.Persona.PrimerNombre,
			SegundoNombre:   req.Persona.SegundoNombre,
			PrimerApellido:  req.Persona.PrimerApellido,
			SegundoApellido: req.Persona.SegundoApellido,
		},
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	created, err := s.repo.FindByID(ctx, u.ID)
	if err != nil {
		return usuarioToResponse(u), nil
	}
	return usuarioToResponse(created), nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	if req.IdTipoUsuario != 0 {
		if _, err := s.tipos.FindByID(ctx, req.IdTipoUsuario); err != nil {
			return nil, refErr(err, "tipo de usuario", req.IdTipoUsuario)
		}
		u.TipoUsuarioID = req.IdTipoUsuario
	}
	if req.IdEstado != 0 {
		if _, err := s.estados.FindByID(ctx, req.IdEstado); err != nil {
			return nil, refErr(err, "estado", req.IdEstado)
		}
		u.EstadoID = req.IdEstado
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.TipoUsuario = nil
	u.Estado = nil
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return usuarioToResponse(u), nil
	}
	return usuarioToResponse(updated), nil
}
