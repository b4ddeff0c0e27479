package service

import (
	"context"
	"errors"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/model"
	"github.com/oscarmanceraa/KitchON/internal/repository"

	"gorm.io/gorm"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo    repository.ProductoRepository
	tipos   repository.TipoProductoRepository
	estados repository.EstadoRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	tipos repository.TipoProductoRepository,
	estados repository.EstadoRepository,
) ProductoService {
	return &productoService{repo: repo, tipos: tipos, estados: estados}
}

// checkRefs rejects payloads whose tipo or estado reference nothing,
// before any write happens.
func (s *productoService) checkRefs(ctx context.Context, tipoID, estadoID uint) error {
	if _, err := s.tipos.FindByID(ctx, tipoID); err != nil {
		return refErr(err, "tipo de producto", tipoID)
	}
	if _, err := s.estados.FindByID(ctx, estadoID); err != nil {
		return refErr(err, "estado", estadoID)
	}
	return nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if err := s.checkRefs(ctx, req.IdTipoProducto, req.IdEstado); err != nil {
		return nil, err
	}
	p := &model.Producto{
		TipoProductoID: req.IdTipoProducto,
		Nombre:         req.NombreProducto,
		Valor:          req.Valor,
		EstadoID:       req.IdEstado,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	// Re-read to resolve the nested tipo and estado for the response.
	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return productoToResponse(p), nil
	}
	return productoToResponse(created), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	if err := s.checkRefs(ctx, req.IdTipoProducto, req.IdEstado); err != nil {
		return nil, err
	}
	p.TipoProductoID = req.IdTipoProducto
	p.Nombre = req.NombreProducto
	p.Valor = req.Valor
	p.EstadoID = req.IdEstado
	p.TipoProducto = nil
	p.Estado = nil
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return productoToResponse(p), nil
	}
	return productoToResponse(updated), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}
