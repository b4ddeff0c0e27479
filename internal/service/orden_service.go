package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/model"
	"github.com/oscarmanceraa/KitchON/internal/repository"
	"github.com/oscarmanceraa/KitchON/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type OrdenService interface {
	Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.OrdenResponse, error)
	Listar(ctx context.Context) ([]dto.OrdenResponse, error)
	ActualizarEstado(ctx context.Context, id uint, req dto.ActualizarEstadoOrdenRequest) (*dto.OrdenResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type ordenService struct {
	repo         repository.OrdenRepository
	usuarioRepo  repository.UsuarioRepository
	mesaRepo     repository.MesaRepository
	estadoRepo   repository.EstadoRepository
	productoRepo repository.ProductoRepository
	dispatcher   *worker.Dispatcher
}

func NewOrdenService(
	repo repository.OrdenRepository,
	usuarioRepo repository.UsuarioRepository,
	mesaRepo repository.MesaRepository,
	estadoRepo repository.EstadoRepository,
	productoRepo repository.ProductoRepository,
	dispatcher *worker.Dispatcher,
) OrdenService {
	return &ordenService{
		repo:         repo,
		usuarioRepo:  usuarioRepo,
		mesaRepo:     mesaRepo,
		estadoRepo:   estadoRepo,
		productoRepo: productoRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Order creation is the one multi-row write in the system:
//   1. Pre-flight: every referenced id (usuario, mesa, estado, productos) must
//      exist, and no product may repeat — all checked before any write.
//   2. BEGIN TX: insert the header (server-side FechaCreacion) plus one row
//      per line item. Any failure rolls the whole order back; a header
//      without its items is never observable.
//   3. COMMIT, then (async, best-effort) enqueue the kitchen ticket job.

func (s *ordenService) Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	if _, err := s.usuarioRepo.FindByID(ctx, req.IdUsuario); err != nil {
		return nil, refErr(err, "usuario", req.IdUsuario)
	}
	if _, err := s.mesaRepo.FindByID(ctx, req.IdMesa); err != nil {
		return nil, refErr(err, "mesa", req.IdMesa)
	}
	if _, err := s.estadoRepo.FindByID(ctx, req.IdEstado); err != nil {
		return nil, refErr(err, "estado", req.IdEstado)
	}

	// A product appears at most once per order; repeats are rejected, matching
	// the composite (producto, orden) uniqueness constraint.
	seen := make(map[uint]bool, len(req.Productos))
	for _, item := range req.Productos {
		if seen[item.IdProducto] {
			return nil, fmt.Errorf("%w: producto %d", ErrProductoDuplicado, item.IdProducto)
		}
		seen[item.IdProducto] = true
		if _, err := s.productoRepo.FindByID(ctx, item.IdProducto); err != nil {
			return nil, refErr(err, "producto", item.IdProducto)
		}
	}

	orden := model.Orden{
		UsuarioID: req.IdUsuario,
		MesaID:    req.IdMesa,
		EstadoID:  req.IdEstado,
	}
	for _, item := range req.Productos {
		cantidad := item.Cantidad
		if cantidad == 0 {
			cantidad = 1
		}
		orden.Productos = append(orden.Productos, model.ProductoOrden{
			ProductoID: item.IdProducto,
			Cantidad:   cantidad,
			Notas:      item.Notas,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &orden)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Kitchen ticket rendering is fire & forget — a queue failure never
	// fails the committed order.
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueTicket(ctx, worker.TicketPayload{OrdenID: orden.ID}); err != nil {
			log.Warn().Uint("id_orden", orden.ID).Err(err).Msg("no se pudo encolar el ticket")
		}
	}

	// Resolve the nested graph for the response.
	created, err := s.repo.FindByID(ctx, orden.ID)
	if err != nil {
		return ordenToResponse(&orden), nil
	}
	return ordenToResponse(created), nil
}

func (s *ordenService) ObtenerPorID(ctx context.Context, id uint) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return ordenToResponse(o), nil
}

// Listar returns every order, most recently created first.
func (s *ordenService) Listar(ctx context.Context) ([]dto.OrdenResponse, error) {
	ordenes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrdenResponse, 0, len(ordenes))
	for i := range ordenes {
		resp = append(resp, *ordenToResponse(&ordenes[i]))
	}
	return resp, nil
}

// ActualizarEstado replaces only the estado reference. Line items and the
// creation timestamp are untouched, and no transition graph is enforced —
// estados are flat tags, not a workflow.
func (s *ordenService) ActualizarEstado(ctx context.Context, id uint, req dto.ActualizarEstadoOrdenRequest) (*dto.OrdenResponse, error) {
	if _, err := s.estadoRepo.FindByID(ctx, req.IdEstado); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: estado %d", ErrNoEncontrado, req.IdEstado)
		}
		return nil, err
	}
	if err := s.repo.UpdateEstado(ctx, id, req.IdEstado); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return ordenToResponse(o), nil
}

// Eliminar removes the order; its line items disappear with it (cascade).
// An absent id is an error, not a no-op.
func (s *ordenService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}
