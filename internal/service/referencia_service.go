package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/repository"

	"github.com/redis/go-redis/v9"
)

// Reference catalogs change only via seeding, so list responses are cached in
// Redis with a TTL. A nil client disables caching (unit test mode).
const refCacheTTL = time.Hour

// Cache keys for the reference catalogs. cmd/seed drops them after writing
// so a reseed is visible immediately instead of after TTL expiry.
const (
	CacheKeyEstados       = "ref:estados"
	CacheKeyMesas         = "ref:mesas"
	CacheKeyTiposProducto = "ref:tipos_producto"
	CacheKeyTiposUsuario  = "ref:tipos_usuario"
)

// InvalidateRefCache drops every cached reference list. Callers that mutate
// the catalogs out of band (seeding, migrations) run this afterwards.
func InvalidateRefCache(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx,
		CacheKeyEstados, CacheKeyMesas, CacheKeyTiposProducto, CacheKeyTiposUsuario,
	).Err()
}

type ReferenciaService interface {
	ListarEstados(ctx context.Context) ([]dto.EstadoResponse, error)
	ListarMesas(ctx context.Context) ([]dto.MesaResponse, error)
	ListarTiposProducto(ctx context.Context) ([]dto.TipoProductoResponse, error)
	ListarTiposUsuario(ctx context.Context) ([]dto.TipoUsuarioResponse, error)
}

type referenciaService struct {
	estados       repository.EstadoRepository
	mesas         repository.MesaRepository
	tiposProducto repository.TipoProductoRepository
	tiposUsuario  repository.TipoUsuarioRepository
	rdb           *redis.Client
}

func NewReferenciaService(
	estados repository.EstadoRepository,
	mesas repository.MesaRepository,
	tiposProducto repository.TipoProductoRepository,
	tiposUsuario repository.TipoUsuarioRepository,
	rdb *redis.Client,
) ReferenciaService {
	return &referenciaService{
		estados:       estados,
		mesas:         mesas,
		tiposProducto: tiposProducto,
		tiposUsuario:  tiposUsuario,
		rdb:           rdb,
	}
}

// listCached serves a reference list from Redis when possible, loading from
// the repository on a miss and repopulating the cache best-effort.
func listCached[T any](ctx context.Context, rdb *redis.Client, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if rdb != nil {
		if cached, err := rdb.Get(ctx, key).Bytes(); err == nil {
			var out []T
			if jsonErr := json.Unmarshal(cached, &out); jsonErr == nil {
				return out, nil
			}
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		if b, jsonErr := json.Marshal(out); jsonErr == nil {
			_ = rdb.Set(ctx, key, b, refCacheTTL).Err()
		}
	}
	return out, nil
}

func (s *referenciaService) ListarEstados(ctx context.Context) ([]dto.EstadoResponse, error) {
	return listCached(ctx, s.rdb, CacheKeyEstados, func(ctx context.Context) ([]dto.EstadoResponse, error) {
		estados, err := s.estados.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dto.EstadoResponse, 0, len(estados))
		for i := range estados {
			resp = append(resp, *estadoToResponse(&estados[i]))
		}
		return resp, nil
	})
}

func (s *referenciaService) ListarMesas(ctx context.Context) ([]dto.MesaResponse, error) {
	return listCached(ctx, s.rdb, CacheKeyMesas, func(ctx context.Context) ([]dto.MesaResponse, error) {
		mesas, err := s.mesas.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dto.MesaResponse, 0, len(mesas))
		for i := range mesas {
			resp = append(resp, *mesaToResponse(&mesas[i]))
		}
		return resp, nil
	})
}

func (s *referenciaService) ListarTiposProducto(ctx context.Context) ([]dto.TipoProductoResponse, error) {
	return listCached(ctx, s.rdb, CacheKeyTiposProducto, func(ctx context.Context) ([]dto.TipoProductoResponse, error) {
		tipos, err := s.tiposProducto.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dto.TipoProductoResponse, 0, len(tipos))
		for i := range tipos {
			resp = append(resp, *tipoProductoToResponse(&tipos[i]))
		}
		return resp, nil
	})
}

func (s *referenciaService) ListarTiposUsuario(ctx context.Context) ([]dto.TipoUsuarioResponse, error) {
	return listCached(ctx, s.rdb, CacheKeyTiposUsuario, func(ctx context.Context) ([]dto.TipoUsuarioResponse, error) {
		tipos, err := s.tiposUsuario.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dto.TipoUsuarioResponse, 0, len(tipos))
		for i := range tipos {
			resp = append(resp, *tipoUsuarioToResponse(&tipos[i]))
		}
		return resp, nil
	})
}
