package service

import (
	"time"

	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/model"
)

// Model → response mapping. Nested objects are emitted only when the
// association was actually preloaded; a nil association stays absent rather
// than serializing a zero-value stub.

func estadoToResponse(e *model.Estado) *dto.EstadoResponse {
	if e == nil {
		return nil
	}
	return &dto.EstadoResponse{IdEstado: e.ID, Estado: e.Nombre}
}

func tipoProductoToResponse(t *model.TipoProducto) *dto.TipoProductoResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoProductoResponse{IdTipoProducto: t.ID, TipoProducto: t.Nombre}
}

func tipoUsuarioToResponse(t *model.TipoUsuario) *dto.TipoUsuarioResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoUsuarioResponse{IdTipoUsuario: t.ID, TipoUsuario: t.Nombre}
}

func mesaToResponse(m *model.Mesa) *dto.MesaResponse {
	if m == nil {
		return nil
	}
	return &dto.MesaResponse{IdMesa: m.ID, Mesa: m.Nombre}
}

func personaToResponse(p *model.Persona) *dto.PersonaResponse {
	if p == nil {
		return nil
	}
	return &dto.PersonaResponse{
		IdPersona:       p.ID,
		PrimerNombre:    p.PrimerNombre,
		SegundoNombre:   p.SegundoNombre,
		PrimerApellido:  p.PrimerApellido,
		SegundoApellido: p.SegundoApellido,
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		IdProducto:     p.ID,
		IdTipoProducto: p.TipoProductoID,
		NombreProducto: p.Nombre,
		Valor:          p.Valor,
		IdEstado:       p.EstadoID,
		TipoProducto:   tipoProductoToResponse(p.TipoProducto),
		Estado:         estadoToResponse(p.Estado),
	}
}

// usuarioToResponse never exposes the password hash.
func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		IdUsuario:     u.ID,
		IdPersona:     u.PersonaID,
		IdTipoUsuario: u.TipoUsuarioID,
		Username:      u.Username,
		IdEstado:      u.EstadoID,
		Persona:       personaToResponse(u.Persona),
		TipoUsuario:   tipoUsuarioToResponse(u.TipoUsuario),
		Estado:        estadoToResponse(u.Estado),
	}
}

func ordenToResponse(o *model.Orden) *dto.OrdenResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.ProductoOrdenResponse, 0, len(o.Productos))
	for i := range o.Productos {
		po := &o.Productos[i]
		items = append(items, dto.ProductoOrdenResponse{
			IdProducto: po.ProductoID,
			IdOrden:    po.OrdenID,
			Cantidad:   po.Cantidad,
			Notas:      po.Notas,
			Producto:   productoToResponse(po.Producto),
		})
	}
	return &dto.OrdenResponse{
		IdOrden:        o.ID,
		IdUsuario:      o.UsuarioID,
		IdMesa:         o.MesaID,
		IdEstado:       o.EstadoID,
		FechaCreacion:  o.FechaCreacion.UTC().Format(time.RFC3339),
		Usuario:        usuarioToResponse(o.Usuario),
		Mesa:           mesaToResponse(o.Mesa),
		Estado:         estadoToResponse(o.Estado),
		ProductosOrden: items,
	}
}
