package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemOrdenRequest is one line item of a new order.
// Cantidad defaults to 1 when omitted.
type ItemOrdenRequest struct {
	IdProducto uint    `json:"IdProducto" validate:"required"`
	Cantidad   int     `json:"Cantidad"   validate:"omitempty,min=1"`
	Notas      *string `json:"Notas"`
}

type CrearOrdenRequest struct {
	IdUsuario uint               `json:"IdUsuario" validate:"required"`
	IdMesa    uint               `json:"IdMesa"    validate:"required"`
	IdEstado  uint               `json:"IdEstado"  validate:"required"`
	Productos []ItemOrdenRequest `json:"Productos" validate:"omitempty,dive"`
}

type ActualizarEstadoOrdenRequest struct {
	IdEstado uint `json:"IdEstado" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoOrdenResponse struct {
	IdProducto uint              `json:"IdProducto"`
	IdOrden    uint              `json:"IdOrden"`
	Cantidad   int               `json:"Cantidad"`
	Notas      *string           `json:"Notas"`
	Producto   *ProductoResponse `json:"Producto,omitempty"`
}

// OrdenResponse carries the header plus the fully resolved nested graph:
// usuario (with persona and tipo), mesa, estado and every line item with its
// product and product type.
type OrdenResponse struct {
	IdOrden        uint                    `json:"IdOrden"`
	IdUsuario      uint                    `json:"IdUsuario"`
	IdMesa         uint                    `json:"IdMesa"`
	IdEstado       uint                    `json:"IdEstado"`
	FechaCreacion  string                  `json:"FechaCreacion"`
	Usuario        *UsuarioResponse        `json:"Usuario,omitempty"`
	Mesa           *MesaResponse           `json:"Mesa,omitempty"`
	Estado         *EstadoResponse         `json:"Estado,omitempty"`
	ProductosOrden []ProductoOrdenResponse `json:"ProductosOrden"`
}
