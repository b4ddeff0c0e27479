package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	IdTipoProducto uint            `json:"IdTipoProducto" validate:"required"`
	NombreProducto string          `json:"NombreProducto" validate:"required,min=1,max=100"`
	Valor          decimal.Decimal `json:"Valor"          validate:"min=0"`
	IdEstado       uint            `json:"IdEstado"       validate:"required"`
}

// ActualizarProductoRequest replaces every mutable field (PUT semantics).
type ActualizarProductoRequest struct {
	IdTipoProducto uint            `json:"IdTipoProducto" validate:"required"`
	NombreProducto string          `json:"NombreProducto" validate:"required,min=1,max=100"`
	Valor          decimal.Decimal `json:"Valor"          validate:"min=0"`
	IdEstado       uint            `json:"IdEstado"       validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	IdProducto     uint                  `json:"IdProducto"`
	IdTipoProducto uint                  `json:"IdTipoProducto"`
	NombreProducto string                `json:"NombreProducto"`
	Valor          decimal.Decimal       `json:"Valor"`
	IdEstado       uint                  `json:"IdEstado"`
	TipoProducto   *TipoProductoResponse `json:"TipoProducto,omitempty"`
	Estado         *EstadoResponse       `json:"Estado,omitempty"`
}
