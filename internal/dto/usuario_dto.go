package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PersonaRequest carries the name fields for the Persona created together
// with a new account.
type PersonaRequest struct {
	PrimerNombre    string  `json:"PrimerNombre"    validate:"required,min=1,max=50"`
	SegundoNombre   *string `json:"SegundoNombre"   validate:"omitempty,max=50"`
	PrimerApellido  string  `json:"PrimerApellido"  validate:"required,min=1,max=50"`
	SegundoApellido *string `json:"SegundoApellido" validate:"omitempty,max=50"`
}

type CrearUsuarioRequest struct {
	Persona       PersonaRequest `json:"Persona"       validate:"required"`
	IdTipoUsuario uint           `json:"IdTipoUsuario" validate:"required"`
	Username      string         `json:"Username"      validate:"required,min=1,max=50"`
	Password      string         `json:"Password"      validate:"required,min=6"`
	IdEstado      uint           `json:"IdEstado"      validate:"required"`
}

// ActualizarUsuarioRequest updates role, status and optionally the password.
// Password is write-only: present in requests, never echoed back.
type ActualizarUsuarioRequest struct {
	IdTipoUsuario uint   `json:"IdTipoUsuario" validate:"omitempty"`
	IdEstado      uint   `json:"IdEstado"      validate:"omitempty"`
	Password      string `json:"Password"      validate:"omitempty,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never includes the password hash.
type UsuarioResponse struct {
	IdUsuario     uint                 `json:"IdUsuario"`
	IdPersona     uint                 `json:"IdPersona"`
	IdTipoUsuario uint                 `json:"IdTipoUsuario"`
	Username      string               `json:"Username"`
	IdEstado      uint                 `json:"IdEstado"`
	Persona       *PersonaResponse     `json:"Persona,omitempty"`
	TipoUsuario   *TipoUsuarioResponse `json:"TipoUsuario,omitempty"`
	Estado        *EstadoResponse      `json:"Estado,omitempty"`
}
