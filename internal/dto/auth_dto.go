package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
	Token   string          `json:"token"`
}

type VerifyResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
}
