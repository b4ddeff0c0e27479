package dto

// Response shapes for the read-only reference catalogs. JSON keys follow the
// wire format the frontend already consumes.

type EstadoResponse struct {
	IdEstado uint   `json:"IdEstado"`
	Estado   string `json:"Estado"`
}

type TipoProductoResponse struct {
	IdTipoProducto uint   `json:"IdTipoProducto"`
	TipoProducto   string `json:"TipoProducto"`
}

type TipoUsuarioResponse struct {
	IdTipoUsuario uint   `json:"IdTipoUsuario"`
	TipoUsuario   string `json:"TipoUsuario"`
}

type MesaResponse struct {
	IdMesa uint   `json:"IdMesa"`
	Mesa   string `json:"Mesa"`
}

type PersonaResponse struct {
	IdPersona       uint    `json:"idPersona"`
	PrimerNombre    string  `json:"PrimerNombre"`
	SegundoNombre   *string `json:"SegundoNombre,omitempty"`
	PrimerApellido  string  `json:"PrimerApellido"`
	SegundoApellido *string `json:"SegundoApellido,omitempty"`
}
