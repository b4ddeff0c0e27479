package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors shared by all services. Handlers map them to HTTP statuses
// with errors.Is, so wrapped variants (fmt.Errorf with %w) keep working.
var (
	// ErrNoEncontrado: the requested row does not exist (404).
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrReferenciaInvalida: a foreign id in the payload references nothing (400).
	ErrReferenciaInvalida = errors.New("referencia invalida")
	// ErrProductoDuplicado: the same product appears twice in one order request (400).
	ErrProductoDuplicado = errors.New("producto repetido en la orden")
	// ErrCredencialesInvalidas covers unknown username and wrong password alike (401).
	ErrCredencialesInvalidas = errors.New("credenciales invalidas")
	// ErrUsuarioInactivo: the account exists but its estado is not Activo (401).
	ErrUsuarioInactivo = errors.New("usuario inactivo")
	// ErrTokenInvalido: bad signature, expired, malformed, or orphaned token (401).
	ErrTokenInvalido = errors.New("token invalido o expirado")
)

// refErr classifies a failed lookup of a referenced id: a missing row is the
// client's mistake (400), anything else is a store failure and passes
// through unwrapped (500).
func refErr(err error, recurso string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrReferenciaInvalida, recurso, id)
	}
	return err
}
