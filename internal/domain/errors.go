package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores del ledger de comisiones y retiros.
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrInsufficientBalance = errors.New("saldo disponible insuficiente")
	ErrBelowMinimumPayout  = errors.New("monto por debajo del mínimo de retiro")
	ErrDuplicateCommission = errors.New("comisión ya registrada para esa referencia")
)
