package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Motor de transiciones de estado.
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrPreconditionFailed  = errors.New("precondición de la transición no se cumple")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia: el registro cambió durante la operación")

	// Recepción de órdenes de compra.
	ErrOverReceipt = errors.New("la cantidad recibida excede la cantidad ordenada")
)
