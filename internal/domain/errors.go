package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores los traducen
// a códigos HTTP; nunca se usan pánicos para flujo de control.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
