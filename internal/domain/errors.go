package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrValidation      = errors.New("entrada inválida")
	ErrUnauthenticated = errors.New("sesión ausente o inválida")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrCompanyInUse    = errors.New("la empresa tiene ventas asociadas")
	ErrExternalService = errors.New("error del servicio de autenticación externo")
)
