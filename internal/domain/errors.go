package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUnknownSource  = errors.New("archivo origen no registrado")
	ErrEmptySelection = errors.New("selección de orígenes vacía")
	ErrEmptyRecordSet = errors.New("conjunto de partes vacío")
	ErrDuplicateName  = errors.New("ya existe un proyecto combinado con ese nombre")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrUsernameTaken  = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)
