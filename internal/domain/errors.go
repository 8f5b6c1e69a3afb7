package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las validaciones de negocio viven aquí y en los casos de uso, no en los
// formularios: un pago que excede el saldo o una entrega que excede la
// cantidad pedida se rechazan en la frontera del servicio con un error tipado.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	ErrStockInsuficiente      = errors.New("stock insuficiente")
	ErrPagoExcedeSaldo        = errors.New("el pago excede el saldo pendiente de la nota")
	ErrEntregaExcedeCantidad  = errors.New("la entrega excede la cantidad pendiente del pedido")
	ErrNotaConPagos           = errors.New("la nota tiene pagos registrados")
)
