package ventas

import (
	"context"

	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una transacción PostgreSQL.
// Commit si fn devuelve nil, Rollback si devuelve error.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		notaRepo repository.NotaVentaRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
