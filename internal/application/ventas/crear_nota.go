package ventas

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poliflex/gestion-api/internal/application/dto"
	"github.com/poliflex/gestion-api/internal/domain"
	"github.com/poliflex/gestion-api/internal/domain/entity"
	"github.com/poliflex/gestion-api/internal/domain/repository"
)

// ivaPct tasa de IVA aplicada sobre el subtotal con descuento.
var ivaPct = decimal.NewFromInt(16)

var cienPct = decimal.NewFromInt(100)

// CrearNotaUseCase crea una nota de venta con sus pedidos de forma
// transaccional: valida cliente y productos, calcula totales y descuenta el
// stock con bloqueo de fila. Si algún producto no alcanza, toda la nota se
// revierte con ErrStockInsuficiente.
type CrearNotaUseCase struct {
	txRunner    TxRunner
	clienteRepo repository.ClienteRepository
}

// NewCrearNotaUseCase construye el caso de uso.
func NewCrearNotaUseCase(txRunner TxRunner, clienteRepo repository.ClienteRepository) *CrearNotaUseCase {
	return &CrearNotaUseCase{txRunner: txRunner, clienteRepo: clienteRepo}
}

// Crear valida la entrada, arma el agregado y lo persiste. Devuelve el id de
// la nota creada.
func (uc *CrearNotaUseCase) Crear(ctx context.Context, in dto.CrearNotaRequest) (string, error) {
	if in.ClienteID == "" || len(in.Pedidos) == 0 {
		return "", domain.ErrInvalidInput
	}
	if in.DescuentoPct.IsNegative() || in.DescuentoPct.GreaterThan(cienPct) {
		return "", domain.ErrInvalidInput
	}
	for _, p := range in.Pedidos {
		if p.ProductoID == "" || !p.Cantidad.GreaterThan(decimal.Zero) || p.PrecioUnitario.IsNegative() {
			return "", domain.ErrInvalidInput
		}
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return "", err
	}
	if cliente == nil {
		return "", domain.ErrNotFound
	}

	fecha, err := fechaODefault(in.Fecha)
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	now := time.Now()
	nota := &entity.NotaVenta{
		ID:           uuid.New().String(),
		Folio:        in.Folio,
		ClienteID:    in.ClienteID,
		Fecha:        fecha,
		DescuentoPct: in.DescuentoPct,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if nota.Folio == "" {
		nota.Folio = generarFolio(fecha, nota.ID)
	}

	subtotal := decimal.Zero
	for _, p := range in.Pedidos {
		subtotal = subtotal.Add(p.Cantidad.Mul(p.PrecioUnitario))
		nota.Pedidos = append(nota.Pedidos, &entity.Pedido{
			ID:             uuid.New().String(),
			NotaVentaID:    nota.ID,
			ProductoID:     p.ProductoID,
			Cantidad:       p.Cantidad,
			PrecioUnitario: p.PrecioUnitario,
		})
	}
	nota.Subtotal = subtotal.Round(2)
	conDescuento := subtotal.Sub(subtotal.Mul(in.DescuentoPct).Div(cienPct))
	nota.IVA = conDescuento.Mul(ivaPct).Div(cienPct).Round(2)
	nota.Total = conDescuento.Round(2).Add(nota.IVA)

	// Transacción: bloquear cada producto, validar stock, descontar y persistir.
	err = uc.txRunner.Run(ctx, func(
		notaRepo repository.NotaVentaRepository,
		productoRepo repository.ProductoRepository,
	) error {
		for _, ped := range nota.Pedidos {
			producto, err := productoRepo.GetForUpdate(ped.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}
			restante := producto.Stock.Sub(ped.Cantidad)
			if restante.IsNegative() {
				return fmt.Errorf("%w: producto %s", domain.ErrStockInsuficiente, producto.Nombre)
			}
			if err := productoRepo.UpdateStock(producto.ID, restante); err != nil {
				return err
			}
		}
		return notaRepo.Create(nota)
	})
	if err != nil {
		return "", err
	}
	return nota.ID, nil
}

// EliminarNotaUseCase borra una nota restituyendo el stock de sus pedidos.
// Solo se permite sobre notas sin pagos y sin entregas; lo demás es un
// conflicto con el estado actual.
type EliminarNotaUseCase struct {
	txRunner TxRunner
	repo     repository.NotaVentaRepository
}

// NewEliminarNotaUseCase construye el caso de uso.
func NewEliminarNotaUseCase(txRunner TxRunner, repo repository.NotaVentaRepository) *EliminarNotaUseCase {
	return &EliminarNotaUseCase{txRunner: txRunner, repo: repo}
}

// Eliminar valida y borra la nota (pedidos en cascada), devolviendo el stock.
func (uc *EliminarNotaUseCase) Eliminar(ctx context.Context, id string) error {
	nota, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if nota == nil {
		return domain.ErrNotFound
	}
	if len(nota.Pagos) > 0 {
		return domain.ErrNotaConPagos
	}
	for _, ped := range nota.Pedidos {
		if len(ped.Entregas) > 0 {
			return domain.ErrConflict
		}
	}

	return uc.txRunner.Run(ctx, func(
		notaRepo repository.NotaVentaRepository,
		productoRepo repository.ProductoRepository,
	) error {
		for _, ped := range nota.Pedidos {
			producto, err := productoRepo.GetForUpdate(ped.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				continue // producto borrado del catálogo; no hay stock que devolver
			}
			if err := productoRepo.UpdateStock(producto.ID, producto.Stock.Add(ped.Cantidad)); err != nil {
				return err
			}
		}
		return notaRepo.Delete(id)
	})
}

// generarFolio produce un folio legible: NV-<año>-<fragmento del id>.
func generarFolio(fecha time.Time, id string) string {
	frag := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(frag) > 8 {
		frag = frag[:8]
	}
	return fmt.Sprintf("NV-%d-%s", fecha.Year(), frag)
}

// fechaODefault interpreta YYYY-MM-DD; vacío = la fecha calendario de hoy.
func fechaODefault(s string) (time.Time, error) {
	if s == "" {
		return diaDe(time.Now()), nil
	}
	return time.Parse("2006-01-02", s)
}

// diaDe recorta un instante a su fecha calendario, en la zona del instante.
// Truncate(24h) opera sobre días UTC y de noche cambiaría la fecha local.
func diaDe(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
