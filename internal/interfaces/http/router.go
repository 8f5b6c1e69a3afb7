package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poliflex/gestion-api/internal/application/auth"
	"github.com/poliflex/gestion-api/internal/application/catalogo"
	"github.com/poliflex/gestion-api/internal/application/estadisticas"
	"github.com/poliflex/gestion-api/internal/application/ventas"
	"github.com/poliflex/gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ListadoUC     *ventas.ListadoNotasUseCase
	DetalleUC     *ventas.DetalleNotaUseCase
	CrearNotaUC   *ventas.CrearNotaUseCase
	EliminarUC    *ventas.EliminarNotaUseCase
	PagosUC       *ventas.PagosUseCase
	EntregasUC    *ventas.EntregasUseCase
	ClientesUC    *catalogo.ClientesUseCase
	ProductosUC   *catalogo.ProductosUseCase
	VendedoresUC  *catalogo.VendedoresUseCase
	ProveedoresUC *catalogo.ProveedoresUseCase
	ResumenUC     *estadisticas.ResumenUseCase
	RendimientoUC *estadisticas.RendimientoUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Notas de venta (protegido)
	notas := protected.Group("/notas")
	notasHandler := NewNotasHandler(deps.ListadoUC, deps.DetalleUC, deps.CrearNotaUC, deps.EliminarUC)
	notas.Get("/", notasHandler.List)
	notas.Post("/", notasHandler.Create)
	notas.Get("/:id", notasHandler.GetByID)
	notas.Delete("/:id", RequireRol(entity.RolAdmin), notasHandler.Delete)

	// Pagos y entregas (protegido)
	pagosHandler := NewPagosHandler(deps.PagosUC, deps.EntregasUC)
	notas.Post("/:id/pagos", pagosHandler.RegistrarPago)
	protected.Delete("/pagos/:id", RequireRol(entity.RolAdmin, entity.RolVentas), pagosHandler.EliminarPago)
	protected.Post("/pedidos/:id/entregas", pagosHandler.RegistrarEntrega)
	protected.Delete("/entregas/:id", RequireRol(entity.RolAdmin, entity.RolAlmacen), pagosHandler.EliminarEntrega)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clientesHandler := NewClientesHandler(deps.ClientesUC)
	clientes.Post("/", clientesHandler.Create)
	clientes.Get("/", clientesHandler.List)
	clientes.Get("/:id", clientesHandler.GetByID)
	clientes.Put("/:id", clientesHandler.Update)
	clientes.Delete("/:id", RequireRol(entity.RolAdmin), clientesHandler.Delete)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productosHandler := NewProductosHandler(deps.ProductosUC)
	productos.Post("/", productosHandler.Create)
	productos.Get("/", productosHandler.List)
	productos.Get("/:id", productosHandler.GetByID)
	productos.Put("/:id", productosHandler.Update)
	productos.Delete("/:id", RequireRol(entity.RolAdmin), productosHandler.Delete)

	// Vendedores (protegido)
	vendedores := protected.Group("/vendedores")
	vendedoresHandler := NewVendedoresHandler(deps.VendedoresUC)
	vendedores.Post("/", vendedoresHandler.Create)
	vendedores.Get("/", vendedoresHandler.List)
	vendedores.Put("/:id", vendedoresHandler.Update)
	vendedores.Delete("/:id", RequireRol(entity.RolAdmin), vendedoresHandler.Delete)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedoresHandler := NewProveedoresHandler(deps.ProveedoresUC)
	proveedores.Post("/", proveedoresHandler.Create)
	proveedores.Get("/", proveedoresHandler.List)
	proveedores.Put("/:id", proveedoresHandler.Update)
	proveedores.Delete("/:id", RequireRol(entity.RolAdmin), proveedoresHandler.Delete)

	// Estadísticas (protegido)
	est := protected.Group("/estadisticas")
	estHandler := NewEstadisticasHandler(deps.ResumenUC, deps.RendimientoUC)
	est.Get("/resumen", estHandler.Resumen)
	est.Get("/vendedores", estHandler.Vendedores)
}
