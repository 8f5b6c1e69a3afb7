package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/poliflex/gestion-api/internal/application/auth"
	"github.com/poliflex/gestion-api/internal/application/catalogo"
	"github.com/poliflex/gestion-api/internal/application/estadisticas"
	"github.com/poliflex/gestion-api/internal/application/ventas"
	"github.com/poliflex/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/poliflex/gestion-api/internal/interfaces/http"
	"github.com/poliflex/gestion-api/pkg/config"
	"github.com/poliflex/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.App.LogLevel,
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	dbLog := log.Componente("postgres")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		dbLog.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		dbLog.Fatal().Err(err).Msg("migraciones")
	}
	dbLog.Info().Msg("esquema al día")

	notaRepo := postgres.NewNotaVentaRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	entregaRepo := postgres.NewEntregaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	vendedorRepo := postgres.NewVendedorRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	estRepo := postgres.NewEstadisticasRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	listadoUC := ventas.NewListadoNotasUseCase(notaRepo)
	detalleUC := ventas.NewDetalleNotaUseCase(notaRepo)
	crearNotaUC := ventas.NewCrearNotaUseCase(txRunner, clienteRepo)
	eliminarUC := ventas.NewEliminarNotaUseCase(txRunner, notaRepo)
	pagosUC := ventas.NewPagosUseCase(notaRepo, pagoRepo)
	entregasUC := ventas.NewEntregasUseCase(notaRepo, entregaRepo)

	clientesUC := catalogo.NewClientesUseCase(clienteRepo)
	productosUC := catalogo.NewProductosUseCase(productoRepo)
	vendedoresUC := catalogo.NewVendedoresUseCase(vendedorRepo)
	proveedoresUC := catalogo.NewProveedoresUseCase(proveedorRepo)

	resumenUC := estadisticas.NewResumenUseCase(estRepo, notaRepo)
	rendimientoUC := estadisticas.NewRendimientoUseCase(estRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Poliflex Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ListadoUC:     listadoUC,
		DetalleUC:     detalleUC,
		CrearNotaUC:   crearNotaUC,
		EliminarUC:    eliminarUC,
		PagosUC:       pagosUC,
		EntregasUC:    entregasUC,
		ClientesUC:    clientesUC,
		ProductosUC:   productosUC,
		VendedoresUC:  vendedoresUC,
		ProveedoresUC: proveedoresUC,
		ResumenUC:     resumenUC,
		RendimientoUC: rendimientoUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
