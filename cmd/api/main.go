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
	"github.com/swaggo/swag"

	"github.com/jhoicas/logistics-api/docs"
	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/application/inventory"
	"github.com/jhoicas/logistics-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/logistics-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/logistics-api/internal/interfaces/http"
	"github.com/jhoicas/logistics-api/pkg/config"
	"github.com/jhoicas/logistics-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title                       Logistics API
// @version                     1.0
// @description                 Gestión de unidades de almacenamiento, personal y stock.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.Close()

	blacklist, closeBlacklist, err := openBlacklist(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("lista de tokens revocados")
	}
	defer closeBlacklist()

	authUC := auth.NewAuthUseCase(store.users, store.units, blacklist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("alta del administrador")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("administrador creado")
	}

	userUC := usecase.NewUserUseCase(store.users)
	employeeUC := usecase.NewEmployeeUseCase(store.users, store.units)
	// PDF: reporte de inventario por unidad
	unitUC := usecase.NewUnitUseCase(store.units, store.products, infrapdf.NewMarotoReportGenerator())
	productUC := usecase.NewProductUseCase(store.txRunner, store.products, store.units)
	stockUC := inventory.NewStockUseCase(store.txRunner, store.products, store.units)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(logger.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger UI deshabilitado")
	}
	// El documento embebido queda disponible aunque no haya archivo en disco.
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		EmployeeUC:   employeeUC,
		UnitUC:       unitUC,
		ProductUC:    productUC,
		StockUC:      stockUC,
		JWTSecret:    cfg.JWT.Secret,
		LoginLimiter: httpRouter.NewLoginRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst),
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
