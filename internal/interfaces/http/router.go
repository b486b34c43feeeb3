package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/application/inventory"
	"github.com/jhoicas/logistics-api/internal/application/usecase"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	EmployeeUC *usecase.EmployeeUseCase
	UnitUC     *usecase.UnitUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *inventory.StockUseCase
	JWTSecret  string
	// LoginLimiter es opcional; nil deja el login sin límite.
	LoginLimiter *LoginRateLimiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Handler(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/permissions", authHandler.Permissions)

	// Rutas protegidas (requieren Bearer Token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	employee := RequireRole(entity.RoleEmployee)
	supervisor := RequireRole(entity.RoleSupervisor)
	admin := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)

	unitHandler := NewUnitHandler(deps.UnitUC)
	protected.Get("/dashboard", employee, unitHandler.Dashboard)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", employee)
	users.Get("/me", userHandler.Me)
	users.Put("/me/password", userHandler.ChangePassword)

	// Employees (supervisor de la unidad o admin)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := protected.Group("/employees", supervisor)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Delete("/:id", employeeHandler.Delete)

	// Units
	units := protected.Group("/units")
	units.Get("/", admin, unitHandler.List)
	units.Post("/", admin, unitHandler.Create)
	units.Get("/:id", employee, unitHandler.GetByID)
	units.Get("/:id/summary", employee, unitHandler.Summary)
	units.Get("/:id/report", supervisor, unitHandler.Report)

	// Products + movimientos de stock
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	products := protected.Group("/products")
	products.Get("/", employee, productHandler.List)
	products.Post("/search", employee, productHandler.Search)
	products.Get("/:id", employee, productHandler.GetByID)
	products.Post("/", supervisor, productHandler.Create)
	products.Put("/:id", supervisor, productHandler.Update)
	products.Delete("/:id", supervisor, productHandler.Delete)
	products.Post("/:id/sell", employee, inventoryHandler.Sell)
	products.Post("/:id/buy", supervisor, inventoryHandler.Buy)
}
