package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmestre/joyeria-api/internal/application/analytics"
	"github.com/jmestre/joyeria-api/internal/application/auth"
	"github.com/jmestre/joyeria-api/internal/application/inventory"
	"github.com/jmestre/joyeria-api/internal/application/orders"
	"github.com/jmestre/joyeria-api/internal/application/usecase"
	"github.com/jmestre/joyeria-api/internal/application/workflow"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *inventory.LedgerUseCase
	OrderUC     *orders.OrderUseCase
	WorkflowUC  *workflow.StatusWorkflowUseCase
	PDFUC       *orders.PDFUseCase
	CustomerUC  *usecase.CustomerUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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

	// Ledger de diamantes (protegido). Deducciones y restauraciones sólo para
	// admin y taller; consultas para cualquier usuario autenticado.
	parcels := protected.Group("/parcels")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	parcels.Post("/", RequireRole(entity.RoleAdmin, entity.RoleTaller), inventoryHandler.CreateParcel)
	parcels.Get("/", inventoryHandler.ListParcels)
	parcels.Get("/:id", inventoryHandler.GetBalance)
	parcels.Get("/:id/sufficiency", inventoryHandler.ValidateSufficiency)
	parcels.Post("/:id/deduct", RequireRole(entity.RoleAdmin, entity.RoleTaller), inventoryHandler.Deduct)
	parcels.Post("/:id/restore", RequireRole(entity.RoleAdmin, entity.RoleTaller), inventoryHandler.Restore)
	parcels.Get("/:id/movements", inventoryHandler.ListMovements)

	// Pedidos y workflow de estados (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.WorkflowUC, deps.PDFUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/status", orderHandler.AppendStatus)
	ordersGroup.Get("/:id/status", orderHandler.ListStatusHistory)
	ordersGroup.Post("/:id/comments", orderHandler.AddComment)
	ordersGroup.Get("/:id/comments", orderHandler.ListComments)
	ordersGroup.Get("/:id/pdf", orderHandler.GetPDF)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.OrderUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/orders", customerHandler.ListOrders)

	// Dashboard (protegido, sólo admin)
	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
