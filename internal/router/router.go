package router

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	profileH *handler.ProfileHandler,
	catalogH *handler.CatalogHandler,
	customerH *handler.CustomerHandler,
	invoiceH *handler.InvoiceHandler,
	reportH *handler.ReportHandler,
	filingH *handler.FilingHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// Business profile
	profile := protected.Group("/profile")
	profile.GET("", profileH.Get)
	profile.PUT("", middleware.RequireRole(domain.RoleAdmin), profileH.Upsert)

	// Catalog items
	catalog := protected.Group("/catalog")
	catalog.POST("", catalogH.Create)
	catalog.GET("", catalogH.List)
	catalog.GET("/:id", catalogH.GetByID)
	catalog.PUT("/:id", catalogH.Update)
	catalog.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), catalogH.Delete)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), customerH.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.GET("/:id/view", invoiceH.View)
	invoices.PUT("/:id", invoiceH.Update)
	invoices.PATCH("/:id/status", invoiceH.UpdateStatus)
	invoices.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), invoiceH.Delete)
	invoices.POST("/:id/email", invoiceH.Email)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/periods", reportH.Periods)
	reports.GET("/periods/export", reportH.ExportPeriods)
	reports.GET("/invoices/:id/hsn", reportH.InvoiceHSN)

	// GST return filings
	filings := protected.Group("/filings")
	filings.GET("/:gstin", filingH.Returns)

	return r
}
