package router

import (
	"time"

	"storehub/internal/config"
	"storehub/internal/handler"
	"storehub/internal/middleware"
	"storehub/internal/model"
	"storehub/internal/repository"
	"storehub/internal/service"
	"storehub/internal/session"
	"storehub/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries everything the router needs. Repositories are injected
// already constructed so the same wiring serves both storage drivers —
// GORM-backed in production, memstore-backed for the zero-dependency
// demo mode. DB and RDB are nil with the memory driver.
type Deps struct {
	Cfg        *config.Config
	DB         *gorm.DB
	RDB        *redis.Client
	Sessions   session.Store
	Dispatcher *worker.Dispatcher

	Branches    repository.BranchRepository
	Users       repository.UserRepository
	Products    repository.ProductRepository
	Inventories repository.InventoryRepository
	Customers   repository.CustomerRepository
	Sales       repository.SaleRepository
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← store driver
func New(d Deps) *gin.Engine {
	if d.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(d.Users, d.Sessions, d.Cfg)
	branchSvc := service.NewBranchService(d.Branches)
	staffSvc := service.NewStaffService(d.Users)
	productSvc := service.NewProductService(d.Products)
	inventorySvc := service.NewInventoryService(d.Inventories)
	customerSvc := service.NewCustomerService(d.Customers)
	saleSvc := service.NewSaleService(d.Sales, d.Products, d.Inventories, d.Branches, d.Dispatcher)
	dashboardSvc := service.NewDashboardService(d.Sales, d.Products, d.Inventories, d.Customers, d.RDB)
	assistantSvc := service.NewAssistantService(d.Inventories, d.Products)
	reportSvc := service.NewReportService(d.Sales, d.Products, d.Cfg.ReportStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	staffH := handler.NewStaffHandler(staffSvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	assistantH := handler.NewAssistantHandler(assistantSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(d.DB, d.RDB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(d.Cfg.JWTSecret, d.Sessions)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleStaff)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)

		// Branch and staff administration — admin only
		branches := v1.Group("/branches", adminOnly)
		{
			branches.GET("", branchesH.List)
			branches.POST("", branchesH.Create)
			branches.PATCH("/:id", branchesH.Update)
			branches.DELETE("/:id", branchesH.Delete)
		}

		staff := v1.Group("/staff", adminOnly)
		{
			staff.GET("", staffH.List)
			staff.POST("", staffH.Create)
			staff.PATCH("/:id", staffH.Update)
			staff.DELETE("/:id", staffH.Delete)
		}

		// Product catalog — everyone reads, only admin writes
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		products := v1.Group("/products", adminOnly)
		{
			products.POST("", productsH.Create)
			products.PATCH("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		// Daily operations — staff and admin alike
		inventory := v1.Group("/inventory", anyRole)
		{
			inventory.GET("", inventoryH.List)
			inventory.POST("", inventoryH.Create)
			inventory.PATCH("/:id", inventoryH.Update)
			inventory.DELETE("/:id", inventoryH.Delete)
		}

		customers := v1.Group("/customers", anyRole)
		{
			customers.GET("", customersH.List)
			customers.POST("", customersH.Create)
			customers.PATCH("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		sales := v1.Group("/sales", anyRole)
		{
			sales.GET("", salesH.List)
			sales.POST("", salesH.Create)
		}

		v1.GET("/dashboard", anyRole, dashboardH.Get)

		assistant := v1.Group("/assistant", anyRole)
		{
			assistant.GET("/insights", assistantH.Insights)
			assistant.POST("/chat", assistantH.Chat)
		}

		reports := v1.Group("/reports", anyRole)
		{
			reports.GET("/sales", reportsH.Sales)
			reports.GET("/sales/pdf", reportsH.SalesPDF)
		}
	}

	// Swagger UI — only enabled outside production
	if d.Cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
