package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/talofaremit/remit_backend/cmd/docs"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/middleware"
	"github.com/talofaremit/remit_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes registers the public login route, rate limited by client
// IP to slow credential stuffing.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	rate, _ := limiter.NewRateFromFormatted("10-M")
	loginLimiter := limiter.New(memory.NewStore(), rate)

	h := newAuthHandler(authService)
	r.POST("/auth/login", middleware.RateLimit(loginLimiter), h.login)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations. Settings, user management and rate refresh
// are admin-only on top of the group-wide auth.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCustomerRoutes(v1, services.Customer)
	registerTransactionRoutes(v1, services.Transaction)
	registerRateRoutes(v1, services.ExchangeRate)
	registerFeeRoutes(v1, services.Fee)
	registerAmlRoutes(v1, services.Aml)
	registerReportingRoutes(v1, services.Reporting)
	registerAgentRoutes(v1, services.Agent)
	registerUserRoutes(v1, services.User)
	registerActivityRoutes(v1, services.Activity)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
