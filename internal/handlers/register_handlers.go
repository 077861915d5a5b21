package handlers

import (
	"net/http"

	"github.com/SscSPs/currency_board/cmd/docs"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/SscSPs/currency_board/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Pages are not gin routes: every request gin cannot match goes to the Dispatcher.
// metrics may be nil when metrics are disabled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metrics *middleware.Metrics,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	site := NewSite(domain.AppInfo{
		Name:    cfg.AppName,
		Version: cfg.AppVersion,
		Author:  domain.Author{Name: cfg.AuthorName, Group: cfg.AuthorGroup},
	})

	dispatcher := NewDispatcher(
		NewStaticResponder(cfg.StaticDir),
		NewAuthorController(site),
		NewUserController(site, services.User),
		NewCurrencyController(site, services.Currency),
	)
	r.NoRoute(dispatcher.Handle)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = cfg.AppName
	docs.SwaggerInfo.Version = cfg.AppVersion
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
