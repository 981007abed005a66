package handlers

import (
	"net/http"

	"github.com/fatoumatandjim/SFB-sub000/cmd/docs"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/middleware"
	"github.com/fatoumatandjim/SFB-sub000/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group: rate limit, request deadline, then auth.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1",
		middleware.RateLimit(limiter),
		middleware.RequestTimeout(cfg.RequestTimeout),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)
	RegisterAPIRoutes(v1, services)
	return nil
}

// RegisterAPIRoutes mounts every business endpoint on rg. Authentication is the caller's concern.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	trip := newTripHandler(services.Trip)
	allocation := newAllocationHandler(services.Allocation)
	ledger := newLedgerHandler(services.Account)
	customs := newCustomsHandler(services.Customs)
	payment := newPaymentHandler(services.Payment)

	trips := rg.Group("/trips")
	{
		trips.POST("", trip.createTrip)
		trips.GET("", trip.listTrips)
		trips.GET("/frais-douane", customs.declarationFee)
		trips.PUT("/declarer-multiple", customs.declareMany)
		trips.PUT("/liberer-multiple", customs.releaseMany)

		trips.GET("/:id", trip.getTrip)
		trips.DELETE("/:id", trip.deleteTrip)
		trips.PUT("/:id/status", trip.advanceTrip)
		trips.PUT("/:id/livraisons", trip.recordDeliveries)
		trips.PUT("/:id/transitaire", trip.assignCustomsAgent)

		trips.POST("/:id/clients", allocation.assignClient)
		trips.GET("/:id/clients", allocation.listAllocations)
		trips.PUT("/:id/prix-achat", allocation.setPurchasePrice)
		trips.PUT("/:id/prix-vente", allocation.setSalePrice)
		trips.PUT("/:id/client-voyage/quantite", allocation.reassign)
		trips.GET("/:id/marge", allocation.computeMargin)

		trips.GET("/:id/transactions", ledger.listTripTransactions)
		trips.POST("/:id/frais", ledger.postFee)

		trips.PUT("/:id/declarer", customs.declare)
		trips.PUT("/:id/liberer", customs.release)
		trips.PUT("/:id/passer-non-declare", customs.markPassedUndeclared)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", ledger.createAccount)
		accounts.GET("/:id", ledger.getAccount)
	}

	rg.POST("/transactions/virement", ledger.postTransfer)

	payments := rg.Group("/paiements")
	{
		payments.POST("", payment.createPayment)
		payments.GET("/:id", payment.getPayment)
		payments.PUT("/:id/valider", payment.validatePayment)
		payments.PUT("/:id/rejeter", payment.rejectPayment)
		payments.PUT("/:id/annuler", payment.cancelPayment)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
