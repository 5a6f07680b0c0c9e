package routes

import (
	"log"

	_ "gig_escrow/docs"
	"gig_escrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	HireRequests *handlers.HireRequestHandler
	Payments     *handlers.PaymentHandler
	Auth         gin.HandlerFunc
}

// NewRouter builds the gin engine with every /v1 route registered.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHireRequestRoutes(v1, h.Auth, h.HireRequests)
	addPaymentRoutes(v1, h.Auth, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
