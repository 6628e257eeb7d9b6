package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spot_trading_back/pkg/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) InitRoute() *gin.Engine {
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/currencies", h.ListCurrencies)
		api.GET("/currencies/:symbol/rate", h.GetConversionRate)

		wallets := api.Group("/wallets")
		{
			wallets.GET("/", h.ListWallets)
			wallets.GET("/by-currency/:id", h.GetWalletByCurrency)
			wallets.POST("/", h.CreateWallet)
		}

		spot := api.Group("/spot")
		{
			spot.POST("/quote", h.Quote)
			spot.POST("/trade", h.Trade)
		}

		api.GET("/transactions", h.ListTransactions)
	}
	return router
}
