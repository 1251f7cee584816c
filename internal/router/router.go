package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateOrder(c *ginext.Context)
	GetOrder(c *ginext.Context)
	Checkout(c *ginext.Context)
	ListWaves(c *ginext.Context)
	ProviderWebhook(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Orders
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/checkout", h.Checkout)

		// Events
		api.GET("/events/:id/waves", h.ListWaves)

		// Payment provider callbacks
		api.POST("/webhooks/:provider", h.ProviderWebhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
