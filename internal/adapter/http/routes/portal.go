package routes

import (
	"net/http"

	"bizportal/internal/adapter/http/handlers"
	"bizportal/internal/adapter/http/middleware"
	"bizportal/internal/adapter/http/stream"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathSession   = "/session"
	PathProducts  = "/products"
	PathQuotes    = "/quotes"
	PathOrders    = "/orders"
	PathInvoices  = "/invoices"
	PathLifecycle = "/lifecycle"
	PathTickets   = "/tickets"
	PathStream    = "/stream"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addPortalRoutes(rg *gin.RouterGroup, h portalHandlers) {
	session := rg.Group(PathSession)
	{
		session.POST("", h.portal.Login)
		session.POST("/register", h.portal.Register)
		session.GET("", h.portal.CurrentSession)
		session.DELETE("", h.portal.Logout)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.catalog.ListProducts)
		products.GET("/:id", h.catalog.GetProduct)
		// Image edits call a paid external model.
		products.POST("/:id/image", h.imageLimit.Limit(), h.catalog.EditProductImage)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.quotes.ListQuotes)
		quotes.POST("", h.quotes.SubmitQuote)
		quotes.POST("/:id/approve", h.quotes.ApproveQuote)
		quotes.POST("/:id/decline", h.quotes.DeclineQuote)
		quotes.POST("/:id/negotiate", h.quotes.NegotiateQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.lifecycle.ListOrders)
		orders.GET("/:id", h.lifecycle.GetOrder)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.lifecycle.ListInvoices)
		invoices.GET("/:id", h.lifecycle.GetInvoice)
		invoices.GET("/:id/pdf", h.lifecycle.DownloadInvoicePDF)
	}

	lifecycle := rg.Group(PathLifecycle)
	{
		lifecycle.POST("/tick", h.lifecycle.Tick)
		lifecycle.GET("/snapshot", h.lifecycle.Snapshot)
	}

	tickets := rg.Group(PathTickets)
	{
		tickets.GET("", h.portal.ListTickets)
		tickets.POST("", h.portal.RaiseTicket)
	}

	rg.GET(PathStream, h.stream.Serve)
}

type portalHandlers struct {
	portal     *handlers.PortalHandler
	catalog    *handlers.CatalogHandler
	quotes     *handlers.QuoteHandler
	lifecycle  *handlers.LifecycleHandler
	stream     *stream.SnapshotStream
	imageLimit *middleware.RateLimiter
}
