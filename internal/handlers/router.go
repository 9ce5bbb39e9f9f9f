package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/auth"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/seed"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/middleware"
)

// NewRouter assembles the API. Route handlers receive already-authenticated
// identity from the auth middleware; nothing below this layer checks
// credentials.
func NewRouter(m *marketplace.Marketplace, issuer *auth.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to CampusCart API", "status": "running"})
	})

	api := r.Group("/api")
	protected := middleware.Auth(issuer)

	authH := &AuthHandler{users: m.Users, issuer: issuer}
	a := api.Group("/auth")
	a.POST("/register", authH.Register)
	a.POST("/login", authH.Login)
	a.GET("/me", protected, authH.Me)

	productsH := &ProductsHandler{products: m.Products}
	p := api.Group("/products")
	p.GET("", productsH.List)
	p.GET("/featured", productsH.Featured)
	p.GET("/rentals", productsH.Rentals)
	p.GET("/pending", protected, productsH.Pending)
	p.GET("/my-uploads", protected, productsH.MyUploads)
	p.GET("/category/:category", productsH.ByCategory)
	p.GET("/:id", productsH.Get)
	p.POST("", protected, productsH.Create)
	p.PUT("/:id/status", protected, productsH.SetStatus)

	cartH := &CartHandler{carts: m.Carts}
	cart := api.Group("/cart", protected)
	cart.GET("", cartH.Get)
	cart.POST("", cartH.AddItem)
	cart.PUT("/:itemId", cartH.UpdateItem)
	cart.DELETE("/:itemId", cartH.RemoveItem)
	cart.DELETE("", cartH.Clear)

	ordersH := &OrdersHandler{orders: m.Orders}
	orders := api.Group("/orders", protected)
	orders.POST("", ordersH.Create)
	orders.GET("", ordersH.ListMine)
	orders.GET("/:id", ordersH.Get)
	orders.PUT("/:id/pay", ordersH.Pay)

	messagesH := &MessagesHandler{messages: m.Messages}
	msgs := api.Group("/messages", protected)
	msgs.POST("", messagesH.Send)
	msgs.GET("", messagesH.Inbox)

	api.POST("/seed", func(c *gin.Context) {
		n, err := seed.Load(c.Request.Context(), m.Products)
		if err != nil {
			failFor(c, err)
			return
		}
		okCount(c, gin.H{"inserted": n}, n)
	})

	return r
}
