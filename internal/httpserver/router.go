package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/handlers"
	"github.com/sstarkov/styleshop/internal/jwtmiddleware"
)

type Deps struct {
	DB             *gorm.DB
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	requireToken := jwtmiddleware.JWTMiddleware(d.JWTSecret)

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, requireToken)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/category/:category", d.ProductHandler.GetProductsByCategory)
	products.GET("/:id", d.ProductHandler.GetProduct)

	orders := api.Group("/orders", requireToken)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/user", d.OrderHandler.GetUserOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id/payment", d.OrderHandler.ProcessPayment)
}
