package routes

import (
	"net/http"

	"backend/controllers"

	"github.com/gin-gonic/gin"
)

// validRoutes is the self-documenting list returned on 404 so the
// dashboard (and anyone poking the API) can see every supported call.
var validRoutes = []string{
	"GET /api/health",
	"GET /api/products",
	"POST /api/products",
	"PUT /api/products/:id",
	"DELETE /api/products/:id",
	"POST /api/products/sync",
	"GET /api/orders",
	"GET /api/customer-orders",
	"POST /api/customer-orders",
	"POST /api/customer-orders/resync",
	"POST /api/customer-orders/clear-all",
	"GET /api/customer-orders/customers",
	"PUT /api/customer-orders/:id",
	"DELETE /api/customer-orders/:id",
	"GET /api/purchases",
	"POST /api/purchases",
	"POST /api/purchases/:id/receive",
	"GET /api/expenses",
	"POST /api/expenses",
	"GET /api/analytics/dashboard/summary",
	"GET /api/analytics/profit",
	"GET /api/analytics/purchases",
}

func InitializeRoutes(router *gin.Engine, ctl *controllers.Controller) {
	api := router.Group("/api")
	{
		api.GET("/health", ctl.Health)

		api.GET("/products", ctl.ListProducts)
		api.POST("/products", ctl.CreateProduct)
		api.POST("/products/sync", ctl.SyncProducts)
		api.PUT("/products/:id", ctl.UpdateProduct)
		api.DELETE("/products/:id", ctl.DeleteProduct)

		api.GET("/orders", ctl.ListRemoteOrders)

		api.GET("/customer-orders", ctl.ListCustomerOrders)
		api.POST("/customer-orders", ctl.CreateCustomerOrder)
		api.POST("/customer-orders/resync", ctl.ResyncCustomerOrders)
		api.POST("/customer-orders/clear-all", ctl.ClearCustomerOrders)
		api.GET("/customer-orders/customers", ctl.ListCustomers)
		api.PUT("/customer-orders/:id", ctl.UpdateCustomerOrder)
		api.DELETE("/customer-orders/:id", ctl.DeleteCustomerOrder)

		api.GET("/purchases", ctl.ListPurchases)
		api.POST("/purchases", ctl.CreatePurchase)
		api.POST("/purchases/:id/receive", ctl.ReceivePurchase)

		api.GET("/expenses", ctl.ListExpenses)
		api.POST("/expenses", ctl.CreateExpense)

		api.GET("/analytics/dashboard/summary", ctl.DashboardSummary)
		api.GET("/analytics/profit", ctl.ProfitSeries)
		api.GET("/analytics/purchases", ctl.PurchaseAnalytics)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
			"routes":  validRoutes,
		})
	})
}
