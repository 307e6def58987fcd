package routes

import (
	"os"

	"orderdesk-backend/config"
	"orderdesk-backend/controllers"
	"orderdesk-backend/realtime"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *realtime.Hub, orderSvc *services.OrderService, paymentSvc *services.PaymentService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(os.Getenv("SESSION_SECRET")))
	r.Use(sessions.Sessions("orderdesk_session", store))

	r.Use(config.RequestLogger())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/", controllers.Home)

	auth := r.Group("/auth")
	{
		auth.GET("/register", controllers.GetRegister)
		auth.POST("/register", controllers.PostRegister)
		auth.GET("/login", controllers.GetLogin)
		auth.POST("/login", controllers.PostLogin)
		auth.GET("/logout", controllers.Logout)
	}

	r.GET("/dashboard", utils.RequireAdmin(), controllers.GetDashboardOverview)

	orderController := controllers.OrderController{Orders: orderSvc, Payments: paymentSvc}

	admin := r.Group("/admin")
	admin.Use(utils.RequireAdmin())
	{
		customers := admin.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/new", controllers.GetNewCustomer)
			customers.POST("/new", controllers.CreateCustomer)
			customers.GET("/:id/edit", controllers.GetEditCustomer)
			customers.POST("/:id/edit", controllers.UpdateCustomer)
			customers.POST("/:id/delete", controllers.DeleteCustomer)
		}

		products := admin.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/new", controllers.GetNewProduct)
			products.POST("/new", controllers.CreateProduct)
			products.GET("/:id/edit", controllers.GetEditProduct)
			products.POST("/:id/edit", controllers.UpdateProduct)
			products.POST("/:id/delete", controllers.DeleteProduct)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderController.Index)
			orders.GET("/new", orderController.New)
			orders.POST("/new", orderController.Create)
			orders.GET("/:id", orderController.Show)
			orders.POST("/:id/status", orderController.UpdateStatus)
			orders.POST("/:id/payments", orderController.RecordPayment)
		}
	}

	customerOrderController := controllers.CustomerOrderController{Orders: orderSvc, Payments: paymentSvc}

	customer := r.Group("/customer")
	{
		customer.GET("/register", controllers.GetCustomerRegister)
		customer.POST("/register", controllers.PostCustomerRegister)
		customer.GET("/login", controllers.GetCustomerLogin)
		customer.POST("/login", controllers.PostCustomerLogin)
		customer.GET("/logout", controllers.CustomerLogout)

		private := customer.Group("/orders")
		private.Use(utils.RequireCustomer())
		{
			private.GET("", customerOrderController.MyOrders)
			private.GET("/:id", customerOrderController.MyOrderDetail)
		}
	}

	r.GET("/realtime/token", controllers.RealtimeToken)
	r.GET("/ws", realtime.ServeWS(hub, realtime.AuthorizeTopic(orderSvc.OwnedBy)))

	return r
}
