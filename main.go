package main

import (
	"fmt"
	"os"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/realtime"
	"orderdesk-backend/routes"
	"orderdesk-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	logger := config.InitLogger()
	defer logger.Sync()

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.StatusEvent{},
		&models.Payment{},
		&models.PaymentReminderLog{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	hub := realtime.NewHub(logger)
	go hub.Run()

	orderSvc := services.NewOrderService(config.DB, hub, logger)
	paymentSvc := services.NewPaymentService(config.DB, hub, logger)

	reminderSvc := services.NewReminderService(config.DB, hub, logger)
	reminderSvc.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	r := routes.SetupRouter(hub, orderSvc, paymentSvc)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
