package main

import (
	"log"

	"leevienna_shop/config"
	"leevienna_shop/database"
	"leevienna_shop/helper"
	"leevienna_shop/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartPendingOrderSweep()
	defer helper.StopPendingOrderSweep()
	helper.StartDailySummaryScheduler()
	defer helper.StopDailySummaryScheduler()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8080")
	log.Fatal(app.Listen(":" + port))
}
