package main

import (
	_ "Backend-GovSeva/docs"
	"Backend-GovSeva/src/database"
	"Backend-GovSeva/src/jobs"
	"Backend-GovSeva/src/routes"
	"Backend-GovSeva/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        GovSeva Portal API
// @version      1.0
// @description  Government services portal: catalog, applications, wallet and job alerts.
// @BasePath     /
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()

	if err := seeder.SeedDefaults(); err != nil {
		log.Println("⚠️ Seeding failed:", err)
	}

	// background workers need redis; without it the API still serves
	if database.RedisClient != nil {
		go jobs.StartWorker()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
