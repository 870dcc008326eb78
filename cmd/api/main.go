package main

import (
	"log"
	"os"

	"dentalcare-backend/internal/config"
	"dentalcare-backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config.ConnectDB()

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("DentalCare API démarrée sur le port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("serveur: %v", err)
	}
}
