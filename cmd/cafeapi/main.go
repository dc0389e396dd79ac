package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cafedir/controller"
	"cafedir/database"
	"cafedir/model"
	"cafedir/repository"
	"cafedir/route"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "cafes.db"
	}
	db, err := database.Open(dbPath, &model.Cafe{})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	deleteKey := os.Getenv("KEY")
	if deleteKey == "" {
		log.Fatal("KEY must be set (secret for DELETE /report_closed)")
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	// Initialize router
	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")

	// Configure CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = append(origins, allowedOrigins)
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	log.Println("CORS configured")

	// Setup routes
	ctrl := controller.NewCafeController(repository.NewCafeRepo(db), deleteKey)
	route.CafeRoutes(router, ctrl)
	log.Println("Routes configured successfully")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting cafe API on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
