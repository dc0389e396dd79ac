package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cafedir/controller"
	"cafedir/database"
	"cafedir/model"
	"cafedir/repository"
	"cafedir/route"
	"cafedir/utils"
)

const (
	downloadDir  = "./static/files"
	downloadFile = "cheat_sheet.pdf"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "users.db"
	}
	db, err := database.Open(dbPath, &model.User{}, &model.Session{})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	sessionTTL := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatalf("Invalid SESSION_TTL_HOURS: %q", raw)
		}
		sessionTTL = time.Duration(hours) * time.Hour
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

	// Setup routes
	auth := &utils.SessionAuth{
		Secret:   secret,
		Sessions: repository.NewSessionRepo(db),
		Users:    repository.NewUserRepo(db),
	}
	ctrl := controller.NewAuthController(auth, sessionTTL, downloadDir, downloadFile)
	route.AuthRoutes(router, ctrl, auth)
	log.Println("Routes configured successfully")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("Starting auth demo on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
