package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/persist"
	"github.com/lvdark77/Online-Store/routes"
	"github.com/lvdark77/Online-Store/session"
	"github.com/lvdark77/Online-Store/telemetry"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	logger := telemetry.InitLogger()

	// Init durable storage for the session records
	records := initStorage()

	// Session registry; idle sessions are swept, their records stay durable
	mgr := session.NewManager(records, 30*time.Minute, logger)
	go mgr.SweepLoop(context.Background(), 5*time.Minute)

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, mgr)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage picks the persistence driver from STORAGE_DRIVER.
func initStorage() persist.Store {
	switch os.Getenv("STORAGE_DRIVER") {
	case "postgres":
		store, err := persist.NewPostgres(postgresDSN())
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return store
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return persist.NewRedis(addr)
	case "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "./data"
		}
		store, err := persist.NewFiles(dir)
		if err != nil {
			log.Fatalf("❌ Failed to open data directory: %v", err)
		}
		return store
	default:
		return persist.NewMemory()
	}
}

func postgresDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
}
