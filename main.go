// @title Aadhaar Intelligence System API
// @version 1.0
// @description Analytics backend for the Aadhaar Intelligence System dashboard
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/middleware"
	"github.com/rajstories/Aadhaar-Intelligence-System/routes"
	"github.com/rajstories/Aadhaar-Intelligence-System/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public dashboard surface: filter catalog and global search
	routes.SetupMetadataRoutes(api)
	routes.SetupSearchRoutes(api)
	log.Println("✅ Public routes registered")

	// ✅ Setup Admin Routes (at /api/v1/admin prefix)
	routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Analytics and alerts live under the rate-limited admin group
	adminGroup := api.Group("/admin")
	adminGroup.Use(
		middleware.RateLimiter(100, time.Minute),
		middleware.AdminAuthMiddleware(),
	)

	routes.SetupAnalyticsRoutes(adminGroup)
	routes.SetupAlertRoutes(adminGroup)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
