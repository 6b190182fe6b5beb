// @title Jeju Produce Sales Analytics API
// @version 1.0
// @description Sales-analytics dashboard backend for Jeju agricultural produce
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/dgeast/jeju-sale1/config"
	_ "github.com/dgeast/jeju-sale1/docs"
	"github.com/dgeast/jeju-sale1/middleware"
	"github.com/dgeast/jeju-sale1/routes/dashboard_routes"
	"github.com/dgeast/jeju-sale1/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter backend)
	config.ConnectRedis()

	// Warm-load the dataset. A missing primary export is the one fatal
	// condition; every other bad input degrades at request time.
	rows, stats, err := services.LoadDataset(config.DataDir(), config.PipelineOptions())
	if err != nil {
		log.Fatalf("❌ Sales dataset not found under %s: %v", config.DataDir(), err)
	}
	log.Printf("✅ Dataset loaded: %d rows (%d dropped for bad dates)", len(rows), stats.DroppedBadDates)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.RateLimiter(100, time.Minute))
	dashboard_routes.SetupAnalyticsRoutes(dashboard)
	dashboard_routes.SetupReportRoutes(dashboard)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + config.Port()
	fmt.Println("🚀 Server is running on http://localhost" + addr)
	router.Run(addr)
}
