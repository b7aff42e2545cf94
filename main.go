package main

import (
	"log"
	"os"
	"time"

	"backend/api"
	"backend/config"
	"backend/controllers"
	"backend/middleware"
	"backend/routes"
	"backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// The dashboard is served from a different origin; CORS is
	// deliberately permissive on every route.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	db := config.NewMongo()
	remote := api.NewClient()
	ctl := controllers.New(db, remote)

	s := gocron.NewScheduler(time.UTC)
	s.Every(1).Day().At("01:01").Do(utils.SweepOverdueOrders, config.Provider(db))
	s.Every(1).Day().At("07:00").Do(utils.SendLowStockDigest, config.Provider(db))
	s.StartAsync()

	routes.InitializeRoutes(r, ctl)

	port := os.Getenv("PORT")
	if port == "" {
		port = "1414"
	}

	r.Run(":" + port)
}
