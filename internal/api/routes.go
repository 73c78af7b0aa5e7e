package api

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardfolio/backend/internal/api/handlers"
	"github.com/cardfolio/backend/internal/config"
	"github.com/cardfolio/backend/internal/metrics"
	"github.com/cardfolio/backend/internal/services"
)

func SetupRouter(cfg *config.Config, stats *services.StatsService, achievements *services.AchievementService, priceWorker *services.PriceWorker) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))

	router.Use(requestMetrics())

	userHandler := handlers.NewUserHandler()
	cardHandler := handlers.NewCardHandler(priceWorker)
	collectionHandler := handlers.NewCollectionHandler(stats, achievements)
	achievementHandler := handlers.NewAchievementHandler(achievements)
	socialHandler := handlers.NewSocialHandler(achievements)

	api := router.Group("/api")
	{
		api.POST("/users", userHandler.CreateUser)

		cards := api.Group("/cards")
		{
			cards.GET("/search", cardHandler.SearchCards)
			cards.GET("/:id", cardHandler.GetCard)
			cards.POST("/:id/refresh-price", cardHandler.RefreshCardPrice)
		}

		api.GET("/prices/status", cardHandler.GetPriceStatus)

		users := api.Group("/users/:userId")
		{
			users.GET("", userHandler.GetUser)

			users.GET("/collection", collectionHandler.GetCollection)
			users.POST("/collection", collectionHandler.AddToCollection)
			users.PUT("/collection/:id", collectionHandler.UpdateCollectionItem)
			users.DELETE("/collection/:id", collectionHandler.DeleteCollectionItem)
			users.GET("/collection/stats", collectionHandler.GetStats)

			users.GET("/achievements", achievementHandler.ListAchievements)
			users.POST("/achievements/check", achievementHandler.CheckAchievements)

			users.GET("/friends", socialHandler.ListFriends)
			users.POST("/friends/:friendId", socialHandler.AddFriend)
			users.DELETE("/friends/:friendId", socialHandler.RemoveFriend)

			users.GET("/trades", socialHandler.ListTrades)
			users.POST("/trades", socialHandler.CreateTrade)
			users.POST("/trades/:id/complete", socialHandler.CompleteTrade)

			users.POST("/logins", socialHandler.RecordLogin)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// requestMetrics records per-route request counts and latency, keyed by
// the route template so path parameters don't explode label cardinality.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
