package server

import (
	"time"

	httpHandler "axlas-recipes/interfaces/http"
	"axlas-recipes/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	tiktokHandler httpHandler.ITikTokHandler,
	recipeHandler httpHandler.IRecipeHandler,
	contactHandler httpHandler.IContactHandler,
	imageProxyHandler httpHandler.IImageProxyHandler,
	healthHandler httpHandler.IHealthHandler,
	corsOrigins []string,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"http://localhost:3000", "http://localhost:4321"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)

	api := router.Group("api")
	{
		api.GET("/tiktok-videos", tiktokHandler.GetFeed)
		api.POST("/tiktok-videos", tiktokHandler.PostAction)

		api.GET("/recipes", recipeHandler.ListRecipes)
		api.GET("/recipes/:slug", recipeHandler.GetRecipeBySlug)
		api.GET("/seasons", recipeHandler.ListSeasons)

		api.POST("/contact", contactHandler.Submit)

		api.GET("/image-proxy", imageProxyHandler.Proxy)
	}

	admin := router.Group("api/admin")
	admin.Use(middleware.Auth(secretKey))
	{
		admin.GET("/contact/messages", contactHandler.ListMessages)
	}

	return router
}
