package handler

import (
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ugcservice/pkg/logger"
	"ugcservice/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(
	bookmarkHandler *BookmarkHandler,
	likeHandler *LikeHandler,
	reviewHandler *ReviewHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// Отчеты о panic и ошибках в Sentry (no-op без DSN)
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("ugc-service"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ugc-service",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Все операции с пользовательским контентом требуют аутентификации
	api := router.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	{
		bookmarks := api.Group("/bookmarks")
		{
			bookmarks.POST("", bookmarkHandler.CreateBookmark)
			bookmarks.GET("", bookmarkHandler.GetBookmarks)
			bookmarks.DELETE("", bookmarkHandler.DeleteBookmark)
		}

		likes := api.Group("/likes")
		{
			likes.POST("", likeHandler.CreateLike)
			likes.GET("", likeHandler.GetLikes)
			likes.GET("/:film_id/count", likeHandler.GetLikeCount)
			likes.GET("/:film_id/average-rating", likeHandler.GetAverageRating)
			likes.PATCH("", likeHandler.UpdateLike)
			likes.DELETE("", likeHandler.DeleteLike)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", reviewHandler.CreateReview)
			reviews.GET("", reviewHandler.GetUserReviews)
			reviews.GET("/:film_id/all", reviewHandler.GetFilmReviews)
			reviews.PATCH("", reviewHandler.UpdateReview)
			reviews.DELETE("", reviewHandler.DeleteReview)
		}
	}

	return router
}
