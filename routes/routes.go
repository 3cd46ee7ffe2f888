// File: /routes/routes.go
package routes

import (
	"blog-api/config"
	"blog-api/controllers"
	"blog-api/metrics"
	"blog-api/middleware"
	"blog-api/repositories"
	"blog-api/services"
	"blog-api/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine with the global middleware chain and all routes
func NewRouter(cfg *config.Config, store *repositories.Store, log logrus.FieldLogger) *gin.Engine {
	utils.RegisterJSONTagNames()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	router.Use(middleware.ValidateJSON())

	SetupRoutes(router, store, cfg, log)
	return router
}

func SetupRoutes(r *gin.Engine, store *repositories.Store, cfg *config.Config, log logrus.FieldLogger) {
	// Services
	userService := services.NewUserService(store, log)
	postService := services.NewPostService(store, log)
	commentService := services.NewCommentService(store, log)

	// Controllers
	userController := controllers.NewUserController(userService, postService, cfg.DefaultProfileImageURL)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		stats := store.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"users":    stats.Users,
			"posts":    stats.Posts,
			"comments": stats.Comments,
			"likes":    stats.Likes,
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	users := r.Group("/users")
	{
		users.POST("/signup", userController.Signup)
		users.POST("/login", userController.Login)
		users.GET("/:id/profile", userController.GetProfile)
		users.PATCH("/:id/profile", userController.UpdateProfile)
		users.PATCH("/:id/password", userController.ChangePassword)
		users.DELETE("/:id", userController.DeleteUser)
		users.GET("/:id/posts", userController.GetUserPosts)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", middleware.PaginationDefaults(cfg.DefaultPageLimit, cfg.MaxPageLimit), postController.GetPosts)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.PATCH("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)

		posts.POST("/:id/like", postController.LikePost)
		posts.DELETE("/:id/like", postController.UnlikePost)

		posts.GET("/:id/comment", commentController.GetComments)
		posts.POST("/:id/comment", commentController.CreateComment)
		posts.PATCH("/:id/comment", commentController.UpdateComment)
		posts.DELETE("/:id/comment", commentController.DeleteComment)
	}
}
