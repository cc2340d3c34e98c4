package api

import (
	"net/http"

	"Peakfuel/internal/api/middleware"
	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		tierGroup := apiGroup.Group("/tiers")
		{
			tierGroup.GET("/:creator_id", group.TierHandler.GetCreatorTiers)

			creatorGroup := tierGroup.Group("")
			creatorGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleCreator, model.RoleAdmin))
			{
				creatorGroup.POST("", group.TierHandler.CreateTier)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/feed", group.PostHandler.GetFeed)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
			}

			creatorGroup := postGroup.Group("")
			creatorGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleCreator, model.RoleAdmin))
			{
				creatorGroup.POST("", group.PostHandler.CreatePost)
			}
		}

		actionGroup := apiGroup.Group("/post/action")
		{
			authOptGroup := actionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/comments/:post_id", group.EngagementHandler.GetComments)
				authOptGroup.GET("/replies/:post_id/:comment_id", group.EngagementHandler.GetReplies)
			}

			authGroup := actionGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/likes/:post_id", group.EngagementHandler.LikePost)
				authGroup.POST("/comments", group.EngagementHandler.CreateComment)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("/list", group.NotificationHandler.List)
			notificationGroup.GET("/unread", group.NotificationHandler.UnreadCount)
			notificationGroup.POST("/read", group.NotificationHandler.MarkAsRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllAsRead)
		}
	}

	return r
}
