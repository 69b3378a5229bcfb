package api

import (
	"Board/internal/api/dto"
	"Board/internal/api/middleware"
	"Board/internal/pkg/consts"
	"Board/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.Response{Code: http.StatusOK, Message: "pong"})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/signup", group.UserHandler.Signup)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me", group.UserHandler.GetUserInfo)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)

			// 需要登录 & 拥有 admin 角色
			adminGroup := categoryGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.CategoryHandler.CreateCategory)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/:post_id/like", group.PostHandler.LikePost)
				authGroup.POST("/:post_id/dislike", group.PostHandler.DislikePost)

				authGroup.POST("/:post_id/comments", group.CommentHandler.WriteComment)
				authGroup.PUT("/:post_id/comments/:comment_id", group.CommentHandler.UpdateComment)
				authGroup.DELETE("/:post_id/comments/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		bookmarkGroup := apiGroup.Group("/bookmarks")
		bookmarkGroup.Use(middleware.AuthMiddleware())
		{
			bookmarkGroup.GET("", group.BookmarkHandler.ListBookmarks)
			bookmarkGroup.POST("/:post_id", group.BookmarkHandler.ToggleBookmark)
		}
	}

	return r
}
