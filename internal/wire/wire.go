package wire

import (
	"Board/internal/api"
	"Board/internal/api/config"
	"Board/internal/api/handler"
	"Board/internal/pkg/security"
	"Board/internal/repository"
	"Board/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	security.Configure(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.ExpireHours)*time.Hour)

	store := repository.NewStore(db)

	userService := service.NewUserService(store.Users)
	categoryService := service.NewCategoryService(store.Categories)
	postService := service.NewPostService(store, categoryService)
	commentService := service.NewCommentService(store)
	reactionService := service.NewReactionService(store)
	bookmarkService := service.NewBookmarkService(store)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		CategoryHandler: handler.NewCategoryHandler(categoryService),
		PostHandler:     handler.NewPostHandler(postService, commentService, reactionService, bookmarkService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		BookmarkHandler: handler.NewBookmarkHandler(bookmarkService),
	}

	return &ApplicationContainer{
		Router: api.SetupRouter(handlers),
		DB:     db,
	}, nil
}
