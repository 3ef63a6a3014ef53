package httpapi

import (
	"context"
	"masterblog/internal/adapters/httpapi/middleware"
	postEntity "masterblog/internal/core/post"
	postPort "masterblog/internal/ports/post"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type PostUseCase interface {
	ListPosts(ctx context.Context, sortBy, direction string) ([]postEntity.Post, error)
	CreatePost(ctx context.Context, req *postPort.CreatePostDTO) (*postEntity.Post, error)
	UpdatePost(ctx context.Context, id int, req *postPort.UpdatePostDTO) (*postEntity.Post, error)
	DeletePost(ctx context.Context, id int) error
	SearchPosts(ctx context.Context, title, content string) ([]postEntity.Post, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(postUC PostUseCase, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ZapLogger(logger),
		cors.New(corsConfig()),
	)

	pc := NewPostController(postUC)

	api := r.Group("/api/posts")
	api.GET("", pc.ListPosts)
	api.POST("", pc.CreatePost)
	api.GET("/search", pc.SearchPosts)
	api.PUT("/:id", pc.UpdatePost)
	api.DELETE("/:id", pc.DeletePost)

	return r
}

// همه originها، متدها و هدرها مجاز هستند
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"}
	cfg.AllowHeaders = []string{"*"}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}
