package post

import (
	"context"
	"masterblog/internal/core/post"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها.
// هر متد باید به‌صورت اتمیک روی مخزن اجرا شود.
type PostRepository interface {
	All(ctx context.Context) ([]post.Post, error)
	Create(ctx context.Context, title, content string) (*post.Post, error)
	Update(ctx context.Context, id int, changes PostChanges) (*post.Post, error)
	Delete(ctx context.Context, id int) error
}

// PostChanges فیلدهای nil تغییر نمی‌کنند
type PostChanges struct {
	Title   *string
	Content *string
}

// DTOها برای UseCase
type CreatePostDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type UpdatePostDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ListQuery struct {
	Sort      string `form:"sort"`
	Direction string `form:"direction"`
}

type SearchQuery struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}
