package postapp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"masterblog/internal/core/activity"
	postEntity "masterblog/internal/core/post"
	activityPort "masterblog/internal/ports/activity"
	postPort "masterblog/internal/ports/post"

	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	ActivityQueue  activityPort.ActivityQueue // تزریق شده
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	activityQueue activityPort.ActivityQueue,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		ActivityQueue:  activityQueue,
		Logger:         logger,
	}
}

// ListPosts لیست پست‌ها، در صورت درخواست مرتب‌شده بر اساس title یا content
func (s *PostService) ListPosts(ctx context.Context, sortBy, direction string) ([]postEntity.Post, error) {
	// ترتیب اعتبارسنجی: اول sort، بعد direction
	field, err := postEntity.ParseSortField(sortBy)
	if err != nil {
		return nil, fmt.Errorf("%w '%s'. Allowed: 'title', 'content'", err, sortBy)
	}
	dir, err := postEntity.ParseDirection(direction)
	if err != nil {
		return nil, fmt.Errorf("%w '%s'. Allowed: 'asc', 'desc'", err, direction)
	}

	posts, err := s.PostRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if field == postEntity.SortNone {
		return posts, nil
	}

	// SliceStable ترتیب پست‌های با کلید برابر را در هر دو جهت حفظ می‌کند
	if dir == postEntity.Desc {
		sort.SliceStable(posts, func(i, j int) bool { return field.Less(posts[j], posts[i]) })
	} else {
		sort.SliceStable(posts, func(i, j int) bool { return field.Less(posts[i], posts[j]) })
	}
	return posts, nil
}

// CreatePost ایجاد یک پست جدید؛ فقط نبودن کلیدها خطاست، رشته خالی مجاز است
func (s *PostService) CreatePost(ctx context.Context, req *postPort.CreatePostDTO) (*postEntity.Post, error) {
	if req == nil || req.Title == nil || req.Content == nil {
		return nil, postEntity.ErrMissingFields
	}

	created, err := s.PostRepository.Create(ctx, *req.Title, *req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.Logger.Info("✅ Created post", zap.Int("ID", created.ID))

	s.recordActivity(ctx, activity.Created, created.ID)
	return created, nil
}

// UpdatePost فقط فیلدهای موجود در درخواست جایگزین می‌شوند
func (s *PostService) UpdatePost(ctx context.Context, id int, req *postPort.UpdatePostDTO) (*postEntity.Post, error) {
	var changes postPort.PostChanges
	if req != nil {
		changes.Title = req.Title
		changes.Content = req.Content
	}

	updated, err := s.PostRepository.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	s.Logger.Info("✅ Updated post", zap.Int("ID", updated.ID))

	s.recordActivity(ctx, activity.Updated, updated.ID)
	return updated, nil
}

// DeletePost حذف دقیقا یک پست؛ ترتیب بقیه پست‌ها تغییر نمی‌کند
func (s *PostService) DeletePost(ctx context.Context, id int) error {
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	s.Logger.Info("🗑️ Deleted post", zap.Int("ID", id))

	s.recordActivity(ctx, activity.Deleted, id)
	return nil
}

// SearchPosts جستجوی غیرحساس به حروف در عنوان یا محتوا (OR بین دو شرط)
func (s *PostService) SearchPosts(ctx context.Context, title, content string) ([]postEntity.Post, error) {
	titleTerm := strings.ToLower(title)
	contentTerm := strings.ToLower(content)

	posts, err := s.PostRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	if titleTerm == "" && contentTerm == "" {
		return posts, nil
	}

	matches := make([]postEntity.Post, 0, len(posts))
	for _, p := range posts {
		if p.Matches(titleTerm, contentTerm) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// recordActivity خطای صف فقط لاگ می‌شود و درخواست را خراب نمی‌کند
func (s *PostService) recordActivity(ctx context.Context, action activity.Action, postID int) {
	if s.ActivityQueue == nil {
		return
	}
	if err := s.ActivityQueue.Enqueue(ctx, activity.NewEvent(action, postID)); err != nil {
		s.Logger.Warn("⚠️ Warning: could not enqueue activity", zap.String("action", string(action)), zap.Int("postID", postID), zap.Error(err))
	}
}
