package memory

import (
	"context"
	"sync"

	"masterblog/internal/core/post"
	postPort "masterblog/internal/ports/post"
)

// PostRepositoryMemory پیاده‌سازی PostRepository در حافظه.
// تمام دسترسی‌ها به slice پشت یک قفل انجام می‌شود.
type PostRepositoryMemory struct {
	mu    sync.RWMutex
	posts []post.Post
}

// NewPostRepositoryMemory سازنده؛ پست‌های اولیه کپی می‌شوند
func NewPostRepositoryMemory(seed []post.Post) *PostRepositoryMemory {
	posts := make([]post.Post, len(seed))
	copy(posts, seed)
	return &PostRepositoryMemory{posts: posts}
}

// All یک کپی از همه پست‌ها به ترتیب ذخیره
func (repo *PostRepositoryMemory) All(ctx context.Context) ([]post.Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	posts := make([]post.Post, len(repo.posts))
	copy(posts, repo.posts)
	return posts, nil
}

// Create شناسه جدید max+1 است (یا 1 وقتی مخزن خالی است)
func (repo *PostRepositoryMemory) Create(ctx context.Context, title, content string) (*post.Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p := post.Post{
		ID:      repo.nextID(),
		Title:   title,
		Content: content,
	}
	repo.posts = append(repo.posts, p)
	return &p, nil
}

func (repo *PostRepositoryMemory) Update(ctx context.Context, id int, changes postPort.PostChanges) (*post.Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return nil, post.ErrPostNotFound
	}
	if changes.Title != nil {
		repo.posts[i].Title = *changes.Title
	}
	if changes.Content != nil {
		repo.posts[i].Content = *changes.Content
	}
	p := repo.posts[i]
	return &p, nil
}

func (repo *PostRepositoryMemory) Delete(ctx context.Context, id int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return post.ErrPostNotFound
	}
	repo.posts = append(repo.posts[:i], repo.posts[i+1:]...)
	return nil
}

// قفل باید در اختیار caller باشد
func (repo *PostRepositoryMemory) nextID() int {
	maxID := 0
	for _, p := range repo.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func (repo *PostRepositoryMemory) indexOf(id int) int {
	for i, p := range repo.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
