package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	postEntity "masterblog/internal/core/post"
	postPort "masterblog/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) ListPosts(c *gin.Context) {
	var q postPort.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	posts, err := ctl.pc.ListPosts(c.Request.Context(), q.Sort, q.Direction)
	if err != nil {
		if errors.Is(err, postEntity.ErrInvalidSortField) || errors.Is(err, postEntity.ErrInvalidDirection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postPort.CreatePostDTO
	// بدنه خالی مثل نبودن فیلدها رفتار می‌شود
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	p, err := ctl.pc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, postEntity.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req postPort.UpdatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	p, err := ctl.pc.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, postEntity.ErrPostNotFound) {
			notFound(c, strconv.Itoa(id))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, postEntity.ErrPostNotFound) {
			notFound(c, strconv.Itoa(id))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Post with id %d has been deleted successfully.", id)})
}

func (ctl *PostController) SearchPosts(c *gin.Context) {
	var q postPort.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	posts, err := ctl.pc.SearchPosts(c.Request.Context(), q.Title, q.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// postID شناسه غیرعددی هم به هیچ پستی اشاره نمی‌کند، پس 404
func postID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		notFound(c, raw)
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Post with id %s not found!", id)})
}
