package post

import (
	"errors"
	"strings"
)

// Post تنها موجودیت دامنه: یک پست وبلاگ
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// خطاهای دامنه؛ کنترلر با errors.Is آن‌ها را به کد HTTP تبدیل می‌کند
var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrMissingFields    = errors.New("title and content are required")
	ErrPostNotFound     = errors.New("post not found")
)

// SortField فیلدی که لیست پست‌ها بر اساس آن مرتب می‌شود
type SortField string

const (
	SortNone    SortField = ""
	SortTitle   SortField = "title"
	SortContent SortField = "content"
)

// ParseSortField رشته ورودی را به SortField تبدیل می‌کند؛ رشته خالی یعنی بدون مرتب‌سازی
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortNone, SortTitle, SortContent:
		return SortField(s), nil
	}
	return SortNone, ErrInvalidSortField
}

// Less مقایسه دو پست بر اساس فیلد انتخاب‌شده (حساس به حروف بزرگ و کوچک)
func (f SortField) Less(a, b Post) bool {
	switch f {
	case SortTitle:
		return a.Title < b.Title
	case SortContent:
		return a.Content < b.Content
	}
	return false
}

// Direction جهت مرتب‌سازی
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection مقدار پیش‌فرض asc است
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "":
		return Asc, nil
	case Asc, Desc:
		return Direction(s), nil
	}
	return Asc, ErrInvalidDirection
}

// Matches شرط جستجو: عنوان شامل titleTerm یا محتوا شامل contentTerm.
// عبارت خالی یعنی آن شرط اعمال نمی‌شود. عبارت‌ها باید از قبل lower-case باشند.
func (p Post) Matches(titleTerm, contentTerm string) bool {
	if titleTerm != "" && strings.Contains(strings.ToLower(p.Title), titleTerm) {
		return true
	}
	return contentTerm != "" && strings.Contains(strings.ToLower(p.Content), contentTerm)
}

// Seed پست‌های اولیه‌ای که سرویس با آن‌ها شروع می‌شود
func Seed() []Post {
	return []Post{
		{ID: 1, Title: "First post", Content: "This is the first post."},
		{ID: 2, Title: "Second post", Content: "This is the second post."},
		{ID: 3, Title: "Another post", Content: "Learning Gin is little bit of fun!"},
	}
}
