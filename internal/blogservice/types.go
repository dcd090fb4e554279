package blogservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogpages/internal/common"
)

type Blog struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	// Article is the post body; its minimum length is a service policy.
	Article   string    `json:"article"`
	UserID    int       `json:"user_id"`
	Comments  []int     `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"-"`
}

type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	BlogID    int       `json:"blog_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
	Version   int       `json:"-"`
}

// Author is a user reduced to displayable names.
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CommentView struct {
	ID      int       `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	User    Author    `json:"user"`
}

// BlogView is a blog denormalized with its author and, on detail reads, its
// comments with their commenters.
type BlogView struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Article     string        `json:"article"`
	Author      Author        `json:"author"`
	CreatedAt   time.Time     `json:"created_at"`
	Comments    []CommentView `json:"comments,omitempty"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m             *BlogModel
	c             *common.Cache
	minArticleLen int
}
