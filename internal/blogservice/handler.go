package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogpages/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache, minArticleLen int) *BlogService {
	return &BlogService{
		m:             newBlogModel(db),
		c:             c,
		minArticleLen: minArticleLen,
	}
}

type CreateBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Article     string `json:"article"`
	UserID      int    `json:"user_id"`
}

type UpdateBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Article     string `json:"article"`
}

// CreateBlog validates the input and persists the blog together with the
// author's back-reference as one atomic unit.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	validateArticle(v, req.Article, s.minArticleLen)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:       req.Title,
		Description: req.Description,
		Article:     sanitizeArticle(req.Article),
		UserID:      req.UserID,
	}

	if err := s.m.insertBlog(ctx, &blog); err != nil {
		return nil, err
	}

	s.c.Flush()

	return &blog, nil
}

// UpdateBlog applies the mutable fields to a blog owned by the requester.
func (s *BlogService) UpdateBlog(ctx context.Context, blogID, requesterID int, req *UpdateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	validateArticle(v, req.Article, s.minArticleLen)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(blog.UserID, requesterID); err != nil {
		return nil, err
	}

	blog.Title = req.Title
	blog.Description = req.Description
	blog.Article = sanitizeArticle(req.Article)

	if err := s.m.updateBlog(ctx, blog); err != nil {
		return nil, err
	}

	s.c.Flush()

	return blog, nil
}

// DeleteBlog removes a blog owned by the requester, cascading its comments
// and the owner's back-reference. The ownership check happens before any
// transaction is opened.
func (s *BlogService) DeleteBlog(ctx context.Context, blogID, requesterID int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateInt(v, requesterID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(blog.UserID, requesterID); err != nil {
		return nil, err
	}

	if err := s.m.deleteBlog(ctx, blogID, requesterID); err != nil {
		return nil, err
	}

	s.c.Flush()

	return blog, nil
}

// CreateComment persists a comment on an existing blog together with the
// blog's comment reference as one atomic unit. Any authenticated user may
// comment on any blog.
func (s *BlogService) CreateComment(ctx context.Context, blogID, authorID int, content string) (*Comment, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	validateInt(v, authorID, "user_id")
	validateContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if _, err := s.m.getBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := Comment{
		UserID:  authorID,
		BlogID:  blogID,
		Content: content,
	}

	if err := s.m.insertComment(ctx, &comment); err != nil {
		return nil, err
	}

	s.c.Flush()

	return &comment, nil
}

// UpdateComment rewrites a comment's content; only its author may do so.
func (s *BlogService) UpdateComment(ctx context.Context, commentID, requesterID int, content string) (*Comment, error) {
	v := common.NewValidator()
	validateInt(v, commentID, "id")
	validateContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	comment, err := s.m.getCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(comment.UserID, requesterID); err != nil {
		return nil, err
	}

	comment.Content = content

	if err := s.m.updateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.c.Flush()

	return comment, nil
}

// DeleteComment removes a comment authored by the requester together with the
// parent blog's reference to it.
func (s *BlogService) DeleteComment(ctx context.Context, commentID, requesterID int) (*Comment, error) {
	v := common.NewValidator()
	validateInt(v, commentID, "id")
	validateInt(v, requesterID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	comment, err := s.m.getCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(comment.UserID, requesterID); err != nil {
		return nil, err
	}

	if err := s.m.deleteComment(ctx, commentID); err != nil {
		return nil, err
	}

	s.c.Flush()

	return comment, nil
}

// GetBlogs returns all blogs with their authors reduced to names. Default
// limit is 10 and default offset is 0.
func (s *BlogService) GetBlogs(ctx context.Context, limit, offset *int) ([]BlogView, error) {
	if *limit < 1 {
		*limit = 10
	}

	if *offset < 0 {
		*offset = 0
	}

	key := common.CacheKeyBlogs(*limit, *offset)
	if cached, ok := s.c.Get(key); ok {
		return cached.([]BlogView), nil
	}

	blogs, err := s.m.getBlogViews(ctx, *limit, *offset)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blogs)

	return blogs, nil
}

// GetBlogByID returns one blog with its author and nested comments.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*BlogView, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := common.CacheKeyBlog(id)
	if cached, ok := s.c.Get(key); ok {
		return cached.(*BlogView), nil
	}

	blog, err := s.m.getBlogView(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blog)

	return blog, nil
}

// GetBlogsByUserID returns the user's own blogs as full documents.
func (s *BlogService) GetBlogsByUserID(ctx context.Context, userID int) ([]Blog, error) {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := common.CacheKeyUserBlogs(userID)
	if cached, ok := s.c.Get(key); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.getBlogsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blogs)

	return blogs, nil
}
