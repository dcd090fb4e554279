package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError reports whether err is a violation of the named foreign key
// constraint.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// insertBlog persists the blog and appends its id to the author's blog
// reference set inside one transaction. Either both writes apply or neither.
func (m *BlogModel) insertBlog(ctx context.Context, blog *Blog) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO blogs (title, description, article, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, version`

	err = tx.QueryRowContext(ctx, query, blog.Title, blog.Description, blog.Article, blog.UserID).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt, &blog.Version)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case ForeignKeyError(err, "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET blogs = array_append(blogs, $1), version = version + 1
		WHERE id = $2`, blog.ID, blog.UserID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if rows != 1 {
		_ = tx.Rollback()
		return ErrUserForeignKey
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	blog.Comments = []int{}

	return nil
}

func (m *BlogModel) getBlogByID(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT id, title, description, article, user_id, comments, created_at, updated_at, version
		FROM blogs
		WHERE id = $1`

	var blog Blog
	var comments pq.Int64Array

	err := m.db.QueryRowContext(ctx, query, id).Scan(&blog.ID, &blog.Title, &blog.Description, &blog.Article, &blog.UserID, &comments, &blog.CreatedAt, &blog.UpdatedAt, &blog.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	blog.Comments = toIntSlice(comments)

	return &blog, nil
}

// updateBlog writes the mutable blog fields. A single-row write; no
// transaction is needed.
func (m *BlogModel) updateBlog(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, description = $2, article = $3, updated_at = NOW(), version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING updated_at, version`

	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Description, blog.Article, blog.ID, blog.Version).Scan(&blog.UpdatedAt, &blog.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

// deleteBlog removes the blog, its comments and the owner's back-reference
// inside one transaction. Comments are cascade-deleted so none are orphaned.
func (m *BlogModel) deleteBlog(ctx context.Context, blogID, userID int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE blog_id = $1`, blogID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1 AND user_id = $2`, blogID, userID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if rows != 1 {
		_ = tx.Rollback()
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET blogs = array_remove(blogs, $1), version = version + 1
		WHERE $1 = ANY(blogs)`, blogID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// insertComment persists the comment and appends its id to the blog's comment
// reference set inside one transaction.
func (m *BlogModel) insertComment(ctx context.Context, comment *Comment) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO comments (user_id, blog_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at, version`

	err = tx.QueryRowContext(ctx, query, comment.UserID, comment.BlogID, comment.Content).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt, &comment.Version)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case ForeignKeyError(err, "comments_blog_id_fkey"):
			return ErrRecordNotFound
		case ForeignKeyError(err, "comments_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE blogs
		SET comments = array_append(comments, $1), version = version + 1
		WHERE id = $2`, comment.ID, comment.BlogID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if rows != 1 {
		_ = tx.Rollback()
		return ErrRecordNotFound
	}

	return tx.Commit()
}

func (m *BlogModel) getCommentByID(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT id, user_id, blog_id, content, created_at, updated_at, version
		FROM comments
		WHERE id = $1`

	var comment Comment

	err := m.db.QueryRowContext(ctx, query, id).Scan(&comment.ID, &comment.UserID, &comment.BlogID, &comment.Content, &comment.CreatedAt, &comment.UpdatedAt, &comment.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &comment, nil
}

func (m *BlogModel) updateComment(ctx context.Context, comment *Comment) error {
	query := `
		UPDATE comments
		SET content = $1, updated_at = NOW(), version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version`

	err := m.db.QueryRowContext(ctx, query, comment.Content, comment.ID, comment.Version).Scan(&comment.UpdatedAt, &comment.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

// deleteComment removes the comment and pulls its id from whichever blog's
// comment reference set contains it, inside one transaction. The pull matches
// on set membership rather than a previously loaded blog row.
func (m *BlogModel) deleteComment(ctx context.Context, commentID int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if rows != 1 {
		_ = tx.Rollback()
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE blogs
		SET comments = array_remove(comments, $1), version = version + 1
		WHERE $1 = ANY(comments)`, commentID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// getBlogViews lists blogs with their authors reduced to names, newest first.
func (m *BlogModel) getBlogViews(ctx context.Context, limit, offset int) ([]BlogView, error) {
	query := `
		SELECT b.id, b.title, b.description, b.article, b.created_at, u.first_name, u.last_name
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]BlogView, 0)
	for rows.Next() {
		var blog BlogView
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Description, &blog.Article, &blog.CreatedAt, &blog.Author.FirstName, &blog.Author.LastName)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// getBlogView loads one blog with its author and its comments, each comment
// carrying the commenter's names.
func (m *BlogModel) getBlogView(ctx context.Context, id int) (*BlogView, error) {
	query := `
		SELECT b.id, b.title, b.description, b.article, b.created_at, u.first_name, u.last_name
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		WHERE b.id = $1`

	var blog BlogView

	err := m.db.QueryRowContext(ctx, query, id).Scan(&blog.ID, &blog.Title, &blog.Description, &blog.Article, &blog.CreatedAt, &blog.Author.FirstName, &blog.Author.LastName)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	commentQuery := `
		SELECT c.id, c.content, c.created_at, u.first_name, u.last_name
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.blog_id = $1
		ORDER BY c.created_at ASC`

	rows, err := m.db.QueryContext(ctx, commentQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blog.Comments = make([]CommentView, 0)
	for rows.Next() {
		var comment CommentView
		err := rows.Scan(&comment.ID, &comment.Content, &comment.Date, &comment.User.FirstName, &comment.User.LastName)
		if err != nil {
			return nil, err
		}
		blog.Comments = append(blog.Comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &blog, nil
}

// getBlogsByUserID returns the user's full blog rows, newest first.
func (m *BlogModel) getBlogsByUserID(ctx context.Context, userID int) ([]Blog, error) {
	query := `
		SELECT id, title, description, article, user_id, comments, created_at, updated_at, version
		FROM blogs
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]Blog, 0)
	for rows.Next() {
		var blog Blog
		var comments pq.Int64Array
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Description, &blog.Article, &blog.UserID, &comments, &blog.CreatedAt, &blog.UpdatedAt, &blog.Version)
		if err != nil {
			return nil, err
		}
		blog.Comments = toIntSlice(comments)
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func toIntSlice(a pq.Int64Array) []int {
	s := make([]int, len(a))
	for i, n := range a {
		s[i] = int(n)
	}
	return s
}
