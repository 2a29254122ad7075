package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postRepo struct {
	pg
}

func NewPostRepo(db *sqlx.DB) *postRepo {
	return &postRepo{pg: newPG(db)}
}

func (r *postRepo) selectPosts() sq.SelectBuilder {
	return r.qb.Select(
		"p.id", "p.title", "p.blog_text", "p.author_id",
		"u.username AS author_name", "p.date_posted").
		From("posts p").
		Join("users u ON p.author_id = u.id")
}

func (r *postRepo) CountPosts(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("posts").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// ListPosts returns posts newest first.
func (r *postRepo) ListPosts(ctx context.Context, limit, offset int) ([]entities.Post, error) {
	query, args := r.selectPosts().
		OrderBy("p.date_posted DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []Post
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}

	posts := make([]entities.Post, 0, len(rows))
	for _, p := range rows {
		posts = append(posts, PostToEntity(p))
	}
	return posts, nil
}

func (r *postRepo) GetPost(ctx context.Context, id int64) (entities.Post, error) {
	query, args := r.selectPosts().
		Where(sq.Eq{"p.id": id}).
		MustSql()

	var post Post
	err := r.getContext(ctx, &post, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Post{}, entities.ErrPostNotFound
	}
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return PostToEntity(post), nil
}

func (r *postRepo) CreatePost(ctx context.Context, p entities.Post) (int64, error) {
	query, args := r.qb.Insert("posts").
		Columns("title", "blog_text", "author_id", "date_posted").
		Values(p.Title, p.Text, p.AuthorID, p.PostedAt).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if isPgError(err, pgForeignKeyViolation) {
		return 0, entities.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

func (r *postRepo) UpdatePost(ctx context.Context, id int64, title, text string) (bool, error) {
	query, args := r.qb.Update("posts").
		Set("title", title).
		Set("blog_text", text).
		Where(sq.Eq{"id": id}).
		MustSql()

	ok, err := r.affected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}
	return ok, nil
}

func (r *postRepo) DeletePost(ctx context.Context, id int64) (bool, error) {
	query, args := r.qb.Delete("posts").Where(sq.Eq{"id": id}).MustSql()

	ok, err := r.affected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return ok, nil
}
