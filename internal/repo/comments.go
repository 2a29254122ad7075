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

type commentRepo struct {
	pg
}

func NewCommentRepo(db *sqlx.DB) *commentRepo {
	return &commentRepo{pg: newPG(db)}
}

func (r *commentRepo) selectComments() sq.SelectBuilder {
	return r.qb.Select(
		"c.id", "c.post_id", "c.user_id", "c.guest_name",
		"COALESCE(u.username, c.guest_name, '') AS commenter_name",
		"c.content", "c.time_made").
		From("comments c").
		LeftJoin("users u ON c.user_id = u.id")
}

func (r *commentRepo) AddComment(ctx context.Context, c entities.Comment) (int64, error) {
	query, args := r.qb.Insert("comments").
		Columns("post_id", "user_id", "guest_name", "content", "time_made").
		Values(c.PostID, nullInt64(c.UserID), nullString(c.GuestName), c.Content, c.CreatedAt).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if isPgError(err, pgForeignKeyViolation) {
		return 0, entities.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}
	return id, nil
}

// CommentsForPost returns comments oldest first.
func (r *commentRepo) CommentsForPost(ctx context.Context, postID int64) ([]entities.Comment, error) {
	query, args := r.selectComments().
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.time_made ASC", "c.id ASC").
		MustSql()

	var rows []Comment
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select comments: %w", err)
	}

	comments := make([]entities.Comment, 0, len(rows))
	for _, c := range rows {
		comments = append(comments, CommentToEntity(c))
	}
	return comments, nil
}

func (r *commentRepo) GetComment(ctx context.Context, id int64) (entities.Comment, error) {
	query, args := r.selectComments().
		Where(sq.Eq{"c.id": id}).
		MustSql()

	var comment Comment
	err := r.getContext(ctx, &comment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Comment{}, entities.ErrCommentNotFound
	}
	if err != nil {
		return entities.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}
	return CommentToEntity(comment), nil
}

func (r *commentRepo) DeleteComment(ctx context.Context, id int64) (bool, error) {
	query, args := r.qb.Delete("comments").Where(sq.Eq{"id": id}).MustSql()

	ok, err := r.affected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}
	return ok, nil
}
