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

var userColumns = []string{"id", "username", "password_hash", "is_admin"}

type userRepo struct {
	pg
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{pg: newPG(db)}
}

func (r *userRepo) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	query, args := r.qb.Insert("users").
		Columns("username", "password_hash", "is_admin").
		Values(username, passwordHash, false).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if isPgError(err, pgUniqueViolation) {
		return 0, entities.ErrUsernameTaken
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (r *userRepo) UserByUsername(ctx context.Context, username string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *userRepo) UserByID(ctx context.Context, id int64) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

// EscalateToAdmin grants admin rights. It reports false when the user is
// missing or already an admin.
func (r *userRepo) EscalateToAdmin(ctx context.Context, id int64) (bool, error) {
	query, args := r.qb.Update("users").
		Set("is_admin", true).
		Where(sq.Eq{"id": id, "is_admin": false}).
		MustSql()

	ok, err := r.affected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to escalate user: %w", err)
	}
	return ok, nil
}

func (r *userRepo) getUser(ctx context.Context, pred sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(pred).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}
