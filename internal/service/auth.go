package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	UserByUsername(ctx context.Context, username string) (entities.User, error)
	UserByID(ctx context.Context, id int64) (entities.User, error)
	// EscalateToAdmin reports false when nothing changed.
	EscalateToAdmin(ctx context.Context, id int64) (bool, error)
}

type authService struct {
	logger   *slog.Logger
	repo     UserRepo
	hashCost int
}

func NewAuthService(logger *slog.Logger, repo UserRepo) *authService {
	return &authService{
		logger:   logger.With(slog.String("service", "auth")),
		repo:     repo,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates a regular (non-admin) user.
func (s *authService) Register(ctx context.Context, username, password string) (entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.CreateUser(ctx, username, string(hash))
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Info("user registered", slog.Int64("user_id", id))
	return entities.User{ID: id, Username: username, PasswordHash: string(hash)}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (entities.User, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.User{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, entities.ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) UserByID(ctx context.Context, id int64) (entities.User, error) {
	return s.repo.UserByID(ctx, id)
}

// EscalateToAdmin promotes the user. Promoting an admin is a no-op that
// reports false.
func (s *authService) EscalateToAdmin(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.EscalateToAdmin(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("user escalated to admin", slog.Int64("user_id", id))
	}
	return ok, nil
}
