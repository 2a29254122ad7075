package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
)

// SessionCookie holds the id of the signed-in user.
const SessionCookie = "session_id"

type UserLoader interface {
	UserByID(ctx context.Context, id int64) (entities.User, error)
}

type userKey struct{}

func WithUser(ctx context.Context, u *entities.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the signed-in user, or nil for guests.
func UserFromContext(ctx context.Context) *entities.User {
	u, _ := ctx.Value(userKey{}).(*entities.User)
	return u
}

// Session resolves the session cookie to a user. Unknown or malformed
// sessions are treated as guests.
func Session(logger *slog.Logger, loader UserLoader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			id, err := strconv.ParseInt(cookie.Value, 10, 64)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := loader.UserByID(r.Context(), id)
			if err != nil {
				if !errors.Is(err, entities.ErrUserNotFound) {
					logger.ErrorContext(r.Context(), "failed to load session user", slog.Int64("user_id", id), slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &user)))
		})
	}
}

// RequireAdmin passes only admins through; everyone else gets denied.
func RequireAdmin(denied http.HandlerFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u := UserFromContext(r.Context()); u == nil || !u.IsAdmin {
				denied(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
