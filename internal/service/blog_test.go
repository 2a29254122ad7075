package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/service"
	mocks "github.com/SergeyBogomolovv/fullstack-web-apps/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type blogMocks struct {
	posts    *mocks.MockPostRepo
	comments *mocks.MockCommentRepo
	cache    *mocks.MockCache
}

func newBlogMocks(t *testing.T) blogMocks {
	return blogMocks{
		posts:    mocks.NewMockPostRepo(t),
		comments: mocks.NewMockCommentRepo(t),
		cache:    mocks.NewMockCache(t),
	}
}

func TestBlogService_GetPost(t *testing.T) {
	type MockBehavior func(m blogMocks)

	validPost := entities.Post{
		ID:         5,
		Title:      "Hello",
		Text:       "World",
		AuthorID:   1,
		AuthorName: "admin",
		PostedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	validData, err := validPost.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Post
	}{
		{
			name: "success from cache",
			mockBehavior: func(m blogMocks) {
				m.cache.EXPECT().Get("post:5").Return(validData, true).Once()
			},
			want: validPost,
		},
		{
			name: "broken cache entry is evicted and reloaded",
			mockBehavior: func(m blogMocks) {
				m.cache.EXPECT().Get("post:5").Return([]byte("broken"), true).Once()
				m.cache.EXPECT().Delete("post:5").Return().Once()
				m.posts.EXPECT().GetPost(mock.Anything, int64(5)).Return(validPost, nil).Once()
				m.cache.EXPECT().Set("post:5", validData).Return().Once()
			},
			want: validPost,
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(m blogMocks) {
				m.cache.EXPECT().Get("post:5").Return(nil, false).Once()
				m.posts.EXPECT().GetPost(mock.Anything, int64(5)).Return(validPost, nil).Once()
				m.cache.EXPECT().Set("post:5", validData).Return().Once()
			},
			want: validPost,
		},
		{
			name: "not found in repo",
			mockBehavior: func(m blogMocks) {
				m.cache.EXPECT().Get("post:5").Return(nil, false).Once()
				m.posts.EXPECT().GetPost(mock.Anything, int64(5)).Return(entities.Post{}, entities.ErrPostNotFound).Once()
			},
			wantErr: entities.ErrPostNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newBlogMocks(t)
			tc.mockBehavior(m)

			svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)

			got, err := svc.GetPost(context.Background(), 5)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBlogService_ListPosts(t *testing.T) {
	testCases := []struct {
		name       string
		page       int
		wantOffset int
		wantPage   int
	}{
		{name: "second page", page: 2, wantOffset: 10, wantPage: 2},
		{name: "page below one is clamped", page: 0, wantOffset: 0, wantPage: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newBlogMocks(t)
			posts := []entities.Post{{ID: 1}, {ID: 2}}
			m.posts.EXPECT().ListPosts(mock.Anything, 10, tc.wantOffset).Return(posts, nil).Once()
			m.posts.EXPECT().CountPosts(mock.Anything).Return(25, nil).Once()

			svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)

			page, err := svc.ListPosts(context.Background(), tc.page, 10)
			require.NoError(t, err)
			assert.Equal(t, posts, page.Posts)
			assert.Equal(t, tc.wantPage, page.Page)
			assert.Equal(t, 25, page.Total)
			assert.True(t, page.HasNext())
		})
	}
}

func TestBlogService_UpdatePost(t *testing.T) {
	t.Run("evicts cached copy", func(t *testing.T) {
		m := newBlogMocks(t)
		m.posts.EXPECT().UpdatePost(mock.Anything, int64(5), "T", "X").Return(true, nil).Once()
		m.cache.EXPECT().Delete("post:5").Return().Once()

		svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)
		assert.NoError(t, svc.UpdatePost(context.Background(), 5, "T", "X"))
	})

	t.Run("missing post", func(t *testing.T) {
		m := newBlogMocks(t)
		m.posts.EXPECT().UpdatePost(mock.Anything, int64(5), "T", "X").Return(false, nil).Once()

		svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)
		assert.ErrorIs(t, svc.UpdatePost(context.Background(), 5, "T", "X"), entities.ErrPostNotFound)
	})
}

func TestBlogService_DeletePost(t *testing.T) {
	t.Run("evicts cached copy", func(t *testing.T) {
		m := newBlogMocks(t)
		m.posts.EXPECT().DeletePost(mock.Anything, int64(5)).Return(true, nil).Once()
		m.cache.EXPECT().Delete("post:5").Return().Once()

		svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)
		assert.NoError(t, svc.DeletePost(context.Background(), 5))
	})

	t.Run("missing post", func(t *testing.T) {
		m := newBlogMocks(t)
		m.posts.EXPECT().DeletePost(mock.Anything, int64(5)).Return(false, nil).Once()

		svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)
		assert.ErrorIs(t, svc.DeletePost(context.Background(), 5), entities.ErrPostNotFound)
	})
}

func TestBlogService_CreatePost(t *testing.T) {
	m := newBlogMocks(t)
	m.posts.EXPECT().
		CreatePost(mock.Anything, mock.MatchedBy(func(p entities.Post) bool {
			return p.AuthorID == 1 && p.Title == "T" && p.Text == "X" && !p.PostedAt.IsZero()
		})).
		Return(9, nil).Once()

	svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)

	id, err := svc.CreatePost(context.Background(), entities.User{ID: 1, IsAdmin: true}, "T", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestBlogService_AddComment(t *testing.T) {
	m := newBlogMocks(t)
	stored := entities.Comment{ID: 3, PostID: 5, GuestName: "guest", CommenterName: "guest", Content: "hi"}
	m.comments.EXPECT().
		AddComment(mock.Anything, mock.MatchedBy(func(c entities.Comment) bool {
			return c.PostID == 5 && !c.CreatedAt.IsZero()
		})).
		Return(3, nil).Once()
	m.comments.EXPECT().GetComment(mock.Anything, int64(3)).Return(stored, nil).Once()

	svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)

	got, err := svc.AddComment(context.Background(), entities.Comment{PostID: 5, GuestName: "guest", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestBlogService_DeleteComment(t *testing.T) {
	type MockBehavior func(m blogMocks)

	authorID := int64(2)
	comment := entities.Comment{ID: 3, PostID: 5, UserID: &authorID, Content: "hi"}

	testCases := []struct {
		name         string
		actor        *entities.User
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "author deletes own comment",
			actor: &entities.User{ID: 2},
			mockBehavior: func(m blogMocks) {
				m.comments.EXPECT().GetComment(mock.Anything, int64(3)).Return(comment, nil).Once()
				m.comments.EXPECT().DeleteComment(mock.Anything, int64(3)).Return(true, nil).Once()
			},
		},
		{
			name:  "admin deletes any comment",
			actor: &entities.User{ID: 1, IsAdmin: true},
			mockBehavior: func(m blogMocks) {
				m.comments.EXPECT().GetComment(mock.Anything, int64(3)).Return(comment, nil).Once()
				m.comments.EXPECT().DeleteComment(mock.Anything, int64(3)).Return(true, nil).Once()
			},
		},
		{
			name:  "other user is forbidden",
			actor: &entities.User{ID: 4},
			mockBehavior: func(m blogMocks) {
				m.comments.EXPECT().GetComment(mock.Anything, int64(3)).Return(comment, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "anonymous is forbidden",
			actor: nil,
			mockBehavior: func(m blogMocks) {
				m.comments.EXPECT().GetComment(mock.Anything, int64(3)).Return(comment, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "missing comment",
			actor: &entities.User{ID: 1, IsAdmin: true},
			mockBehavior: func(m blogMocks) {
				m.comments.EXPECT().GetComment(mock.Anything, int64(3)).Return(entities.Comment{}, entities.ErrCommentNotFound).Once()
			},
			wantErr: entities.ErrCommentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newBlogMocks(t)
			tc.mockBehavior(m)

			svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)

			err := svc.DeleteComment(context.Background(), tc.actor, 3)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBlogService_WarmUpCache(t *testing.T) {
	posts := []entities.Post{
		{ID: 3, Title: "c"},
		{ID: 2, Title: "b"},
	}

	t.Run("caches newest posts", func(t *testing.T) {
		m := newBlogMocks(t)
		m.posts.EXPECT().ListPosts(mock.Anything, 10, 0).Return(posts, nil).Once()
		m.cache.EXPECT().Set("post:3", mock.AnythingOfType("[]uint8")).Once()
		m.cache.EXPECT().Set("post:2", mock.AnythingOfType("[]uint8")).Once()

		svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)
		require.NoError(t, svc.WarmUpCache(context.Background(), 10))
	})

	t.Run("repo error", func(t *testing.T) {
		m := newBlogMocks(t)
		m.posts.EXPECT().ListPosts(mock.Anything, 10, 0).Return(nil, assert.AnError).Once()

		svc := service.NewBlogService(slog.New(slog.NewTextHandler(io.Discard, nil)), m.posts, m.comments, m.cache)
		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 10), assert.AnError)
	})
}
