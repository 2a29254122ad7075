//go:build integration

package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo(t *testing.T) {
	truncate(t, blogDB, "users, posts, comments")
	r := repo.NewUserRepo(blogDB)
	ctx := context.Background()

	id, err := r.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, entities.ErrUsernameTaken)

	user, err := r.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.False(t, user.IsAdmin)

	_, err = r.UserByID(ctx, id+1)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	ok, err := r.EscalateToAdmin(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.EscalateToAdmin(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok, "second escalation is a no-op")

	user, err = r.UserByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestPostRepo(t *testing.T) {
	truncate(t, blogDB, "users, posts, comments")
	users := repo.NewUserRepo(blogDB)
	r := repo.NewPostRepo(blogDB)
	ctx := context.Background()

	authorID, err := users.CreateUser(ctx, "root", "hash")
	require.NoError(t, err)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		_, err := r.CreatePost(ctx, entities.Post{
			Title:    title,
			Text:     "text of " + title,
			AuthorID: authorID,
			PostedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	_, err = r.CreatePost(ctx, entities.Post{Title: "orphan", Text: "x", AuthorID: authorID + 100, PostedAt: base})
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	count, err := r.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	page, err := r.ListPosts(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Title)
	assert.Equal(t, "second", page[1].Title)
	assert.Equal(t, "root", page[0].AuthorName)

	page, err = r.ListPosts(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)

	post, err := r.GetPost(ctx, page[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "text of first", post.Text)

	ok, err := r.UpdatePost(ctx, post.ID, "renamed", "new text")
	require.NoError(t, err)
	assert.True(t, ok)

	post, err = r.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", post.Title)

	ok, err = r.UpdatePost(ctx, post.ID+100, "t", "x")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.DeletePost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, entities.ErrPostNotFound)
}

func TestCommentRepo(t *testing.T) {
	truncate(t, blogDB, "users, posts, comments")
	users := repo.NewUserRepo(blogDB)
	posts := repo.NewPostRepo(blogDB)
	r := repo.NewCommentRepo(blogDB)
	ctx := context.Background()

	userID, err := users.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	postID, err := posts.CreatePost(ctx, entities.Post{Title: "t", Text: "x", AuthorID: userID, PostedAt: time.Now()})
	require.NoError(t, err)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ownID, err := r.AddComment(ctx, entities.Comment{PostID: postID, UserID: &userID, Content: "mine", CreatedAt: base})
	require.NoError(t, err)
	guestID, err := r.AddComment(ctx, entities.Comment{PostID: postID, GuestName: "visitor", Content: "hello", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	anonID, err := r.AddComment(ctx, entities.Comment{PostID: postID, Content: "anon", CreatedAt: base.Add(2 * time.Minute)})
	require.NoError(t, err)

	_, err = r.AddComment(ctx, entities.Comment{PostID: postID + 100, Content: "lost", CreatedAt: base})
	assert.ErrorIs(t, err, entities.ErrPostNotFound)

	comments, err := r.CommentsForPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, ownID, comments[0].ID)
	assert.Equal(t, "alice", comments[0].CommenterName)
	require.NotNil(t, comments[0].UserID)
	assert.Equal(t, userID, *comments[0].UserID)
	assert.Equal(t, guestID, comments[1].ID)
	assert.Equal(t, "visitor", comments[1].CommenterName)
	assert.Nil(t, comments[1].UserID)
	assert.Equal(t, anonID, comments[2].ID)
	assert.Empty(t, comments[2].CommenterName)

	ok, err := r.DeleteComment(ctx, guestID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = r.GetComment(ctx, guestID)
	assert.ErrorIs(t, err, entities.ErrCommentNotFound)

	_, err = posts.DeletePost(ctx, postID)
	require.NoError(t, err)
	_, err = r.GetComment(ctx, ownID)
	assert.ErrorIs(t, err, entities.ErrCommentNotFound, "comments go with their post")
}
