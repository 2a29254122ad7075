package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
)

type PostRepo interface {
	CountPosts(ctx context.Context) (int, error)
	ListPosts(ctx context.Context, limit, offset int) ([]entities.Post, error)
	GetPost(ctx context.Context, id int64) (entities.Post, error)
	CreatePost(ctx context.Context, p entities.Post) (int64, error)
	UpdatePost(ctx context.Context, id int64, title, text string) (bool, error)
	DeletePost(ctx context.Context, id int64) (bool, error)
}

type CommentRepo interface {
	AddComment(ctx context.Context, c entities.Comment) (int64, error)
	CommentsForPost(ctx context.Context, postID int64) ([]entities.Comment, error)
	GetComment(ctx context.Context, id int64) (entities.Comment, error)
	DeleteComment(ctx context.Context, id int64) (bool, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type blogService struct {
	logger   *slog.Logger
	posts    PostRepo
	comments CommentRepo
	cache    Cache
	now      func() time.Time
}

func NewBlogService(logger *slog.Logger, posts PostRepo, comments CommentRepo, cache Cache) *blogService {
	return &blogService{
		logger:   logger.With(slog.String("service", "blog")),
		posts:    posts,
		comments: comments,
		cache:    cache,
		now:      time.Now,
	}
}

func (s *blogService) RecentPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	return s.posts.ListPosts(ctx, limit, 0)
}

func (s *blogService) ListPosts(ctx context.Context, page, limit int) (entities.PostPage, error) {
	if page < 1 {
		page = 1
	}

	posts, err := s.posts.ListPosts(ctx, limit, (page-1)*limit)
	if err != nil {
		return entities.PostPage{}, err
	}
	total, err := s.posts.CountPosts(ctx)
	if err != nil {
		return entities.PostPage{}, err
	}

	return entities.PostPage{Posts: posts, Page: page, Limit: limit, Total: total}, nil
}

// GetPost serves posts from the cache when possible. Edits and deletions
// evict the cached copy, and so does an entry that fails to decode.
func (s *blogService) GetPost(ctx context.Context, id int64) (entities.Post, error) {
	key := postCacheKey(id)
	if data, ok := s.cache.Get(key); ok {
		var post entities.Post
		err := post.Unmarshal(data)
		if err == nil {
			postCacheRequests.WithLabelValues("hit").Inc()
			return post, nil
		}
		s.logger.Error("failed to unmarshal post", slog.Int64("post_id", id), slog.Any("error", err))
		s.cache.Delete(key)
	}
	postCacheRequests.WithLabelValues("miss").Inc()

	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return entities.Post{}, err
	}

	data, err := post.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal post", slog.Int64("post_id", id), slog.Any("error", err))
		return post, nil
	}
	s.cache.Set(key, data)
	return post, nil
}

// WarmUpCache loads the newest count posts into the post cache.
func (s *blogService) WarmUpCache(ctx context.Context, count int) error {
	posts, err := s.posts.ListPosts(ctx, count, 0)
	if err != nil {
		return err
	}

	for _, post := range posts {
		data, err := post.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal post", slog.Int64("post_id", post.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(postCacheKey(post.ID), data)
	}

	s.logger.Info("cache warmed up", slog.Int("count", len(posts)))
	return nil
}

func (s *blogService) CreatePost(ctx context.Context, author entities.User, title, text string) (int64, error) {
	id, err := s.posts.CreatePost(ctx, entities.Post{
		Title:    title,
		Text:     text,
		AuthorID: author.ID,
		PostedAt: s.now().UTC(),
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("post created", slog.Int64("post_id", id), slog.Int64("author_id", author.ID))
	return id, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id int64, title, text string) error {
	ok, err := s.posts.UpdatePost(ctx, id, title, text)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrPostNotFound
	}
	s.cache.Delete(postCacheKey(id))
	return nil
}

func (s *blogService) DeletePost(ctx context.Context, id int64) error {
	ok, err := s.posts.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrPostNotFound
	}
	s.cache.Delete(postCacheKey(id))

	s.logger.Info("post deleted", slog.Int64("post_id", id))
	return nil
}

func (s *blogService) Comments(ctx context.Context, postID int64) ([]entities.Comment, error) {
	return s.comments.CommentsForPost(ctx, postID)
}

// AddComment stores the comment and returns it as it will be displayed.
func (s *blogService) AddComment(ctx context.Context, c entities.Comment) (entities.Comment, error) {
	c.CreatedAt = s.now().UTC()

	id, err := s.comments.AddComment(ctx, c)
	if err != nil {
		return entities.Comment{}, err
	}
	return s.comments.GetComment(ctx, id)
}

// DeleteComment removes a comment on behalf of actor, who must be an admin
// or the comment's author.
func (s *blogService) DeleteComment(ctx context.Context, actor *entities.User, id int64) error {
	comment, err := s.comments.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if !comment.DeletableBy(actor) {
		return entities.ErrForbidden
	}

	ok, err := s.comments.DeleteComment(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrCommentNotFound
	}
	return nil
}

func postCacheKey(id int64) string {
	return "post:" + strconv.FormatInt(id, 10)
}
