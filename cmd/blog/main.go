package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/app"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/config"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/handler"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/postgres"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/repo"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/service"
	"github.com/SergeyBogomolovv/fullstack-web-apps/migrations"
	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/cache"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New(config.AppBlog)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db, migrations.FS, migrations.BlogDir))

	userRepo := repo.NewUserRepo(db)
	postRepo := repo.NewPostRepo(db)
	commentRepo := repo.NewCommentRepo(db)
	postCache := cache.NewLRUCache(conf.Blog.PostCacheCapacity, conf.Blog.PostCacheTTL)

	authService := service.NewAuthService(logger, userRepo)
	blogService := service.NewBlogService(logger, postRepo, commentRepo, postCache)

	blogHandler := handler.NewBlogHandler(logger, authService, blogService, handler.BlogOptions{
		AdminSecretPath: conf.Blog.AdminSecretPath,
		SessionMaxAge:   conf.Blog.SessionMaxAge,
	})

	app := app.New(logger, conf)
	app.SetHTTPHandlers(blogHandler)
	app.SetStarters(postCache, cacheWarmUpAdapter{svc: blogService, count: conf.Blog.PostCacheCapacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
