package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/middleware"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/views"
	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	recentPostsLimit = 5
	postsPerPage     = 10
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (entities.User, error)
	Login(ctx context.Context, username, password string) (entities.User, error)
	UserByID(ctx context.Context, id int64) (entities.User, error)
	EscalateToAdmin(ctx context.Context, id int64) (bool, error)
}

type BlogService interface {
	RecentPosts(ctx context.Context, limit int) ([]entities.Post, error)
	ListPosts(ctx context.Context, page, limit int) (entities.PostPage, error)
	GetPost(ctx context.Context, id int64) (entities.Post, error)
	CreatePost(ctx context.Context, author entities.User, title, text string) (int64, error)
	UpdatePost(ctx context.Context, id int64, title, text string) error
	DeletePost(ctx context.Context, id int64) error
	Comments(ctx context.Context, postID int64) ([]entities.Comment, error)
	AddComment(ctx context.Context, c entities.Comment) (entities.Comment, error)
	DeleteComment(ctx context.Context, actor *entities.User, id int64) error
}

type BlogOptions struct {
	// AdminSecretPath enables /secret-admin-key/{AdminSecretPath} when set.
	AdminSecretPath string
	SessionMaxAge   time.Duration
}

type BlogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     AuthService
	blog     BlogService
	opts     BlogOptions
}

func NewBlogHandler(logger *slog.Logger, auth AuthService, blog BlogService, opts BlogOptions) *BlogHandler {
	return &BlogHandler{
		logger:   logger.With(slog.String("handler", "blog")),
		validate: validator.New(),
		auth:     auth,
		blog:     blog,
		opts:     opts,
	}
}

func (h *BlogHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(h.logger, h.auth))

		r.Get("/", h.Home)
		r.Get("/about", h.Home)
		r.Get("/posts", h.Posts)
		r.Get("/posts/{id}", h.Post)

		r.Get("/login", h.LoginPage)
		r.Post("/login", h.Login)
		r.Get("/register", h.RegisterPage)
		r.Post("/register", h.Register)
		r.Get("/logout", h.Logout)

		if h.opts.AdminSecretPath != "" {
			r.Get("/secret-admin-key/"+h.opts.AdminSecretPath, h.EscalateToAdmin)
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(h.forbiddenPage))
			r.Get("/posts", h.AdminPosts)
			r.Get("/create", h.NewPostForm)
			r.Get("/edit/{id}", h.EditPostForm)
		})

		r.Route("/api", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(h.forbiddenJSON))
				r.Post("/posts", h.CreatePost)
				r.Put("/posts/{id}", h.UpdatePost)
				r.Delete("/posts/{id}", h.DeletePost)
			})
			r.Post("/comments", h.AddComment)
			r.Delete("/comments/{id}", h.DeleteComment)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusNotFound, "error.html", views.Error{
			Title:   "Not found",
			Message: "The requested resource was not found.",
		})
	})
}

type homeView struct {
	Viewer *entities.User
	Posts  []entities.Post
}

type postsView struct {
	Viewer *entities.User
	Page   entities.PostPage
	Admin  bool
}

type postView struct {
	Viewer   *entities.User
	Post     entities.Post
	Comments []entities.Comment
}

type postFormView struct {
	Viewer *entities.User
	Post   *entities.Post
}

type loginView struct {
	Viewer   *entities.User
	Username string
	Error    string
	Success  string
}

type registerView struct {
	Viewer   *entities.User
	Username string
	Error    string
}

func (h *BlogHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.blog.RecentPosts(ctx, recentPostsLimit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load recent posts", slog.Any("error", err))
		h.renderServerError(w, r, "Failed to load homepage.")
		return
	}

	h.render(w, r, http.StatusOK, "home.html", homeView{Viewer: middleware.UserFromContext(ctx), Posts: posts})
}

func (h *BlogHandler) Posts(w http.ResponseWriter, r *http.Request) {
	h.renderPostList(w, r, false)
}

func (h *BlogHandler) AdminPosts(w http.ResponseWriter, r *http.Request) {
	h.renderPostList(w, r, true)
}

func (h *BlogHandler) renderPostList(w http.ResponseWriter, r *http.Request, admin bool) {
	ctx := r.Context()

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	posts, err := h.blog.ListPosts(ctx, page, postsPerPage)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list posts", slog.Any("error", err), slog.Int("page", page))
		h.renderServerError(w, r, "Server error while fetching posts list.")
		return
	}

	h.render(w, r, http.StatusOK, "posts.html", postsView{
		Viewer: middleware.UserFromContext(ctx),
		Page:   posts,
		Admin:  admin,
	})
}

func (h *BlogHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	comments, err := h.blog.Comments(ctx, post.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load comments", slog.Any("error", err), slog.Int64("post_id", post.ID))
		h.renderServerError(w, r, "Server error while fetching post.")
		return
	}

	h.render(w, r, http.StatusOK, "post.html", postView{
		Viewer:   middleware.UserFromContext(ctx),
		Post:     post,
		Comments: comments,
	})
}

func (h *BlogHandler) NewPostForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "post_form.html", postFormView{Viewer: middleware.UserFromContext(r.Context())})
}

func (h *BlogHandler) EditPostForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, "post_form.html", postFormView{Viewer: middleware.UserFromContext(r.Context()), Post: &post})
}

// loadPost resolves the {id} URL parameter and renders the error page itself
// when it reports false.
func (h *BlogHandler) loadPost(w http.ResponseWriter, r *http.Request) (entities.Post, bool) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.render(w, r, http.StatusNotFound, "error.html", views.Error{Title: "Not found", Message: "Blog post not found."})
		return entities.Post{}, false
	}

	post, err := h.blog.GetPost(ctx, id)
	if errors.Is(err, entities.ErrPostNotFound) {
		h.render(w, r, http.StatusNotFound, "error.html", views.Error{Title: "Not found", Message: "Blog post not found."})
		return entities.Post{}, false
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get post", slog.Any("error", err), slog.Int64("post_id", id))
		h.renderServerError(w, r, "Server error while fetching post.")
		return entities.Post{}, false
	}
	return post, true
}

func (h *BlogHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	view := loginView{
		Viewer: middleware.UserFromContext(r.Context()),
		Error:  r.URL.Query().Get("error"),
	}
	if r.URL.Query().Get("promoted") == "true" {
		view.Success = "Account successfully promoted to Admin! Please log in again."
	}
	h.render(w, r, http.StatusOK, "login.html", view)
}

func (h *BlogHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "login.html", loginView{Error: "Invalid form submission."})
		return
	}
	username := r.PostForm.Get("username")

	user, err := h.auth.Login(ctx, username, r.PostForm.Get("password"))
	if errors.Is(err, entities.ErrInvalidCredentials) {
		h.render(w, r, http.StatusOK, "login.html", loginView{Username: username, Error: "Invalid username or password."})
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to log in", slog.Any("error", err))
		h.render(w, r, http.StatusInternalServerError, "login.html", loginView{Username: username, Error: "An internal server error occurred."})
		return
	}

	h.startSession(w, user)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *BlogHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", registerView{Viewer: middleware.UserFromContext(r.Context())})
}

// Register creates a regular user and signs them in.
func (h *BlogHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "register.html", registerView{Error: "Invalid form submission."})
		return
	}
	form := RegisterForm{
		Username:        r.PostForm.Get("username"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirm_password"),
	}

	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, http.StatusOK, "register.html", registerView{Username: form.Username, Error: registerMessage(err)})
		return
	}

	user, err := h.auth.Register(ctx, form.Username, form.Password)
	if errors.Is(err, entities.ErrUsernameTaken) {
		h.render(w, r, http.StatusOK, "register.html", registerView{Username: form.Username, Error: "Username already taken."})
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		h.render(w, r, http.StatusInternalServerError, "register.html", registerView{
			Username: form.Username,
			Error:    "An internal server error occurred during registration.",
		})
		return
	}

	h.startSession(w, user)
	http.Redirect(w, r, "/", http.StatusFound)
}

// registerMessage picks one message, checking presence before matching and
// matching before length.
func registerMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid form submission."
	}

	tags := make(map[string]bool, len(ve))
	for _, fe := range ve {
		tags[fe.Tag()] = true
	}
	switch {
	case tags["required"]:
		return "All fields are required."
	case tags["eqfield"]:
		return "Passwords do not match."
	case tags["min"]:
		return "Password must be at least 5 characters long."
	case tags["max"]:
		return "Username is too long."
	}
	return "Invalid form submission."
}

func (h *BlogHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSession(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// EscalateToAdmin promotes the signed-in user and forces a fresh login. A user
// already promoted by a concurrent request is sent to the admin area instead.
func (h *BlogHandler) EscalateToAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := middleware.UserFromContext(ctx)
	if user == nil {
		h.render(w, r, http.StatusForbidden, "error.html", views.Error{
			Title:   "Access denied",
			Message: "You must be logged in to use this feature.",
		})
		return
	}
	if user.IsAdmin {
		http.Redirect(w, r, "/admin/posts", http.StatusFound)
		return
	}

	ok, err := h.auth.EscalateToAdmin(ctx, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to escalate user", slog.Any("error", err), slog.Int64("user_id", user.ID))
		h.renderServerError(w, r, "Server error during escalation.")
		return
	}
	if !ok {
		// A concurrent request promoted the user first.
		http.Redirect(w, r, "/admin/posts", http.StatusFound)
		return
	}

	clearSession(w)
	http.Redirect(w, r, "/login?promoted=true", http.StatusFound)
}

func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PostRequest
	if err := utils.DecodeBody(r, &req); err != nil || h.validate.Struct(req) != nil {
		utils.WriteError(w, "Title and content are required.", http.StatusBadRequest)
		return
	}

	author := middleware.UserFromContext(ctx)
	id, err := h.blog.CreatePost(ctx, *author, req.Title, req.Text)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create post", slog.Any("error", err))
		utils.WriteError(w, "Failed to create post due to a server error.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PostResponse{Status: "success", ID: id}, http.StatusCreated)
}

func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "Post not found or no changes made.", http.StatusNotFound)
		return
	}

	var req PostRequest
	if err := utils.DecodeBody(r, &req); err != nil || h.validate.Struct(req) != nil {
		utils.WriteError(w, "Title and content are required.", http.StatusBadRequest)
		return
	}

	err = h.blog.UpdatePost(ctx, id, req.Title, req.Text)
	if errors.Is(err, entities.ErrPostNotFound) {
		utils.WriteError(w, "Post not found or no changes made.", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update post", slog.Any("error", err), slog.Int64("post_id", id))
		utils.WriteError(w, "Failed to update post due to a server error.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PostResponse{Status: "success", ID: id}, http.StatusOK)
}

func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	err = h.blog.DeletePost(ctx, id)
	switch {
	case errors.Is(err, entities.ErrPostNotFound):
		w.WriteHeader(http.StatusNotFound)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to delete post", slog.Any("error", err), slog.Int64("post_id", id))
		utils.WriteError(w, "Failed to delete post.", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// AddComment stores a comment from the signed-in user, or from a guest
// when nobody is signed in.
func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CommentRequest
	if err := utils.DecodeBody(r, &req); err != nil || h.validate.Struct(req) != nil {
		utils.WriteError(w, "Comment content and post ID are required.", http.StatusBadRequest)
		return
	}

	c := entities.Comment{PostID: req.PostID, Content: req.Content}
	if user := middleware.UserFromContext(ctx); user != nil {
		c.UserID = &user.ID
	} else {
		c.GuestName = req.GuestName
	}

	comment, err := h.blog.AddComment(ctx, c)
	if errors.Is(err, entities.ErrPostNotFound) {
		utils.WriteError(w, "Blog post not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add comment", slog.Any("error", err), slog.Int64("post_id", req.PostID))
		utils.WriteError(w, "Failed to add comment.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CommentResponse{Status: "success", Comment: CommentEntityToJSON(comment)}, http.StatusCreated)
}

func (h *BlogHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	err = h.blog.DeleteComment(ctx, middleware.UserFromContext(ctx), id)
	switch {
	case errors.Is(err, entities.ErrCommentNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to delete comment", slog.Any("error", err), slog.Int64("comment_id", id))
		utils.WriteError(w, "Failed to delete comment.", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *BlogHandler) startSession(w http.ResponseWriter, user entities.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    strconv.FormatInt(user.ID, 10),
		Path:     "/",
		MaxAge:   int(h.opts.SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (h *BlogHandler) forbiddenPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "error.html", views.Error{
		Title:   "Access denied",
		Message: "Admin privileges required.",
	})
}

func (h *BlogHandler) forbiddenJSON(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, "Admin privileges required.", http.StatusForbidden)
}

func (h *BlogHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := views.Blog.Render(w, status, page, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", slog.String("page", page), slog.Any("error", err))
		http.Error(w, fmt.Sprintf("failed to render %s", page), http.StatusInternalServerError)
	}
}

func (h *BlogHandler) renderServerError(w http.ResponseWriter, r *http.Request, message string) {
	h.render(w, r, http.StatusInternalServerError, "error.html", views.Error{Title: "Server error", Message: message})
}
