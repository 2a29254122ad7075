package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsAdmin      bool
}

type Post struct {
	ID         int64
	Title      string
	Text       string
	AuthorID   int64
	AuthorName string
	PostedAt   time.Time
}

// PreviewLength is the number of characters shown in post listings.
const PreviewLength = 300

func (p Post) Preview() string {
	runes := []rune(p.Text)
	if len(runes) <= PreviewLength {
		return p.Text
	}
	return string(runes[:PreviewLength])
}

type PostPage struct {
	Posts []Post
	Page  int
	Limit int
	Total int
}

func (p PostPage) HasNext() bool {
	return p.Page*p.Limit < p.Total
}

type Comment struct {
	ID     int64
	PostID int64
	// UserID is nil for guest comments.
	UserID        *int64
	GuestName     string
	CommenterName string
	Content       string
	CreatedAt     time.Time
}

// DeletableBy reports whether u may delete the comment: admins always,
// otherwise only the registered author.
func (c Comment) DeletableBy(u *User) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin {
		return true
	}
	return c.UserID != nil && *c.UserID == u.ID
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidPost        = errors.New("invalid cached post")
)

func (p *Post) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Post) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(p); err != nil {
		return errors.Join(ErrInvalidPost, err)
	}
	return nil
}
