package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             int64           `db:"id"`
	FromName       string          `db:"from_name"`
	Address        string          `db:"address"`
	ProductName    string          `db:"product_name"`
	Quantity       int             `db:"quantity"`
	ShippingMethod string          `db:"shipping_method"`
	OrderCost      decimal.Decimal `db:"order_cost"`
	Status         string          `db:"status"`
	OrderDate      time.Time       `db:"order_date"`
}

type HistoryEntry struct {
	OrderID            int64     `db:"order_id"`
	ShippingMethodUsed string    `db:"shipping_method_used"`
	DeliveryAddress    string    `db:"delivery_address"`
	UpdateTime         time.Time `db:"update_time"`
}

type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
}

type Post struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	BlogText   string    `db:"blog_text"`
	AuthorID   int64     `db:"author_id"`
	AuthorName string    `db:"author_name"`
	DatePosted time.Time `db:"date_posted"`
}

type Comment struct {
	ID            int64          `db:"id"`
	PostID        int64          `db:"post_id"`
	UserID        sql.NullInt64  `db:"user_id"`
	GuestName     sql.NullString `db:"guest_name"`
	CommenterName string         `db:"commenter_name"`
	Content       string         `db:"content"`
	TimeMade      time.Time      `db:"time_made"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:        o.ID,
		FromName:  o.FromName,
		Address:   o.Address,
		Product:   o.ProductName,
		Quantity:  o.Quantity,
		Shipping:  entities.ShippingMethod(o.ShippingMethod),
		Cost:      o.OrderCost,
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.OrderDate,
	}
}

func HistoryEntryToEntity(h HistoryEntry) entities.HistoryEntry {
	return entities.HistoryEntry{
		OrderID:   h.OrderID,
		Shipping:  entities.ShippingMethod(h.ShippingMethodUsed),
		Address:   h.DeliveryAddress,
		UpdatedAt: h.UpdateTime,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
	}
}

func PostToEntity(p Post) entities.Post {
	return entities.Post{
		ID:         p.ID,
		Title:      p.Title,
		Text:       p.BlogText,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		PostedAt:   p.DatePosted,
	}
}

func CommentToEntity(c Comment) entities.Comment {
	comment := entities.Comment{
		ID:            c.ID,
		PostID:        c.PostID,
		GuestName:     c.GuestName.String,
		CommenterName: c.CommenterName,
		Content:       c.Content,
		CreatedAt:     c.TimeMade,
	}
	if c.UserID.Valid {
		id := c.UserID.Int64
		comment.UserID = &id
	}
	return comment
}
