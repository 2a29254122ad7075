package handler

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
)

// CreateOrderRequest is the body of POST /api/order and the payload of
// order intake messages.
type CreateOrderRequest struct {
	Product  string `json:"product" validate:"required,product" example:"Matte Black Aviator"`
	FromName string `json:"from_name" validate:"required" example:"Jane Doe"`
	// Quantity is checked by hand so that strings and fractions get a
	// proper message instead of a decoding failure.
	Quantity any    `json:"quantity" swaggertype:"integer" example:"2"`
	Address  string `json:"address" validate:"required" example:"1 Main St, Springfield"`
	Shipping string `json:"shipping" validate:"required,shipping" enums:"Flat Rate,Ground,Expedited"`
}

type CreateOrderResponse struct {
	Status  string `json:"status" example:"success"`
	OrderID int64  `json:"order_id" example:"42"`
}

type CancelOrderRequest struct {
	OrderID json.Number `json:"order_id" swaggertype:"integer" example:"42"`
}

// UpdateShippingForm is the form posted from the tracking page.
type UpdateShippingForm struct {
	ID       int64  `validate:"required"`
	Shipping string `validate:"required,shipping"`
	Address  string `validate:"required,max=1023"`
}

type Order struct {
	ID        int64     `json:"id" example:"42"`
	Status    string    `json:"status" enums:"Placed,Shipped,Delivered,Cancelled"`
	Cost      string    `json:"cost" example:"100.00"`
	From      string    `json:"from" example:"Jane Doe"`
	Address   string    `json:"address" example:"1 Main St, Springfield"`
	Product   string    `json:"product" example:"Matte Black Aviator"`
	Quantity  int       `json:"quantity" example:"2"`
	Shipping  string    `json:"shipping" enums:"Flat Rate,Ground,Expedited"`
	OrderDate time.Time `json:"order_date"`
}

type HistoryEntry struct {
	UpdateTime         time.Time `json:"update_time"`
	ShippingMethodUsed string    `json:"shipping_method_used" enums:"Flat Rate,Ground,Expedited"`
	DeliveryAddress    string    `json:"delivery_address"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:        o.ID,
		Status:    string(o.Status),
		Cost:      o.Cost.StringFixed(2),
		From:      o.FromName,
		Address:   o.Address,
		Product:   o.Product,
		Quantity:  o.Quantity,
		Shipping:  string(o.Shipping),
		OrderDate: o.CreatedAt,
	}
}

func HistoryEntityToJSON(history []entities.HistoryEntry) []HistoryEntry {
	res := make([]HistoryEntry, 0, len(history))
	for _, h := range history {
		res = append(res, HistoryEntry{
			UpdateTime:         h.UpdatedAt,
			ShippingMethodUsed: string(h.Shipping),
			DeliveryAddress:    h.Address,
		})
	}
	return res
}

type PostRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Text  string `json:"blog_text" validate:"required"`
}

type PostResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type CommentRequest struct {
	PostID    int64  `json:"postId" validate:"required"`
	Content   string `json:"content" validate:"required"`
	GuestName string `json:"guest_name" validate:"max=64"`
}

type Comment struct {
	ID       int64     `json:"id"`
	PostID   int64     `json:"post_id"`
	UserID   *int64    `json:"user_id"`
	Username string    `json:"username"`
	Content  string    `json:"content"`
	TimeMade time.Time `json:"time_made"`
}

type CommentResponse struct {
	Status  string  `json:"status"`
	Comment Comment `json:"comment"`
}

func CommentEntityToJSON(c entities.Comment) Comment {
	return Comment{
		ID:       c.ID,
		PostID:   c.PostID,
		UserID:   c.UserID,
		Username: c.CommenterName,
		Content:  c.Content,
		TimeMade: c.CreatedAt,
	}
}

// RegisterForm is the form posted to /register.
type RegisterForm struct {
	Username        string `validate:"required,max=64"`
	Password        string `validate:"required,min=5"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}
