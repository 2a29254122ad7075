package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPlaced  OrderStatus = "Placed"
	StatusShipped OrderStatus = "Shipped"
	// StatusDelivered is part of the stored enumeration, but no transition leads to it.
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// MutableStatuses lists the statuses in which an order may still be
// cancelled or have its shipping details changed.
var MutableStatuses = []OrderStatus{StatusPlaced, StatusShipped}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Mutable() bool {
	return s == StatusPlaced || s == StatusShipped
}

type Order struct {
	ID        int64
	FromName  string
	Address   string
	Product   string
	Quantity  int
	Shipping  ShippingMethod
	Cost      decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

// NewOrder is a validated order request before the cost is computed.
type NewOrder struct {
	Product  string
	FromName string
	Address  string
	Quantity int
	Shipping ShippingMethod
}

type HistoryEntry struct {
	OrderID   int64
	Shipping  ShippingMethod
	Address   string
	UpdatedAt time.Time
}

// HistoryLimit caps how many history entries are returned for an order.
const HistoryLimit = 5

// OrderFilter narrows the admin order listing. Zero values match everything.
type OrderFilter struct {
	Query  string
	Status OrderStatus
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderIneligible = errors.New("order status does not allow this change")
)
