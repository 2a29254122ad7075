package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "from_name", "address", "product_name", "quantity",
	"shipping_method", "order_cost", "status", "order_date",
}

type orderRepo struct {
	pg
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{pg: newPG(db)}
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("from_name", "address", "product_name", "quantity",
			"shipping_method", "order_cost", "status", "order_date").
		Values(o.FromName, o.Address, o.Product, o.Quantity,
			string(o.Shipping), o.Cost, string(o.Status), o.CreatedAt).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (r *orderRepo) AddHistory(ctx context.Context, h entities.HistoryEntry) error {
	query, args := r.qb.Insert("order_histories").
		Columns("order_id", "shipping_method_used", "delivery_address", "update_time").
		Values(h.OrderID, string(h.Shipping), h.Address, h.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrder(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *orderRepo) OrderExists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.exists(ctx, "orders", sq.Eq{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check order: %w", err)
	}
	return ok, nil
}

func (r *orderRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")
	if filter.Query != "" {
		q = q.Where(sq.ILike{"from_name": "%" + filter.Query + "%"})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	query, args := q.OrderBy("id ASC").MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, o := range rows {
		orders = append(orders, OrderToEntity(o))
	}
	return orders, nil
}

// UpdateShipping changes shipping details of an order that is still mutable.
// It reports false when no row matched.
func (r *orderRepo) UpdateShipping(ctx context.Context, id int64, shipping entities.ShippingMethod, address string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("shipping_method", string(shipping)).
		Set("address", address).
		Where(sq.Eq{"id": id, "status": mutableStatuses()}).
		MustSql()

	ok, err := r.affected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update shipping: %w", err)
	}
	return ok, nil
}

// CancelOrder cancels a mutable order. It reports false when no row matched.
func (r *orderRepo) CancelOrder(ctx context.Context, id int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusCancelled)).
		Where(sq.Eq{"id": id, "status": mutableStatuses()}).
		MustSql()

	ok, err := r.affected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}
	return ok, nil
}

// ShipPlacedBefore moves every Placed order created before cutoff to Shipped.
func (r *orderRepo) ShipPlacedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusShipped)).
		Where(sq.Eq{"status": string(entities.StatusPlaced)}).
		Where(sq.Lt{"order_date": cutoff}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to ship orders: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to ship orders: %w", err)
	}
	return n, nil
}

func (r *orderRepo) History(ctx context.Context, orderID int64, limit int) ([]entities.HistoryEntry, error) {
	query, args := r.qb.Select("order_id", "shipping_method_used", "delivery_address", "update_time").
		From("order_histories").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("update_time DESC", "id DESC").
		Limit(uint64(limit)).
		MustSql()

	var rows []HistoryEntry
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select history: %w", err)
	}

	history := make([]entities.HistoryEntry, 0, len(rows))
	for _, h := range rows {
		history = append(history, HistoryEntryToEntity(h))
	}
	return history, nil
}

func mutableStatuses() []string {
	statuses := make([]string, 0, len(entities.MutableStatuses))
	for _, s := range entities.MutableStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}
