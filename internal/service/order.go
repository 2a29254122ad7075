package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/trm"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (int64, error)
	AddHistory(ctx context.Context, h entities.HistoryEntry) error
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	OrderExists(ctx context.Context, id int64) (bool, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	// Both report false when the order is missing or no longer mutable.
	UpdateShipping(ctx context.Context, id int64, shipping entities.ShippingMethod, address string) (bool, error)
	CancelOrder(ctx context.Context, id int64) (bool, error)

	ShipPlacedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	History(ctx context.Context, orderID int64, limit int) ([]entities.HistoryEntry, error)
}

type OrderConfig struct {
	Catalog entities.Catalog
	// ShipAfter is how long an order stays Placed before it counts as Shipped.
	ShipAfter time.Duration
	Now       func() time.Time
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo

	catalog   entities.Catalog
	shipAfter time.Duration
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cfg OrderConfig) *orderService {
	if cfg.Catalog == nil {
		cfg.Catalog = entities.DefaultCatalog()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   cfg.Catalog,
		shipAfter: cfg.ShipAfter,
		now:       cfg.Now,
	}
}

// PlaceOrder prices the order from the catalog and stores it together with
// its first history entry.
func (s *orderService) PlaceOrder(ctx context.Context, o entities.NewOrder) (entities.Order, error) {
	cost, err := s.catalog.Cost(o.Product, o.Quantity)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		FromName:  o.FromName,
		Address:   o.Address,
		Product:   o.Product,
		Quantity:  o.Quantity,
		Shipping:  o.Shipping,
		Cost:      cost,
		Status:    entities.StatusPlaced,
		CreatedAt: s.now().UTC(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repo.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		order.ID = id

		return s.repo.AddHistory(ctx, entities.HistoryEntry{
			OrderID:   id,
			Shipping:  order.Shipping,
			Address:   order.Address,
			UpdatedAt: order.CreatedAt,
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersPlaced.Inc()
	s.logger.Debug("order placed", slog.Int64("order_id", order.ID), slog.String("cost", order.Cost.StringFixed(2)))
	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, id int64) error {
	ok, err := s.repo.CancelOrder(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return s.rejection(ctx, id)
	}

	ordersCancelled.Inc()
	s.logger.Debug("order cancelled", slog.Int64("order_id", id))
	return nil
}

// UpdateShipping changes the shipping method and address of a mutable order,
// records a history entry and returns the updated order.
func (s *orderService) UpdateShipping(ctx context.Context, id int64, shipping entities.ShippingMethod, address string) (entities.Order, error) {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.repo.UpdateShipping(ctx, id, shipping, address)
		if err != nil {
			return err
		}
		if !ok {
			return s.rejection(ctx, id)
		}

		return s.repo.AddHistory(ctx, entities.HistoryEntry{
			OrderID:   id,
			Shipping:  shipping,
			Address:   address,
			UpdatedAt: s.now().UTC(),
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	shippingUpdates.Inc()
	s.logger.Debug("order shipping updated", slog.Int64("order_id", id))
	return s.repo.GetOrder(ctx, id)
}

// SweepShipped marks every Placed order older than ShipAfter as Shipped.
// Running it repeatedly is harmless.
func (s *orderService) SweepShipped(ctx context.Context) (int64, error) {
	n, err := s.repo.ShipPlacedBefore(ctx, s.now().UTC().Add(-s.shipAfter))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		ordersShipped.Add(float64(n))
		s.logger.Debug("orders shipped", slog.Int64("count", n))
	}
	return n, nil
}

// TrackOrder returns the order as seen after a status sweep.
func (s *orderService) TrackOrder(ctx context.Context, id int64) (entities.Order, error) {
	s.sweep(ctx)
	return s.repo.GetOrder(ctx, id)
}

// ListOrders returns the filtered orders as seen after a status sweep.
func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	s.sweep(ctx)
	return s.repo.ListOrders(ctx, filter)
}

// OrderHistory returns up to HistoryLimit entries, newest first.
func (s *orderService) OrderHistory(ctx context.Context, id int64) ([]entities.HistoryEntry, error) {
	history, err := s.repo.History(ctx, id, entities.HistoryLimit)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		return history, nil
	}

	exists, err := s.repo.OrderExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, entities.ErrOrderNotFound
	}
	return []entities.HistoryEntry{}, nil
}

// sweep runs before status-sensitive reads. A failure only leaves statuses
// stale until the next sweep, so the read goes ahead.
func (s *orderService) sweep(ctx context.Context) {
	if _, err := s.SweepShipped(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to sweep order statuses", slog.Any("error", err))
	}
}

// rejection tells a missing order apart from one whose status forbids the change.
func (s *orderService) rejection(ctx context.Context, id int64) error {
	exists, err := s.repo.OrderExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return entities.ErrOrderIneligible
}
