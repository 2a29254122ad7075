package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/service"
	mocks "github.com/SergeyBogomolovv/fullstack-web-apps/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/fullstack-web-apps/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type orderService interface {
	PlaceOrder(ctx context.Context, o entities.NewOrder) (entities.Order, error)
	CancelOrder(ctx context.Context, id int64) error
	UpdateShipping(ctx context.Context, id int64, shipping entities.ShippingMethod, address string) (entities.Order, error)
	SweepShipped(ctx context.Context) (int64, error)
	TrackOrder(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	OrderHistory(ctx context.Context, id int64) ([]entities.HistoryEntry, error)
}

func newOrderService(t *testing.T, orderRepo *mocks.MockOrderRepo) orderService {
	t.Helper()

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, tx, orderRepo, service.OrderConfig{
		ShipAfter: 5 * time.Minute,
		Now:       func() time.Time { return fixedNow },
	})
}

func TestOrderService_PlaceOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")
	newOrder := entities.NewOrder{
		Product:  "Matte Black Aviator",
		FromName: "Jane",
		Address:  "1 Main St",
		Quantity: 2,
		Shipping: entities.ShippingGround,
	}

	testCases := []struct {
		name         string
		order        entities.NewOrder
		mockBehavior MockBehavior
		wantErr      error
		wantCost     string
	}{
		{
			name:  "OK",
			order: newOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Status == entities.StatusPlaced &&
							o.Cost.Equal(decimal.RequireFromString("100")) &&
							o.CreatedAt.Equal(fixedNow)
					})).
					Return(7, nil).Once()
				orderRepo.EXPECT().
					AddHistory(mock.Anything, entities.HistoryEntry{
						OrderID:   7,
						Shipping:  entities.ShippingGround,
						Address:   "1 Main St",
						UpdatedAt: fixedNow,
					}).
					Return(nil).Once()
			},
			wantCost: "100.00",
		},
		{
			name: "unknown product",
			order: entities.NewOrder{
				Product:  "Monocle",
				Quantity: 1,
				Shipping: entities.ShippingGround,
			},
			mockBehavior: func(_ *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrUnknownProduct,
		},
		{
			name:  "CreateOrder fails",
			order: newOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(0, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:  "AddHistory fails",
			order: newOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(7, nil).Once()
				orderRepo.EXPECT().AddHistory(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orderRepo)

			svc := newOrderService(t, orderRepo)

			got, err := svc.PlaceOrder(context.Background(), tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, entities.StatusPlaced, got.Status)
			assert.Equal(t, tc.wantCost, got.Cost.StringFixed(2))
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().CancelOrder(mock.Anything, int64(1)).Return(true, nil).Once()
			},
		},
		{
			name: "already cancelled",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().CancelOrder(mock.Anything, int64(1)).Return(false, nil).Once()
				orderRepo.EXPECT().OrderExists(mock.Anything, int64(1)).Return(true, nil).Once()
			},
			wantErr: entities.ErrOrderIneligible,
		},
		{
			name: "not found",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().CancelOrder(mock.Anything, int64(1)).Return(false, nil).Once()
				orderRepo.EXPECT().OrderExists(mock.Anything, int64(1)).Return(false, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "db error",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().CancelOrder(mock.Anything, int64(1)).Return(false, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orderRepo)

			svc := newOrderService(t, orderRepo)

			err := svc.CancelOrder(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_UpdateShipping(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	updated := entities.Order{
		ID:       3,
		Address:  "2 Side St",
		Shipping: entities.ShippingExpedited,
		Status:   entities.StatusShipped,
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().
					UpdateShipping(mock.Anything, int64(3), entities.ShippingExpedited, "2 Side St").
					Return(true, nil).Once()
				orderRepo.EXPECT().
					AddHistory(mock.Anything, entities.HistoryEntry{
						OrderID:   3,
						Shipping:  entities.ShippingExpedited,
						Address:   "2 Side St",
						UpdatedAt: fixedNow,
					}).
					Return(nil).Once()
				orderRepo.EXPECT().GetOrder(mock.Anything, int64(3)).Return(updated, nil).Once()
			},
			want: updated,
		},
		{
			name: "cancelled order",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().
					UpdateShipping(mock.Anything, int64(3), mock.Anything, mock.Anything).
					Return(false, nil).Once()
				orderRepo.EXPECT().OrderExists(mock.Anything, int64(3)).Return(true, nil).Once()
			},
			wantErr: entities.ErrOrderIneligible,
		},
		{
			name: "not found",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().
					UpdateShipping(mock.Anything, int64(3), mock.Anything, mock.Anything).
					Return(false, nil).Once()
				orderRepo.EXPECT().OrderExists(mock.Anything, int64(3)).Return(false, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orderRepo)

			svc := newOrderService(t, orderRepo)

			got, err := svc.UpdateShipping(context.Background(), 3, entities.ShippingExpedited, "2 Side St")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_SweepShipped(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().
		ShipPlacedBefore(mock.Anything, fixedNow.Add(-5*time.Minute)).
		Return(2, nil).Once()

	svc := newOrderService(t, orderRepo)

	n, err := svc.SweepShipped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestOrderService_TrackOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	order := entities.Order{ID: 1, Status: entities.StatusShipped}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name: "sweeps before reading",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().ShipPlacedBefore(mock.Anything, mock.Anything).Return(1, nil).Once()
				orderRepo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(order, nil).Once()
			},
			want: order,
		},
		{
			name: "sweep failure does not block the read",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().ShipPlacedBefore(mock.Anything, mock.Anything).Return(0, errors.New("db error")).Once()
				orderRepo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(order, nil).Once()
			},
			want: order,
		},
		{
			name: "not found",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().ShipPlacedBefore(mock.Anything, mock.Anything).Return(0, nil).Once()
				orderRepo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orderRepo)

			svc := newOrderService(t, orderRepo)

			got, err := svc.TrackOrder(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	orders := []entities.Order{{ID: 1}, {ID: 2}}
	filter := entities.OrderFilter{Query: "jan", Status: entities.StatusShipped}

	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().ShipPlacedBefore(mock.Anything, mock.Anything).Return(0, nil).Once()
	orderRepo.EXPECT().ListOrders(mock.Anything, filter).Return(orders, nil).Once()

	svc := newOrderService(t, orderRepo)

	got, err := svc.ListOrders(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_OrderHistory(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	history := []entities.HistoryEntry{{OrderID: 1, Address: "b"}, {OrderID: 1, Address: "a"}}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
		want         []entities.HistoryEntry
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().History(mock.Anything, int64(1), entities.HistoryLimit).Return(history, nil).Once()
			},
			want: history,
		},
		{
			name: "existing order without history",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().History(mock.Anything, int64(1), entities.HistoryLimit).Return(nil, nil).Once()
				orderRepo.EXPECT().OrderExists(mock.Anything, int64(1)).Return(true, nil).Once()
			},
			want: []entities.HistoryEntry{},
		},
		{
			name: "not found",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().History(mock.Anything, int64(1), entities.HistoryLimit).Return(nil, nil).Once()
				orderRepo.EXPECT().OrderExists(mock.Anything, int64(1)).Return(false, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orderRepo)

			svc := newOrderService(t, orderRepo)

			got, err := svc.OrderHistory(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
