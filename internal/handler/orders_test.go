package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/handler"
	mocks "github.com/SergeyBogomolovv/fullstack-web-apps/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrdersRouter(t *testing.T, svc *mocks.MockOrderService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrdersHandler(logger, svc, entities.DefaultCatalog(), "secret42")

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func serve(r http.Handler, req *http.Request) (*http.Response, string) {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	return res, string(body)
}

func TestOrdersHandler_PlaceOrder(t *testing.T) {
	placed := entities.Order{
		ID:       42,
		FromName: "Jane Doe!",
		Cost:     decimal.RequireFromString("100"),
		Status:   entities.StatusPlaced,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantErrors   []string
		wantCookie   string
	}{
		{
			name: "success",
			body: `{"product":"Matte Black Aviator","from_name":"Jane Doe!","quantity":2,"address":"1 Main St","shipping":"Ground"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, entities.NewOrder{
						Product:  "Matte Black Aviator",
						FromName: "Jane Doe!",
						Address:  "1 Main St",
						Quantity: 2,
						Shipping: entities.ShippingGround,
					}).
					Return(placed, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantCookie: "JaneDoe",
		},
		{
			name:         "array body",
			body:         `[1,2,3]`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantErrors:   []string{"Invalid JSON format or body is missing."},
		},
		{
			name:         "name too long",
			body:         `{"product":"Matte Black Aviator","from_name":"` + strings.Repeat("a", 64) + `","quantity":1,"address":"x","shipping":"Ground"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusRequestEntityTooLarge,
			wantErrors:   []string{"Payload Too Large: Name or Address is too long."},
		},
		{
			name:         "address too long",
			body:         `{"product":"Matte Black Aviator","from_name":"Jane","quantity":1,"address":"` + strings.Repeat("é", 1024) + `","shipping":"Ground"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusRequestEntityTooLarge,
			wantErrors:   []string{"Payload Too Large: Name or Address is too long."},
		},
		{
			name:         "every problem is reported",
			body:         `{"product":"Monocle","quantity":"2","address":"1 Main St","shipping":"Teleport"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantErrors: []string{
				"Unrecognized product.",
				"Missing required property: from_name.",
				"Invalid shipping method.",
				"Quantity must be a positive integer.",
			},
		},
		{
			name:         "fractional quantity",
			body:         `{"product":"Matte Black Aviator","from_name":"Jane","quantity":1.5,"address":"x","shipping":"Ground"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantErrors:   []string{"Quantity must be a positive integer."},
		},
		{
			name:         "missing quantity",
			body:         `{"product":"Matte Black Aviator","from_name":"Jane","address":"x","shipping":"Ground"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantErrors:   []string{"Missing required property: quantity.", "Quantity must be a positive integer."},
		},
		{
			name: "internal error",
			body: `{"product":"Matte Black Aviator","from_name":"Jane","quantity":1,"address":"x","shipping":"Ground"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantErrors: []string{"Internal database error placing order."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			res, body := serve(r, req)

			require.Equal(t, tc.wantStatus, res.StatusCode)

			var resp map[string]any
			require.NoError(t, json.Unmarshal([]byte(body), &resp))

			if tc.wantErrors != nil {
				assert.Equal(t, "error", resp["status"])
				var errs []string
				for _, e := range resp["errors"].([]any) {
					errs = append(errs, e.(string))
				}
				assert.ElementsMatch(t, tc.wantErrors, errs)
				return
			}

			assert.Equal(t, "success", resp["status"])
			assert.Equal(t, float64(42), resp["order_id"])

			cookies := res.Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "customer_name", cookies[0].Name)
			assert.Equal(t, tc.wantCookie, cookies[0].Value)
			assert.Equal(t, 3600, cookies[0].MaxAge)
		})
	}
}

func TestOrdersHandler_CancelOrder(t *testing.T) {
	testCases := []struct {
		name         string
		contentType  string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:        "json body",
			contentType: "application/json",
			body:        `{"order_id":7}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:        "json string id",
			contentType: "application/json",
			body:        `{"order_id":"7"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:        "form body",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"order_id": {"7"}}.Encode(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "malformed id",
			contentType:  "application/json",
			body:         `{"order_id":"abc"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:        "ineligible order",
			contentType: "application/json",
			body:        `{"order_id":7}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(entities.ErrOrderIneligible).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "absent order",
			contentType: "application/json",
			body:        `{"order_id":7}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, int64(7)).Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/cancel_order", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			res, _ := serve(r, req)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestOrdersHandler_UpdateShipping(t *testing.T) {
	updated := entities.Order{
		ID:        3,
		FromName:  "Jane",
		Product:   "Silver Metal Square",
		Quantity:  1,
		Address:   "2 Side St",
		Shipping:  entities.ShippingExpedited,
		Cost:      decimal.RequireFromString("75"),
		Status:    entities.StatusPlaced,
		CreatedAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name         string
		form         url.Values
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success renders tracking",
			form: url.Values{"id": {"3"}, "shipping": {"Expedited"}, "address": {"2 Side St"}},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateShipping(mock.Anything, int64(3), entities.ShippingExpedited, "2 Side St").Return(updated, nil).Once()
				svc.EXPECT().OrderHistory(mock.Anything, int64(3)).Return([]entities.HistoryEntry{{OrderID: 3, Address: "2 Side St"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "$75.00",
		},
		{
			name:         "malformed id",
			form:         url.Values{"id": {"x"}, "shipping": {"Ground"}, "address": {"a"}},
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "could not be updated",
		},
		{
			name:         "unknown shipping",
			form:         url.Values{"id": {"3"}, "shipping": {"Teleport"}, "address": {"a"}},
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "could not be updated",
		},
		{
			name: "cancelled order",
			form: url.Values{"id": {"3"}, "shipping": {"Ground"}, "address": {"a"}},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateShipping(mock.Anything, int64(3), entities.ShippingGround, "a").Return(entities.Order{}, entities.ErrOrderIneligible).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "could not be updated",
		},
		{
			name: "absent order",
			form: url.Values{"id": {"3"}, "shipping": {"Ground"}, "address": {"a"}},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateShipping(mock.Anything, int64(3), entities.ShippingGround, "a").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "could not be updated",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/update_shipping", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			res, body := serve(r, req)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrdersHandler_OrderHistory(t *testing.T) {
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantLen      int
	}{
		{
			name: "success",
			id:   "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().OrderHistory(mock.Anything, int64(1)).Return([]entities.HistoryEntry{
					{OrderID: 1, Shipping: entities.ShippingGround, Address: "b", UpdatedAt: at.Add(time.Minute)},
					{OrderID: 1, Shipping: entities.ShippingFlatRate, Address: "a", UpdatedAt: at},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name: "empty history",
			id:   "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().OrderHistory(mock.Anything, int64(1)).Return([]entities.HistoryEntry{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:         "malformed id",
			id:           "abc",
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "absent order",
			id:   "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().OrderHistory(mock.Anything, int64(1)).Return(nil, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc)

			res, body := serve(r, httptest.NewRequest(http.MethodGet, "/api/order/"+tc.id+"/history", nil))

			require.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var entries []map[string]any
			require.NoError(t, json.Unmarshal([]byte(body), &entries))
			require.Len(t, entries, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, "Ground", entries[0]["shipping_method_used"])
				assert.Equal(t, "b", entries[0]["delivery_address"])
				assert.Contains(t, entries[0], "update_time")
			}
		})
	}
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	order := entities.Order{
		ID:       9,
		FromName: "Jane",
		Product:  "The Aviator Classic",
		Quantity: 2,
		Shipping: entities.ShippingGround,
		Cost:     decimal.RequireFromString("170"),
		Status:   entities.StatusShipped,
	}

	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().TrackOrder(mock.Anything, int64(9)).Return(order, nil).Once()
	r := newOrdersRouter(t, svc)

	res, body := serve(r, httptest.NewRequest(http.MethodGet, "/api/order/9", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "170.00", resp["cost"])
	assert.Equal(t, "Shipped", resp["status"])
	assert.Equal(t, "Jane", resp["from"])
}

func TestOrdersHandler_Tracking(t *testing.T) {
	order := entities.Order{
		ID:       9,
		FromName: "<b>Jane</b>",
		Product:  "The Aviator Classic",
		Quantity: 2,
		Shipping: entities.ShippingGround,
		Cost:     decimal.RequireFromString("170"),
		Status:   entities.StatusCancelled,
	}

	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   "9",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TrackOrder(mock.Anything, int64(9)).Return(order, nil).Once()
				svc.EXPECT().OrderHistory(mock.Anything, int64(9)).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "&lt;b&gt;Jane&lt;/b&gt;",
		},
		{
			name:         "malformed id",
			id:           "x",
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusNotFound,
			wantBody:     "Invalid tracking ID format.",
		},
		{
			name: "absent order",
			id:   "9",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TrackOrder(mock.Anything, int64(9)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Order not found.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc)

			res, body := serve(r, httptest.NewRequest(http.MethodGet, "/tracking/"+tc.id, nil))

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "Cancel order")
		})
	}
}

func TestOrdersHandler_AdminOrders(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantFilter entities.OrderFilter
	}{
		{
			name:       "all statuses",
			query:      "?query=jan&status=",
			wantFilter: entities.OrderFilter{Query: "jan"},
		},
		{
			name:       "status filter",
			query:      "?status=Shipped",
			wantFilter: entities.OrderFilter{Status: entities.StatusShipped},
		},
		{
			name:       "unknown status is ignored",
			query:      "?status=Lost",
			wantFilter: entities.OrderFilter{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			svc.EXPECT().ListOrders(mock.Anything, tc.wantFilter).Return([]entities.Order{{ID: 1, FromName: "Janet"}}, nil).Once()
			r := newOrdersRouter(t, svc)

			res, body := serve(r, httptest.NewRequest(http.MethodGet, "/admin/secret42"+tc.query, nil))

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Contains(t, body, "Janet")
		})
	}

	t.Run("wrong admin path", func(t *testing.T) {
		r := newOrdersRouter(t, mocks.NewMockOrderService(t))
		res, _ := serve(r, httptest.NewRequest(http.MethodGet, "/admin/guess", nil))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestOrdersHandler_OrderForm(t *testing.T) {
	r := newOrdersRouter(t, mocks.NewMockOrderService(t))

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	req.AddCookie(&http.Cookie{Name: "customer_name", Value: "JaneDoe"})
	res, body := serve(r, req)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `value="JaneDoe"`)
	assert.Contains(t, body, "The Sentinel Bifocal")
}
