package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/views"
	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	customerNameCookie = "customer_name"
	customerNameMaxAge = 3600
	maxFormBytes       = 1 << 20
)

type OrderService interface {
	PlaceOrder(ctx context.Context, o entities.NewOrder) (entities.Order, error)
	CancelOrder(ctx context.Context, id int64) error
	UpdateShipping(ctx context.Context, id int64, shipping entities.ShippingMethod, address string) (entities.Order, error)
	TrackOrder(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	OrderHistory(ctx context.Context, id int64) ([]entities.HistoryEntry, error)
}

type OrdersHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderService
	catalog   entities.Catalog
	adminPath string
}

func NewOrdersHandler(logger *slog.Logger, svc OrderService, catalog entities.Catalog, adminPath string) *OrdersHandler {
	return &OrdersHandler{
		logger:    logger.With(slog.String("handler", "orders")),
		validate:  newValidator(catalog),
		svc:       svc,
		catalog:   catalog,
		adminPath: adminPath,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Get("/", h.About)
	r.Get("/about", h.About)
	r.Get("/order", h.OrderForm)
	r.Get("/tracking/{id}", h.Tracking)
	r.Post("/update_shipping", h.UpdateShipping)
	r.Get("/admin/"+h.adminPath, h.AdminOrders)

	r.Route("/api", func(r chi.Router) {
		r.Post("/order", h.PlaceOrder)
		r.Delete("/cancel_order", h.CancelOrder)
		r.Get("/order/{id}", h.GetOrder)
		r.Get("/order/{id}/history", h.OrderHistory)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusNotFound, "error.html", views.Error{
			Title:   "Not found",
			Message: "The requested resource was not found.",
		})
	})
}

type aboutView struct {
	Products []entities.Product
}

type orderFormView struct {
	Products        []entities.Product
	ShippingMethods []entities.ShippingMethod
	CustomerName    string
}

type trackingView struct {
	Order           entities.Order
	History         []entities.HistoryEntry
	Mutable         bool
	ShippingMethods []entities.ShippingMethod
}

type adminOrdersView struct {
	Orders   []entities.Order
	Query    string
	Status   entities.OrderStatus
	Statuses []entities.OrderStatus
}

func (h *OrdersHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about.html", aboutView{Products: h.catalog.Products()})
}

func (h *OrdersHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	view := orderFormView{
		Products:        h.catalog.Products(),
		ShippingMethods: entities.ShippingMethods,
	}
	if c, err := r.Cookie(customerNameCookie); err == nil {
		view.CustomerName = c.Value
	}
	h.render(w, r, http.StatusOK, "order.html", view)
}

// PlaceOrder creates an order.
// @Summary      Place an order
// @Description  Validates the order, prices it from the catalog and stores it with status Placed
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Order"
// @Success      201    {object}  CreateOrderResponse
// @Failure      400    {object}  utils.ErrorResponse "Validation failed"
// @Failure      413    {object}  utils.ErrorResponse "Name or address too long"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/order [post]
func (h *OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteErrors(w, http.StatusBadRequest, "Invalid JSON format or body is missing.")
		return
	}

	o, err := newOrder(h.validate, req)
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		utils.WriteErrors(w, reqErr.status, reqErr.messages...)
		return
	}

	order, err := h.svc.PlaceOrder(ctx, o)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "Internal database error placing order.", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   customerNameCookie,
		Value:  sanitizeCookieValue(order.FromName),
		Path:   "/",
		MaxAge: customerNameMaxAge,
	})
	utils.WriteJSON(w, CreateOrderResponse{Status: "success", OrderID: order.ID}, http.StatusCreated)
}

// CancelOrder cancels a mutable order.
// @Summary      Cancel an order
// @Description  Cancels an order that is still Placed or Shipped. Accepts JSON or a urlencoded form.
// @Tags         orders
// @Accept       json
// @Param        order  body  CancelOrderRequest  true  "Order to cancel"
// @Success      204  "Cancelled"
// @Failure      400  "Malformed id or order can no longer be cancelled"
// @Failure      404  "Order not found"
// @Failure      500  "Internal server error"
// @Router       /api/cancel_order [delete]
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := cancelOrderID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.svc.CancelOrder(ctx, id)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderIneligible):
		w.WriteHeader(http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to cancel order", slog.Any("error", err), slog.Int64("order_id", id))
		http.Error(w, "Server Error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// cancelOrderID reads order_id from a JSON or urlencoded body. The body is
// read by hand because net/http does not parse forms of DELETE requests.
func cancelOrderID(r *http.Request) (int64, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req CancelOrderRequest
		if err := utils.DecodeBody(r, &req); err != nil {
			return 0, err
		}
		return strconv.ParseInt(req.OrderID.String(), 10, 64)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBytes))
	if err != nil {
		return 0, err
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(form.Get("order_id"), 10, 64)
}

// UpdateShipping handles the form on the tracking page. Any failure caused
// by the client, including a missing or frozen order, renders order_fail.
func (h *OrdersHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "order_fail.html", nil)
		return
	}

	id, err := strconv.ParseInt(r.PostForm.Get("id"), 10, 64)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "order_fail.html", nil)
		return
	}
	form := UpdateShippingForm{
		ID:       id,
		Shipping: r.PostForm.Get("shipping"),
		Address:  r.PostForm.Get("address"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, http.StatusBadRequest, "order_fail.html", nil)
		return
	}

	order, err := h.svc.UpdateShipping(ctx, form.ID, entities.ShippingMethod(form.Shipping), form.Address)
	if errors.Is(err, entities.ErrOrderNotFound) || errors.Is(err, entities.ErrOrderIneligible) {
		h.render(w, r, http.StatusBadRequest, "order_fail.html", nil)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update shipping", slog.Any("error", err), slog.Int64("order_id", form.ID))
		h.renderServerError(w, r, "Database error during shipping update.")
		return
	}

	h.render(w, r, http.StatusOK, "tracking.html", h.trackingView(ctx, order))
}

func (h *OrdersHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.render(w, r, http.StatusNotFound, "error.html", views.Error{Title: "Not found", Message: "Invalid tracking ID format."})
		return
	}

	order, err := h.svc.TrackOrder(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		h.render(w, r, http.StatusNotFound, "error.html", views.Error{Title: "Not found", Message: "Order not found."})
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.Int64("order_id", id))
		h.renderServerError(w, r, "Database error while loading the order.")
		return
	}

	h.render(w, r, http.StatusOK, "tracking.html", h.trackingView(ctx, order))
}

// trackingView assembles the tracking page. The history is optional there.
func (h *OrdersHandler) trackingView(ctx context.Context, order entities.Order) trackingView {
	history, err := h.svc.OrderHistory(ctx, order.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load order history", slog.Any("error", err), slog.Int64("order_id", order.ID))
	}
	return trackingView{
		Order:           order,
		History:         history,
		Mutable:         order.Status.Mutable(),
		ShippingMethods: entities.ShippingMethods,
	}
}

func (h *OrdersHandler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := entities.OrderFilter{
		Query:  r.URL.Query().Get("query"),
		Status: entities.OrderStatus(r.URL.Query().Get("status")),
	}
	if !filter.Status.Valid() {
		filter.Status = ""
	}

	orders, err := h.svc.ListOrders(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		h.renderServerError(w, r, "Database error during order listing.")
		return
	}

	h.render(w, r, http.StatusOK, "admin_orders.html", adminOrdersView{
		Orders:   orders,
		Query:    filter.Query,
		Status:   filter.Status,
		Statuses: []entities.OrderStatus{entities.StatusPlaced, entities.StatusShipped, entities.StatusDelivered, entities.StatusCancelled},
	})
}

// GetOrder returns an order by id.
// @Summary      Get an order
// @Description  Returns the order with its current status
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Malformed id"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/order/{id} [get]
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "Invalid Order ID format.", http.StatusBadRequest)
		return
	}

	order, err := h.svc.TrackOrder(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("order_id", id))
		utils.WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// OrderHistory returns the latest shipping changes of an order.
// @Summary      Get order shipping history
// @Description  Returns up to 5 shipping history entries, newest first
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {array}   HistoryEntry
// @Failure      400  {object}  utils.ErrorResponse "Malformed id"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/order/{id}/history [get]
func (h *OrdersHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "Invalid Order ID format.", http.StatusBadRequest)
		return
	}

	history, err := h.svc.OrderHistory(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order history", slog.Any("error", err), slog.Int64("order_id", id))
		utils.WriteError(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, HistoryEntityToJSON(history), http.StatusOK)
}

func (h *OrdersHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := views.Orders.Render(w, status, page, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", slog.String("page", page), slog.Any("error", err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (h *OrdersHandler) renderServerError(w http.ResponseWriter, r *http.Request, message string) {
	h.render(w, r, http.StatusInternalServerError, "error.html", views.Error{Title: "Server error", Message: message})
}
