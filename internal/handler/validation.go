package handler

import (
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/entities"
	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/utils"
	"github.com/go-playground/validator/v10"
)

const (
	// Names and addresses at or above these lengths are rejected as too large.
	maxFromNameLen = 64
	maxAddressLen  = 1024
	maxQuantity    = 10000
)

// requestError is a client error carrying every message worth reporting.
type requestError struct {
	status   int
	messages []string
}

func (e *requestError) Error() string {
	return strings.Join(e.messages, " ")
}

func newValidator(catalog entities.Catalog) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("product", func(fl validator.FieldLevel) bool {
		return catalog.Has(fl.Field().String())
	})
	_ = v.RegisterValidation("shipping", func(fl validator.FieldLevel) bool {
		return entities.ShippingMethod(fl.Field().String()).Valid()
	})
	return v
}

func orderFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required property: %s.", fe.Field())
	case "product":
		return "Unrecognized product."
	case "shipping":
		return "Invalid shipping method."
	}
	return fmt.Sprintf("Invalid property: %s.", fe.Field())
}

// newOrder validates an order request and converts it. Oversized names and
// addresses are rejected before anything else with 413.
func newOrder(v *validator.Validate, req CreateOrderRequest) (entities.NewOrder, error) {
	if utf8.RuneCountInString(req.FromName) >= maxFromNameLen || utf8.RuneCountInString(req.Address) >= maxAddressLen {
		return entities.NewOrder{}, &requestError{
			status:   http.StatusRequestEntityTooLarge,
			messages: []string{"Payload Too Large: Name or Address is too long."},
		}
	}

	var messages []string
	if err := v.Struct(req); err != nil {
		messages = utils.ValidationMessages(err, orderFieldMessage)
	}

	quantity, ok := parseQuantity(req.Quantity)
	if !ok {
		if req.Quantity == nil || req.Quantity == float64(0) {
			messages = append(messages, "Missing required property: quantity.")
		}
		messages = append(messages, "Quantity must be a positive integer.")
	}

	if len(messages) > 0 {
		return entities.NewOrder{}, &requestError{status: http.StatusBadRequest, messages: messages}
	}

	return entities.NewOrder{
		Product:  req.Product,
		FromName: req.FromName,
		Address:  req.Address,
		Quantity: quantity,
		Shipping: entities.ShippingMethod(req.Shipping),
	}, nil
}

// parseQuantity accepts JSON numbers that are whole, positive and within
// maxQuantity.
func parseQuantity(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f <= 0 || f > maxQuantity || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// sanitizeCookieValue keeps only characters that are safe in a cookie value.
func sanitizeCookieValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, s)
}
