package entities

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type ShippingMethod string

const (
	ShippingFlatRate  ShippingMethod = "Flat Rate"
	ShippingGround    ShippingMethod = "Ground"
	ShippingExpedited ShippingMethod = "Expedited"
)

var ShippingMethods = []ShippingMethod{ShippingFlatRate, ShippingGround, ShippingExpedited}

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingFlatRate, ShippingGround, ShippingExpedited:
		return true
	}
	return false
}

type Product struct {
	Name  string
	Price decimal.Decimal
}

// Catalog maps product names to unit prices.
type Catalog map[string]decimal.Decimal

var ErrUnknownProduct = errors.New("unknown product")

func DefaultCatalog() Catalog {
	return Catalog{
		"Vintage Silver-Grey Browline": decimal.RequireFromString("110.00"),
		"Silver Metal Square":          decimal.RequireFromString("75.00"),
		"Matte Black Aviator":          decimal.RequireFromString("50.00"),
		"The Sentinel Bifocal":         decimal.RequireFromString("150.00"),
		"The Aviator Classic":          decimal.RequireFromString("85.00"),
	}
}

func (c Catalog) Has(product string) bool {
	_, ok := c[product]
	return ok
}

// Cost returns unit price * quantity for the product.
func (c Catalog) Cost(product string, quantity int) (decimal.Decimal, error) {
	price, ok := c[product]
	if !ok {
		return decimal.Decimal{}, ErrUnknownProduct
	}
	return price.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Products returns the catalog sorted by name.
func (c Catalog) Products() []Product {
	products := make([]Product, 0, len(c))
	for name, price := range c {
		products = append(products, Product{Name: name, Price: price})
	}
	slices.SortFunc(products, func(a, b Product) int {
		return strings.Compare(a.Name, b.Name)
	})
	return products
}
