package views_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fullstack-web-apps/internal/views"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollars(t *testing.T) {
	assert.Equal(t, "$100.00", views.Dollars(decimal.NewFromInt(100)))
	assert.Equal(t, "$0.50", views.Dollars(decimal.RequireFromString("0.5")))
	assert.Equal(t, "$12.35", views.Dollars(decimal.RequireFromString("12.345")))
}

func TestDatetime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "2025-03-14 09:05:07", views.Datetime(ts))
}

func TestSet_Render(t *testing.T) {
	t.Run("error page escapes data", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := views.Orders.Render(rr, http.StatusNotFound, "error.html", views.Error{
			Title:   "Not found",
			Message: "<script>alert(1)</script>",
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), "<title>Not found</title>")
		assert.Contains(t, rr.Body.String(), "&lt;script&gt;")
		assert.NotContains(t, rr.Body.String(), "<script>alert")
	})

	t.Run("both sets share the layout", func(t *testing.T) {
		rr := httptest.NewRecorder()
		require.NoError(t, views.Blog.Render(rr, http.StatusOK, "error.html", views.Error{Title: "Oops"}))
		assert.Contains(t, rr.Body.String(), "<!DOCTYPE html>")
	})

	t.Run("unknown page leaves response untouched", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := views.Orders.Render(rr, http.StatusOK, "missing.html", nil)
		assert.Error(t, err)
		assert.Zero(t, rr.Body.Len())
		assert.Empty(t, rr.Header().Get("Content-Type"))
	})

	t.Run("apps do not see each other's pages", func(t *testing.T) {
		assert.Error(t, views.Orders.Render(httptest.NewRecorder(), http.StatusOK, "home.html", nil))
		assert.Error(t, views.Blog.Render(httptest.NewRecorder(), http.StatusOK, "tracking.html", nil))
	})
}
