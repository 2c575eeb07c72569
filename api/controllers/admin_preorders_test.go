package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	preordersvc "github.com/avtomir/avtomir-backend/internal/preorders"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
)

func withPreOrderID(r *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("preOrderId", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestAdminListPreOrders(t *testing.T) {
	stub := &stubPreOrderService{page: &preordersvc.Page{Items: []preordersvc.PreOrderDTO{{ID: 1}}}}
	rec := httptest.NewRecorder()

	AdminListPreOrders(stub, testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/pre-orders?status=pending&limit=10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminListPreOrdersBadStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminListPreOrders(&stubPreOrderService{}, testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/pre-orders?status=done", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminUpdatePreOrderStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubPreOrderService{updated: &preordersvc.PreOrderDTO{ID: 1, Status: enums.PreOrderStatusConfirmed}}
		req := withPreOrderID(httptest.NewRequest(http.MethodPost, "/api/admin/v1/pre-orders/1/status", strings.NewReader(`{"status":"confirmed"}`)), "1")
		rec := httptest.NewRecorder()

		AdminUpdatePreOrderStatus(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects pending target", func(t *testing.T) {
		req := withPreOrderID(httptest.NewRequest(http.MethodPost, "/api/admin/v1/pre-orders/1/status", strings.NewReader(`{"status":"pending"}`)), "1")
		rec := httptest.NewRecorder()

		AdminUpdatePreOrderStatus(&stubPreOrderService{}, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("terminal conflict", func(t *testing.T) {
		stub := &stubPreOrderService{err: pkgerrors.New(pkgerrors.CodeConflict, "pre-order already resolved")}
		req := withPreOrderID(httptest.NewRequest(http.MethodPost, "/api/admin/v1/pre-orders/1/status", strings.NewReader(`{"status":"cancelled"}`)), "1")
		rec := httptest.NewRecorder()

		AdminUpdatePreOrderStatus(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}
