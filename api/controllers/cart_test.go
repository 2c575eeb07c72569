package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avtomir/avtomir-backend/api/middleware"
	cartpkg "github.com/avtomir/avtomir-backend/internal/cart"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
)

func withSession(r *http.Request, sessionID string) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), sessionID))
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var payload struct {
		Data cartResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return payload.Data
}

func TestAddCartItem(t *testing.T) {
	store := cartpkg.NewStore()
	stub := &stubCatalogService{car: &catalog.CarDTO{ID: 1, Make: "Toyota", Price: 2850000}}

	body := strings.NewReader(`{"car_id":1}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "session-a")
	rec := httptest.NewRecorder()

	AddCartItem(store, stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	payload := decodeCart(t, rec)
	if payload.TotalItems != 1 || payload.TotalPrice != 2850000 {
		t.Fatalf("unexpected cart %+v", payload)
	}
}

func TestAddCartItemUnknownCar(t *testing.T) {
	store := cartpkg.NewStore()
	stub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "car not found")}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"car_id":999}`)), "session-a")
	rec := httptest.NewRecorder()

	AddCartItem(store, stub, testLogger()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if store.Get("session-a").TotalItems() != 0 {
		t.Fatal("unknown car must not enter the cart")
	}
}

func TestUpdateCartItemZeroQuantityRemoves(t *testing.T) {
	store := cartpkg.NewStore()
	store.Get("session-a").Add(catalog.CarDTO{ID: 1, Price: 2850000})

	req := withSession(httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1", strings.NewReader(`{"quantity":0}`)), "session-a")
	req = withCarID(req, "1")
	rec := httptest.NewRecorder()

	UpdateCartItem(store, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if payload := decodeCart(t, rec); payload.TotalItems != 0 {
		t.Fatalf("quantity 0 must remove the line, got %+v", payload)
	}
}

func TestUpdateCartItemRequiresQuantity(t *testing.T) {
	store := cartpkg.NewStore()

	req := withSession(httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1", strings.NewReader(`{}`)), "session-a")
	req = withCarID(req, "1")
	rec := httptest.NewRecorder()

	UpdateCartItem(store, testLogger()).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartIsScopedPerSession(t *testing.T) {
	store := cartpkg.NewStore()
	store.Get("session-a").Add(catalog.CarDTO{ID: 1, Price: 2850000})

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "session-b")
	rec := httptest.NewRecorder()

	GetCart(store, testLogger()).ServeHTTP(rec, req)

	if payload := decodeCart(t, rec); payload.TotalItems != 0 {
		t.Fatalf("session-b must see an empty cart, got %+v", payload)
	}
}

func TestClearCart(t *testing.T) {
	store := cartpkg.NewStore()
	c := store.Get("session-a")
	c.Add(catalog.CarDTO{ID: 1, Price: 2850000})
	c.Add(catalog.CarDTO{ID: 3, Price: 1450000})

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "session-a")
	rec := httptest.NewRecorder()

	ClearCart(store, testLogger()).ServeHTTP(rec, req)

	if payload := decodeCart(t, rec); payload.TotalItems != 0 || payload.TotalPrice != 0 {
		t.Fatalf("expected an empty cart, got %+v", payload)
	}
}

func TestCartHandlersRequireSession(t *testing.T) {
	store := cartpkg.NewStore()
	rec := httptest.NewRecorder()
	GetCart(store, testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without session middleware, got %d", rec.Code)
	}
}
