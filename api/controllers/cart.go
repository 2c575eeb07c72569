package controllers

import (
	"net/http"

	"github.com/avtomir/avtomir-backend/api/middleware"
	"github.com/avtomir/avtomir-backend/api/responses"
	"github.com/avtomir/avtomir-backend/api/validators"
	cartpkg "github.com/avtomir/avtomir-backend/internal/cart"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

type cartResponse struct {
	Items      []cartpkg.Line `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"`
}

func cartPayload(c *cartpkg.Cart) cartResponse {
	return cartResponse{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func sessionCart(r *http.Request, store *cartpkg.Store) (*cartpkg.Cart, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return store.Get(sessionID), nil
}

// GetCart serves the session's current cart.
func GetCart(store *cartpkg.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartPayload(c))
	}
}

type addCartItemRequest struct {
	CarID int64 `json:"car_id" validate:"required,gte=1"`
}

// AddCartItem resolves the listing and adds it to the session cart.
func AddCartItem(store *cartpkg.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		car, err := catalogSvc.GetByID(r.Context(), payload.CarID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Add(*car)
		responses.WriteSuccess(w, cartPayload(c))
	}
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// UpdateCartItem sets the quantity for one line. Zero or a negative
// quantity removes the line.
func UpdateCartItem(store *cartpkg.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := validators.ParseURLParamID(r, "carId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.SetQuantity(carID, *payload.Quantity)
		responses.WriteSuccess(w, cartPayload(c))
	}
}

// RemoveCartItem drops one line from the session cart.
func RemoveCartItem(store *cartpkg.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := validators.ParseURLParamID(r, "carId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Remove(carID)
		responses.WriteSuccess(w, cartPayload(c))
	}
}

// ClearCart empties the session cart.
func ClearCart(store *cartpkg.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Clear()
		responses.WriteSuccess(w, cartPayload(c))
	}
}
