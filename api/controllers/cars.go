package controllers

import (
	"net/http"
	"strings"

	"github.com/avtomir/avtomir-backend/api/responses"
	"github.com/avtomir/avtomir-backend/api/validators"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

// ListCars serves the filtered catalog listing.
func ListCars(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cars, err := svc.ListCars(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cars)
	}
}

// FeaturedCars serves the landing page highlight slice.
func FeaturedCars(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cars, err := svc.FeaturedCars(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cars)
	}
}

// GetCar serves a single listing by id.
func GetCar(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamID(r, "carId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		car, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, car)
	}
}

func parseListFilter(r *http.Request) (catalog.ListFilter, error) {
	var filter catalog.ListFilter

	if raw := strings.TrimSpace(r.URL.Query().Get("country")); raw != "" {
		country, err := enums.ParseCarCountry(raw)
		if err != nil {
			return filter, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid country filter").WithDetails(map[string]any{"field": "country"})
		}
		filter.Country = &country
	}

	minPrice, err := validators.ParseOptionalQueryInt64(r, "min_price")
	if err != nil {
		return filter, err
	}
	filter.MinPrice = minPrice

	maxPrice, err := validators.ParseOptionalQueryInt64(r, "max_price")
	if err != nil {
		return filter, err
	}
	filter.MaxPrice = maxPrice

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, pkgerrors.New(pkgerrors.CodeValidation, "min_price must not exceed max_price")
	}

	filter.Make = validators.SanitizeString(r.URL.Query().Get("make"), 100)
	return filter, nil
}
