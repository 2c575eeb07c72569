package controllers

import (
	"net/http"

	"github.com/avtomir/avtomir-backend/api/responses"
	"github.com/avtomir/avtomir-backend/api/validators"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

type createCarRequest struct {
	Make         string `json:"make" validate:"required,max=100"`
	Model        string `json:"model" validate:"required,max=100"`
	Year         int    `json:"year" validate:"required,gte=1950,lte=2100"`
	Price        int64  `json:"price" validate:"required,gte=0"`
	Image        string `json:"image,omitempty" validate:"omitempty,url"`
	Mileage      int    `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	Fuel         string `json:"fuel" validate:"required"`
	Transmission string `json:"transmission" validate:"required"`
	BodyType     string `json:"body_type,omitempty" validate:"omitempty,max=50"`
	Color        string `json:"color,omitempty" validate:"omitempty,max=50"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=5000"`
	IsFeatured   bool   `json:"is_featured,omitempty"`
	Country      string `json:"country" validate:"required"`
}

func (p createCarRequest) toInput() (catalog.AddCarInput, error) {
	fuel, err := enums.ParseFuelType(p.Fuel)
	if err != nil {
		return catalog.AddCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel").WithDetails(map[string]any{"field": "fuel"})
	}
	transmission, err := enums.ParseTransmission(p.Transmission)
	if err != nil {
		return catalog.AddCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission").WithDetails(map[string]any{"field": "transmission"})
	}
	country, err := enums.ParseCarCountry(p.Country)
	if err != nil {
		return catalog.AddCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid country").WithDetails(map[string]any{"field": "country"})
	}

	return catalog.AddCarInput{
		Make:         validators.SanitizeString(p.Make, 100),
		Model:        validators.SanitizeString(p.Model, 100),
		Year:         p.Year,
		Price:        p.Price,
		Image:        validators.SanitizeString(p.Image, 500),
		Mileage:      p.Mileage,
		Fuel:         fuel,
		Transmission: transmission,
		BodyType:     validators.SanitizeString(p.BodyType, 50),
		Color:        validators.SanitizeString(p.Color, 50),
		Description:  validators.SanitizeString(p.Description, 5000),
		IsFeatured:   p.IsFeatured,
		Country:      country,
	}, nil
}

// AdminCreateCar inserts a new catalog listing.
func AdminCreateCar(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createCarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.AddCar(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
