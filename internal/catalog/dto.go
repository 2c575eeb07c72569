package catalog

import (
	"time"

	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/enums"
)

// ListFilter narrows a catalog listing. Nil fields mean "no constraint".
type ListFilter struct {
	Country  *enums.CarCountry
	MinPrice *int64
	MaxPrice *int64
	Make     string
}

// CarDTO is the storefront-facing projection of a listing.
type CarDTO struct {
	ID           int64              `json:"id"`
	Make         string             `json:"make"`
	Model        string             `json:"model"`
	Year         int                `json:"year"`
	Price        int64              `json:"price"`
	Image        string             `json:"image"`
	Mileage      int                `json:"mileage"`
	Fuel         enums.FuelType     `json:"fuel"`
	Transmission enums.Transmission `json:"transmission"`
	BodyType     string             `json:"body_type"`
	Color        string             `json:"color"`
	Description  string             `json:"description"`
	IsAvailable  bool               `json:"is_available"`
	IsFeatured   bool               `json:"is_featured"`
	Country      enums.CarCountry   `json:"country"`
	CreatedAt    time.Time          `json:"created_at"`
}

// AddCarInput is the administrative insert payload.
type AddCarInput struct {
	Make         string
	Model        string
	Year         int
	Price        int64
	Image        string
	Mileage      int
	Fuel         enums.FuelType
	Transmission enums.Transmission
	BodyType     string
	Color        string
	Description  string
	IsFeatured   bool
	Country      enums.CarCountry
}

func toDTO(car *models.Car) *CarDTO {
	if car == nil {
		return nil
	}
	return &CarDTO{
		ID:           car.ID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.PriceRub,
		Image:        car.Image,
		Mileage:      car.Mileage,
		Fuel:         car.Fuel,
		Transmission: car.Transmission,
		BodyType:     car.BodyType,
		Color:        car.Color,
		Description:  car.Description,
		IsAvailable:  car.IsAvailable,
		IsFeatured:   car.IsFeatured,
		Country:      car.Country,
		CreatedAt:    car.CreatedAt,
	}
}

func toDTOs(cars []models.Car) []CarDTO {
	dtos := make([]CarDTO, 0, len(cars))
	for i := range cars {
		dtos = append(dtos, *toDTO(&cars[i]))
	}
	return dtos
}

func (in AddCarInput) toModel() *models.Car {
	return &models.Car{
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		PriceRub:     in.Price,
		Image:        in.Image,
		Mileage:      in.Mileage,
		Fuel:         in.Fuel,
		Transmission: in.Transmission,
		BodyType:     in.BodyType,
		Color:        in.Color,
		Description:  in.Description,
		IsAvailable:  true,
		IsFeatured:   in.IsFeatured,
		Country:      in.Country,
	}
}

// NewCarDTO converts a model into its API projection.
func NewCarDTO(car *models.Car) *CarDTO {
	return toDTO(car)
}
