package catalog

import (
	"strings"
	"time"

	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/enums"
)

// fallbackCars is the static catalog served when the database is
// unreachable. Ordering is fixed and mirrors the seed data so the
// storefront looks the same either way.
var fallbackCars = []models.Car{
	{
		ID: 1, Make: "Toyota", Model: "Camry", Year: 2023, PriceRub: 2850000,
		Image:   "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=500&h=300&fit=crop",
		Mileage: 15000, Fuel: enums.FuelPetrol, Transmission: enums.TransmissionAutomatic,
		BodyType: "sedan", Color: "white", Description: "Reliable Japanese sedan in excellent condition",
		IsAvailable: true, IsFeatured: true, Country: enums.CarCountryForeign,
		CreatedAt: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
	},
	{
		ID: 2, Make: "BMW", Model: "X5", Year: 2022, PriceRub: 5200000,
		Image:   "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=500&h=300&fit=crop",
		Mileage: 25000, Fuel: enums.FuelDiesel, Transmission: enums.TransmissionAutomatic,
		BodyType: "suv", Color: "black", Description: "Premium German SUV",
		IsAvailable: true, IsFeatured: true, Country: enums.CarCountryForeign,
		CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	},
	{
		ID: 3, Make: "LADA", Model: "Vesta", Year: 2024, PriceRub: 1450000,
		Image:   "https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2?w=500&h=300&fit=crop",
		Mileage: 5000, Fuel: enums.FuelPetrol, Transmission: enums.TransmissionManual,
		BodyType: "sedan", Color: "grey", Description: "Brand-new domestic sedan",
		IsAvailable: true, IsFeatured: true, Country: enums.CarCountryDomestic,
		CreatedAt: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	},
	{
		ID: 4, Make: "Kia", Model: "Rio", Year: 2023, PriceRub: 1750000,
		Image:   "https://images.unsplash.com/photo-1549399542-7e3f8b79c341?w=500&h=300&fit=crop",
		Mileage: 18000, Fuel: enums.FuelPetrol, Transmission: enums.TransmissionAutomatic,
		BodyType: "sedan", Color: "red", Description: "Economical city car with full service history",
		IsAvailable: true, Country: enums.CarCountryForeign,
		CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	},
	{
		ID: 5, Make: "Mercedes-Benz", Model: "E-Class", Year: 2021, PriceRub: 4600000,
		Image:   "https://images.unsplash.com/photo-1563720223185-11003d516935?w=500&h=300&fit=crop",
		Mileage: 42000, Fuel: enums.FuelPetrol, Transmission: enums.TransmissionAutomatic,
		BodyType: "sedan", Color: "silver", Description: "Business-class sedan, one owner",
		IsAvailable: true, Country: enums.CarCountryForeign,
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID: 6, Make: "LADA", Model: "Granta", Year: 2023, PriceRub: 990000,
		Image:   "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=500&h=300&fit=crop",
		Mileage: 12000, Fuel: enums.FuelPetrol, Transmission: enums.TransmissionManual,
		BodyType: "hatchback", Color: "blue", Description: "Affordable domestic hatchback",
		IsAvailable: true, Country: enums.CarCountryDomestic,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	},
}

// FallbackCars returns a copy of the static catalog, newest first.
func FallbackCars() []models.Car {
	out := make([]models.Car, len(fallbackCars))
	copy(out, fallbackCars)
	return out
}

// filterFallback applies the same constraints the repository would have
// pushed into SQL, so a degraded catalog still honors the request.
func filterFallback(filter ListFilter) []models.Car {
	var out []models.Car
	for _, car := range fallbackCars {
		if !matchesFilter(&car, filter) {
			continue
		}
		out = append(out, car)
	}
	return out
}

func matchesFilter(car *models.Car, filter ListFilter) bool {
	if !car.IsAvailable {
		return false
	}
	if filter.Country != nil && car.Country != *filter.Country {
		return false
	}
	if filter.MinPrice != nil && car.PriceRub < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && car.PriceRub > *filter.MaxPrice {
		return false
	}
	if filter.Make != "" && !strings.Contains(strings.ToLower(car.Make), strings.ToLower(filter.Make)) {
		return false
	}
	return true
}

func fallbackByID(id int64) *models.Car {
	for i := range fallbackCars {
		if fallbackCars[i].ID == id {
			car := fallbackCars[i]
			return &car
		}
	}
	return nil
}

func fallbackFeatured(limit int) []models.Car {
	cars := FallbackCars()
	if len(cars) > limit {
		cars = cars[:limit]
	}
	return cars
}
