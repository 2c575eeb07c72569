package enums

import "fmt"

// CarCountry represents the origin category of a listing.
type CarCountry string

const (
	CarCountryDomestic CarCountry = "domestic"
	CarCountryForeign  CarCountry = "foreign"
)

var validCarCountries = []CarCountry{
	CarCountryDomestic,
	CarCountryForeign,
}

// String implements fmt.Stringer.
func (c CarCountry) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CarCountry.
func (c CarCountry) IsValid() bool {
	for _, candidate := range validCarCountries {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCarCountry converts raw input into a CarCountry.
func ParseCarCountry(value string) (CarCountry, error) {
	for _, candidate := range validCarCountries {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid car country %q", value)
}

// FuelType captures the fuel column values.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

var validFuelTypes = []FuelType{
	FuelPetrol,
	FuelDiesel,
	FuelHybrid,
	FuelElectric,
}

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FuelType.
func (f FuelType) IsValid() bool {
	for _, candidate := range validFuelTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFuelType converts raw input into a FuelType.
func ParseFuelType(value string) (FuelType, error) {
	for _, candidate := range validFuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fuel type %q", value)
}

// Transmission captures the transmission column values.
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

var validTransmissions = []Transmission{
	TransmissionAutomatic,
	TransmissionManual,
}

// String implements fmt.Stringer.
func (t Transmission) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Transmission.
func (t Transmission) IsValid() bool {
	for _, candidate := range validTransmissions {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransmission converts raw input into a Transmission.
func ParseTransmission(value string) (Transmission, error) {
	for _, candidate := range validTransmissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission %q", value)
}
