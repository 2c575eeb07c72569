package models

import (
	"time"

	"github.com/avtomir/avtomir-backend/pkg/enums"
)

// Car represents one catalog listing. Rows are created by seeding or an
// administrative insert and are read-only from the storefront's side.
type Car struct {
	ID           int64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Make         string             `gorm:"column:make;not null" json:"make"`
	Model        string             `gorm:"column:model;not null" json:"model"`
	Year         int                `gorm:"column:year;not null" json:"year"`
	PriceRub     int64              `gorm:"column:price;not null" json:"price"`
	Image        string             `gorm:"column:image;type:text" json:"image"`
	Mileage      int                `gorm:"column:mileage;not null;default:0" json:"mileage"`
	Fuel         enums.FuelType     `gorm:"column:fuel;not null" json:"fuel"`
	Transmission enums.Transmission `gorm:"column:transmission;not null" json:"transmission"`
	BodyType     string             `gorm:"column:body_type" json:"body_type"`
	Color        string             `gorm:"column:color" json:"color"`
	Description  string             `gorm:"column:description;type:text" json:"description"`
	IsAvailable  bool               `gorm:"column:is_available;not null;default:true" json:"is_available"`
	IsFeatured   bool               `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	Country      enums.CarCountry   `gorm:"column:country;not null;default:'foreign'" json:"country"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName keeps the historical table name.
func (Car) TableName() string {
	return "cars"
}
