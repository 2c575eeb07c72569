package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/avtomir/avtomir-backend/pkg/db/models"
)

const featuredLimit = 6

// CarRepository defines persistence operations for catalog listings.
type CarRepository interface {
	List(context.Context, ListFilter) ([]models.Car, error)
	ListFeatured(context.Context) ([]models.Car, error)
	FindByID(context.Context, int64) (*models.Car, error)
	Create(context.Context, *models.Car) (*models.Car, error)
}

// Repository implements CarRepository on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns available listings newest first, narrowed by the filter.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Car, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("is_available = ?", true)

	if filter.Country != nil {
		query = query.Where("country = ?", filter.Country.String())
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if needle := strings.TrimSpace(filter.Make); needle != "" {
		query = query.Where("LOWER(make) LIKE ?", "%"+strings.ToLower(needle)+"%")
	}

	var cars []models.Car
	if err := query.Order("created_at DESC, id DESC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// ListFeatured returns up to six featured available listings, newest first.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	err := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("is_available = ? AND is_featured = ?", true, true).
		Order("created_at DESC, id DESC").
		Limit(featuredLimit).
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// FindByID loads one listing regardless of availability.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// Create inserts a new listing.
func (r *Repository) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}
