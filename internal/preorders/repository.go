package preorders

import (
	"context"

	"gorm.io/gorm"

	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	"github.com/avtomir/avtomir-backend/pkg/pagination"
)

// PreOrderRepository defines persistence operations for pre-orders.
type PreOrderRepository interface {
	Create(context.Context, *models.PreOrder) (*models.PreOrder, error)
	FindByID(context.Context, int64) (*models.PreOrder, error)
	List(context.Context, ListFilter) ([]models.PreOrder, error)
	UpdateStatus(context.Context, int64, enums.PreOrderStatus) error
}

// Repository implements PreOrderRepository on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pre-order. The status column is forced to
// pending no matter what the caller set on the model.
func (r *Repository) Create(ctx context.Context, order *models.PreOrder) (*models.PreOrder, error) {
	order.Status = enums.PreOrderStatusPending
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// FindByID loads one pre-order.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.PreOrder, error) {
	var order models.PreOrder
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns pre-orders newest first. The caller passes a buffered
// limit to detect whether another page exists.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.PreOrder, error) {
	query := r.db.WithContext(ctx).Model(&models.PreOrder{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if cursor, err := pagination.ParseCursor(filter.Cursor); err != nil {
		return nil, err
	} else if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var orders []models.PreOrder
	err := query.
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(filter.Limit)).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus persists a status transition.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.PreOrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.PreOrder{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
