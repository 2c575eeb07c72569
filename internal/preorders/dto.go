package preorders

import (
	"time"

	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/enums"
)

// CreateInput is the customer submission payload. Status is not part of
// it on purpose: new pre-orders always start pending.
type CreateInput struct {
	CarID         int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Comment       *string
}

// ListFilter narrows the admin listing.
type ListFilter struct {
	Status *enums.PreOrderStatus
	Limit  int
	Cursor string
}

// PreOrderDTO is the API projection of a pre-order.
type PreOrderDTO struct {
	ID            int64                `json:"id"`
	CarID         int64                `json:"car_id"`
	Car           *catalog.CarDTO      `json:"car,omitempty"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	CustomerEmail *string              `json:"customer_email,omitempty"`
	Comment       *string              `json:"comment,omitempty"`
	Status        enums.PreOrderStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Page is one cursor-paginated slice of the admin listing.
type Page struct {
	Items      []PreOrderDTO `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func toDTO(order *models.PreOrder) *PreOrderDTO {
	if order == nil {
		return nil
	}
	return &PreOrderDTO{
		ID:            order.ID,
		CarID:         order.CarID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		Comment:       order.Comment,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
	}
}
