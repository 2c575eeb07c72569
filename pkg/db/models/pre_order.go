package models

import (
	"time"

	"github.com/avtomir/avtomir-backend/pkg/enums"
)

// PreOrder is a customer's request to reserve a car. The storefront only
// ever creates rows with a pending status; later transitions happen on
// the admin surface.
type PreOrder struct {
	ID            int64                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CarID         int64                `gorm:"column:car_id;not null" json:"car_id"`
	CustomerName  string               `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerPhone string               `gorm:"column:customer_phone;not null" json:"customer_phone"`
	CustomerEmail *string              `gorm:"column:customer_email" json:"customer_email,omitempty"`
	Comment       *string              `gorm:"column:comment;type:text" json:"comment,omitempty"`
	Status        enums.PreOrderStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName keeps the historical table name.
func (PreOrder) TableName() string {
	return "pre_orders"
}
