package enums

import "fmt"

// PreOrderStatus represents the pre_orders.status workflow.
type PreOrderStatus string

const (
	PreOrderStatusPending   PreOrderStatus = "pending"
	PreOrderStatusConfirmed PreOrderStatus = "confirmed"
	PreOrderStatusCancelled PreOrderStatus = "cancelled"
)

var validPreOrderStatuses = []PreOrderStatus{
	PreOrderStatusPending,
	PreOrderStatusConfirmed,
	PreOrderStatusCancelled,
}

// String implements fmt.Stringer.
func (s PreOrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PreOrderStatus.
func (s PreOrderStatus) IsValid() bool {
	for _, candidate := range validPreOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s PreOrderStatus) IsTerminal() bool {
	return s == PreOrderStatusConfirmed || s == PreOrderStatusCancelled
}

// ParsePreOrderStatus converts raw input into a PreOrderStatus.
func ParsePreOrderStatus(value string) (PreOrderStatus, error) {
	for _, candidate := range validPreOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pre-order status %q", value)
}
