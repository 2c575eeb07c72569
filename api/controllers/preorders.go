package controllers

import (
	"net/http"

	"github.com/avtomir/avtomir-backend/api/responses"
	"github.com/avtomir/avtomir-backend/api/validators"
	preordersvc "github.com/avtomir/avtomir-backend/internal/preorders"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

type createPreOrderRequest struct {
	CarID         int64   `json:"car_id" validate:"required,gte=1"`
	CustomerName  string  `json:"customer_name" validate:"required,max=200"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=50"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email"`
	Comment       *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

func (p createPreOrderRequest) toInput() preordersvc.CreateInput {
	input := preordersvc.CreateInput{
		CarID:         p.CarID,
		CustomerName:  validators.SanitizeString(p.CustomerName, 200),
		CustomerPhone: validators.SanitizeString(p.CustomerPhone, 50),
	}
	if p.CustomerEmail != nil {
		email := validators.SanitizeString(*p.CustomerEmail, 200)
		input.CustomerEmail = &email
	}
	if p.Comment != nil {
		comment := validators.SanitizeString(*p.Comment, 2000)
		input.Comment = &comment
	}
	return input
}

// CreatePreOrder handles the customer submission.
func CreatePreOrder(svc preordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createPreOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
