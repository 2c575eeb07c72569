package controllers

import (
	"net/http"
	"strings"

	"github.com/avtomir/avtomir-backend/api/responses"
	"github.com/avtomir/avtomir-backend/api/validators"
	preordersvc "github.com/avtomir/avtomir-backend/internal/preorders"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
	"github.com/avtomir/avtomir-backend/pkg/pagination"
)

// AdminListPreOrders serves the cursor-paginated pre-order backlog.
func AdminListPreOrders(svc preordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := preordersvc.ListFilter{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParsePreOrderStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filter.Status = &status
		}

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

type updatePreOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// AdminUpdatePreOrderStatus resolves a pending pre-order.
func AdminUpdatePreOrderStatus(svc preordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamID(r, "preOrderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePreOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParsePreOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}
