package preorders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
	"github.com/avtomir/avtomir-backend/pkg/metrics"
	"github.com/avtomir/avtomir-backend/pkg/pagination"
)

const (
	notifyChannel        = "telegram"
	defaultNotifyTimeout = 10 * time.Second
)

// Notifier delivers the new pre-order announcement. Delivery is best
// effort: a failure is logged and counted, never surfaced to the buyer.
type Notifier interface {
	Enabled() bool
	NotifyNewPreOrder(ctx context.Context, order *models.PreOrder, car *models.Car) error
}

type carLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Car, error)
}

// Service exposes pre-order submission and the admin workflow.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*PreOrderDTO, error)
	List(ctx context.Context, filter ListFilter) (*Page, error)
	UpdateStatus(ctx context.Context, id int64, status enums.PreOrderStatus) (*PreOrderDTO, error)
}

type service struct {
	repo            PreOrderRepository
	cars            carLoader
	notifier        Notifier
	notifierMetrics *metrics.NotifierMetrics
	logg            *logger.Logger
	notifyTimeout   time.Duration
}

// NewService wires the pre-order service. Notifier and metrics may be nil.
func NewService(repo PreOrderRepository, cars carLoader, notifier Notifier, notifierMetrics *metrics.NotifierMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("preorders: repository is required")
	}
	if cars == nil {
		return nil, fmt.Errorf("preorders: car loader is required")
	}
	return &service{
		repo:            repo,
		cars:            cars,
		notifier:        notifier,
		notifierMetrics: notifierMetrics,
		logg:            logg,
		notifyTimeout:   defaultNotifyTimeout,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*PreOrderDTO, error) {
	car, err := s.cars.FindByID(ctx, input.CarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "car not found").WithDetails(map[string]any{"car_id": input.CarID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeSubmission, err, "pre-order could not be submitted")
	}

	order := &models.PreOrder{
		CarID:         car.ID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Comment:       input.Comment,
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSubmission, err, "pre-order could not be submitted")
	}

	s.notifyAsync(ctx, created, car)

	dto := toDTO(created)
	dto.Car = catalog.NewCarDTO(car)
	return dto, nil
}

// notifyAsync fires the announcement on a detached goroutine so a slow
// or dead channel never delays the buyer's response.
func (s *service) notifyAsync(ctx context.Context, order *models.PreOrder, car *models.Car) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	orderCopy := *order
	carCopy := *car

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyNewPreOrder(notifyCtx, &orderCopy, &carCopy); err != nil {
			s.notifierMetrics.IncFailed(notifyChannel)
			if s.logg != nil {
				logCtx := s.logg.WithFields(context.Background(), map[string]any{
					"pre_order_id": orderCopy.ID,
					"channel":      notifyChannel,
				})
				s.logg.Error(logCtx, "pre-order notification failed", err)
			}
			return
		}
		s.notifierMetrics.IncDelivered(notifyChannel)
	}()
}

func (s *service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pre-orders")
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	page := &Page{Items: make([]PreOrderDTO, 0, limit)}
	hasMore := len(orders) > limit
	if hasMore {
		orders = orders[:limit]
	}
	for i := range orders {
		page.Items = append(page.Items, *toDTO(&orders[i]))
	}
	if hasMore && len(orders) > 0 {
		last := orders[len(orders)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status enums.PreOrderStatus) (*PreOrderDTO, error) {
	if !status.IsValid() || status == enums.PreOrderStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be confirmed or cancelled")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pre-order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pre-order")
	}
	if order.Status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "pre-order already resolved").WithDetails(map[string]any{"status": order.Status})
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update pre-order status")
	}

	order.Status = status
	return toDTO(order), nil
}
