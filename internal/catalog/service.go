package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

// Service exposes the storefront catalog operations. Read paths never
// fail outright: when the backend is unreachable they degrade to the
// static fallback dataset, filtered the same way the query would be.
type Service interface {
	ListCars(ctx context.Context, filter ListFilter) ([]CarDTO, error)
	FeaturedCars(ctx context.Context) ([]CarDTO, error)
	GetByID(ctx context.Context, id int64) (*CarDTO, error)
	AddCar(ctx context.Context, input AddCarInput) (*CarDTO, error)
}

type service struct {
	repo CarRepository
	logg *logger.Logger
}

// NewService wires the catalog service.
func NewService(repo CarRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog: repository is required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) ListCars(ctx context.Context, filter ListFilter) ([]CarDTO, error) {
	cars, err := s.repo.List(ctx, filter)
	if err != nil {
		s.warnFallback(ctx, "catalog.list", err)
		return toDTOs(filterFallback(filter)), nil
	}
	return toDTOs(cars), nil
}

func (s *service) FeaturedCars(ctx context.Context) ([]CarDTO, error) {
	cars, err := s.repo.ListFeatured(ctx)
	if err != nil {
		s.warnFallback(ctx, "catalog.featured", err)
		return toDTOs(fallbackFeatured(featuredLimit)), nil
	}
	if len(cars) == 0 {
		return toDTOs(fallbackFeatured(featuredLimit)), nil
	}
	return toDTOs(cars), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*CarDTO, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
		}
		s.warnFallback(ctx, "catalog.get", err)
		if fallback := fallbackByID(id); fallback != nil {
			return toDTO(fallback), nil
		}
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
	}
	return toDTO(car), nil
}

func (s *service) AddCar(ctx context.Context, input AddCarInput) (*CarDTO, error) {
	car := input.toModel()
	created, err := s.repo.Create(ctx, car)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSubmission, err, "car could not be saved")
	}
	return toDTO(created), nil
}

func (s *service) warnFallback(ctx context.Context, op string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"op": op, "error": err.Error()})
	s.logg.Warn(ctx, "catalog backend unavailable, serving fallback")
}
