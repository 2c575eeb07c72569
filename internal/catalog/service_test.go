package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"gorm.io/gorm"

	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/enums"
	pkgerrors "github.com/avtomir/avtomir-backend/pkg/errors"
	"github.com/avtomir/avtomir-backend/pkg/logger"
)

var errBackendDown = errors.New("dial tcp: connection refused")

type stubRepo struct {
	cars     []models.Car
	featured []models.Car
	car      *models.Car
	err      error
	created  *models.Car
}

func (s *stubRepo) List(ctx context.Context, filter ListFilter) ([]models.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cars, nil
}

func (s *stubRepo) ListFeatured(ctx context.Context) ([]models.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.featured, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.car == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.car, nil
}

func (s *stubRepo) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = car
	return car, nil
}

func newTestService(t *testing.T, repo CarRepository) Service {
	t.Helper()
	svc, err := NewService(repo, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestListCarsFallsBackOnError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubRepo{err: errBackendDown})

	cars, err := svc.ListCars(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("read path must not fail: %v", err)
	}
	if len(cars) != 6 {
		t.Fatalf("expected the full fallback catalog, got %d cars", len(cars))
	}
	if cars[0].Make != "Toyota" || cars[1].Make != "BMW" || cars[2].Make != "LADA" {
		t.Fatalf("fallback ordering is fixed, got %s/%s/%s", cars[0].Make, cars[1].Make, cars[2].Make)
	}
}

func TestListCarsFallbackRespectsFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubRepo{err: errBackendDown})

	country := enums.CarCountryDomestic
	cars, err := svc.ListCars(context.Background(), ListFilter{Country: &country})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, car := range cars {
		if car.Country != enums.CarCountryDomestic {
			t.Fatalf("filter leaked a %s car: %s %s", car.Country, car.Make, car.Model)
		}
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 domestic fallback cars, got %d", len(cars))
	}

	maxPrice := int64(1500000)
	cars, err = svc.ListCars(context.Background(), ListFilter{MaxPrice: &maxPrice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, car := range cars {
		if car.Price > maxPrice {
			t.Fatalf("price filter leaked %d", car.Price)
		}
	}

	cars, err = svc.ListCars(context.Background(), ListFilter{Make: "lada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("make filter should be case-insensitive, got %d cars", len(cars))
	}
}

func TestListCarsUsesRepositoryWhenHealthy(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{cars: []models.Car{{ID: 42, Make: "Audi", Model: "A4"}}}
	svc := newTestService(t, repo)

	cars, err := svc.ListCars(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 1 || cars[0].ID != 42 {
		t.Fatalf("expected the repository rows, got %+v", cars)
	}
}

func TestFeaturedCarsFallsBackOnErrorAndEmpty(t *testing.T) {
	t.Parallel()

	for name, repo := range map[string]*stubRepo{
		"backend error": {err: errBackendDown},
		"zero rows":     {featured: nil},
	} {
		svc := newTestService(t, repo)
		cars, err := svc.FeaturedCars(context.Background())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(cars) != 6 {
			t.Fatalf("%s: expected 6 fallback cars, got %d", name, len(cars))
		}
		if cars[0].Make != "Toyota" {
			t.Fatalf("%s: unexpected first car %s", name, cars[0].Make)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubRepo{})

	_, err := svc.GetByID(context.Background(), 999)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestGetByIDScansFallbackOnBackendError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubRepo{err: errBackendDown})

	car, err := svc.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected fallback hit: %v", err)
	}
	if car.Make != "BMW" || car.Model != "X5" {
		t.Fatalf("unexpected fallback car %+v", car)
	}

	_, err = svc.GetByID(context.Background(), 999)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("fallback miss must be NOT_FOUND, got %v", err)
	}
}

func TestAddCarWrapsWriteFailure(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubRepo{err: errBackendDown})

	_, err := svc.AddCar(context.Background(), AddCarInput{Make: "Haval", Model: "Jolion", Year: 2024, Price: 2100000})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeSubmission {
		t.Fatalf("expected SUBMISSION_FAILED, got %v", err)
	}
}

func TestAddCarForcesAvailability(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc := newTestService(t, repo)

	created, err := svc.AddCar(context.Background(), AddCarInput{
		Make: "Haval", Model: "Jolion", Year: 2024, Price: 2100000,
		Fuel: enums.FuelPetrol, Transmission: enums.TransmissionAutomatic,
		Country: enums.CarCountryForeign,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.IsAvailable {
		t.Fatal("new listings start available")
	}
	if repo.created == nil || repo.created.Make != "Haval" {
		t.Fatalf("repository did not receive the listing: %+v", repo.created)
	}
}
