package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avtomir/avtomir-backend/api/controllers"
	"github.com/avtomir/avtomir-backend/api/middleware"
	cartpkg "github.com/avtomir/avtomir-backend/internal/cart"
	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/internal/preorders"
	"github.com/avtomir/avtomir-backend/pkg/config"
	"github.com/avtomir/avtomir-backend/pkg/db"
	"github.com/avtomir/avtomir-backend/pkg/logger"
	"github.com/avtomir/avtomir-backend/pkg/metrics"
	"github.com/avtomir/avtomir-backend/pkg/redis"
)

// Deps bundles everything the router needs. Optional integrations
// (redis, metrics) may be nil and silently disable their middleware.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              *db.Client
	Redis           *redis.Client
	HTTPMetrics     *metrics.HTTPMetrics
	CatalogService  catalog.Service
	CartStore       *cartpkg.Store
	PreOrderService preorders.Service
	MetricsHandler  http.Handler
}

func NewRouter(deps Deps) http.Handler {
	cfg, logg := deps.Config, deps.Logger

	// a typed nil must not reach the interface check inside Idempotency
	var idempotencyStore redis.IdempotencyStore
	if deps.Redis != nil {
		idempotencyStore = deps.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
		middleware.Session(logg),
		middleware.Idempotency(idempotencyStore, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB))
	})

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", controllers.ListCars(deps.CatalogService, logg))
			r.Get("/featured", controllers.FeaturedCars(deps.CatalogService, logg))
			r.Get("/{carId}", controllers.GetCar(deps.CatalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.CartStore, logg))
			r.Delete("/", controllers.ClearCart(deps.CartStore, logg))
			r.Post("/items", controllers.AddCartItem(deps.CartStore, deps.CatalogService, logg))
			r.Put("/items/{carId}", controllers.UpdateCartItem(deps.CartStore, logg))
			r.Delete("/items/{carId}", controllers.RemoveCartItem(deps.CartStore, logg))
		})

		r.Post("/pre-orders", controllers.CreatePreOrder(deps.PreOrderService, logg))
	})

	// The admin surface carries no authentication on purpose; it is
	// expected to sit behind an authenticating proxy.
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/cars", controllers.AdminCreateCar(deps.CatalogService, logg))
		r.Route("/pre-orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListPreOrders(deps.PreOrderService, logg))
			r.Post("/{preOrderId}/status", controllers.AdminUpdatePreOrderStatus(deps.PreOrderService, logg))
		})
	})

	return r
}
