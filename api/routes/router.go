package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/begzodnazarov/mebelhub-backend/api/controllers"
	"github.com/begzodnazarov/mebelhub-backend/api/middleware"
	authsvc "github.com/begzodnazarov/mebelhub-backend/internal/auth"
	cartsvc "github.com/begzodnazarov/mebelhub-backend/internal/cart"
	categorysvc "github.com/begzodnazarov/mebelhub-backend/internal/categories"
	checkoutsvc "github.com/begzodnazarov/mebelhub-backend/internal/checkout"
	contentsvc "github.com/begzodnazarov/mebelhub-backend/internal/content"
	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	messagesvc "github.com/begzodnazarov/mebelhub-backend/internal/messages"
	ordersvc "github.com/begzodnazarov/mebelhub-backend/internal/orders"
	productsvc "github.com/begzodnazarov/mebelhub-backend/internal/products"
	reviewsvc "github.com/begzodnazarov/mebelhub-backend/internal/reviews"
	settingsvc "github.com/begzodnazarov/mebelhub-backend/internal/settings"
	"github.com/begzodnazarov/mebelhub-backend/pkg/auth/session"
	"github.com/begzodnazarov/mebelhub-backend/pkg/config"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
	"github.com/begzodnazarov/mebelhub-backend/pkg/metrics"
	"github.com/begzodnazarov/mebelhub-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Generate(context.Context, string) (string, error)
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Services bundles everything the router mounts. Grouping them in a struct
// keeps the main wiring readable as the surface grows.
type Services struct {
	Auth       authsvc.Service
	Products   productsvc.Service
	Categories categorysvc.Service
	Cart       cartsvc.Service
	Checkout   checkoutsvc.Service
	Orders     ordersvc.Service
	Content    contentsvc.Service
	Reviews    reviewsvc.Service
	Messages   messagesvc.Service
	Settings   settingsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions sessionManager,
	httpMetrics *metrics.HTTPMetrics,
	rates *currency.Resolver,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Storefront surface. No auth: the cart is claimed by the opaque
	// X-Cart-Token header instead of an account.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Products, logg))
			r.Get("/{slug}", controllers.GetProductBySlug(svcs.Products, logg))
		})
		r.Get("/categories", controllers.ListCategories(svcs.Categories, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(svcs.Cart, logg))
			r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
			r.Post("/items", controllers.AddCartItem(svcs.Cart, logg))
			r.Patch("/items/{productID}", controllers.UpdateCartItem(svcs.Cart, logg))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(svcs.Cart, logg))
		})
		r.Post("/checkout", controllers.Checkout(svcs.Checkout, logg))
		r.Post("/orders", controllers.CreateOrder(svcs.Orders, logg))

		r.Get("/gallery", controllers.ListGallery(svcs.Content, logg))
		r.Get("/banners", controllers.ListBanners(svcs.Content, logg))
		r.Get("/services", controllers.ListServices(svcs.Content, logg))
		r.Get("/stores", controllers.ListStores(svcs.Content, logg))

		r.Get("/settings", controllers.GetPublicSetting(svcs.Settings, logg))
		r.Get("/reviews", controllers.ListReviews(svcs.Reviews, logg))
		r.Post("/reviews", controllers.SubmitReview(svcs.Reviews, logg))
		r.Post("/messages", controllers.SubmitMessage(svcs.Messages, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
				Post("/login", controllers.AuthLogin(svcs.Auth, logg))
			r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, sessions, logg))
				r.Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
				r.Get("/me", controllers.AuthMe(svcs.Auth, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(svcs.Products, logg))
				r.Post("/", controllers.AdminCreateProduct(svcs.Products, logg))
				r.Get("/{id}", controllers.AdminGetProduct(svcs.Products, logg))
				r.Put("/{id}", controllers.AdminUpdateProduct(svcs.Products, logg))
				r.Delete("/{id}", controllers.AdminDeleteProduct(svcs.Products, logg))
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", controllers.AdminListCategories(svcs.Categories, logg))
				r.Post("/", controllers.AdminCreateCategory(svcs.Categories, logg))
				r.Put("/{id}", controllers.AdminUpdateCategory(svcs.Categories, logg))
				r.Delete("/{id}", controllers.AdminDeleteCategory(svcs.Categories, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(svcs.Orders, logg))
				r.Get("/{id}", controllers.AdminGetOrder(svcs.Orders, logg))
				r.Patch("/{id}/status", controllers.AdminUpdateOrderStatus(svcs.Orders, logg))
				r.Delete("/{id}", controllers.AdminDeleteOrder(svcs.Orders, logg))
			})

			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", controllers.AdminListGallery(svcs.Content, logg))
				r.Post("/", controllers.AdminCreateGalleryItem(svcs.Content, logg))
				r.Put("/{id}", controllers.AdminUpdateGalleryItem(svcs.Content, logg))
				r.Delete("/{id}", controllers.AdminDeleteGalleryItem(svcs.Content, logg))
			})
			r.Route("/banners", func(r chi.Router) {
				r.Get("/", controllers.AdminListBanners(svcs.Content, logg))
				r.Post("/", controllers.AdminCreateBanner(svcs.Content, logg))
				r.Put("/{id}", controllers.AdminUpdateBanner(svcs.Content, logg))
				r.Delete("/{id}", controllers.AdminDeleteBanner(svcs.Content, logg))
			})
			r.Route("/services", func(r chi.Router) {
				r.Get("/", controllers.AdminListServices(svcs.Content, logg))
				r.Post("/", controllers.AdminCreateServiceItem(svcs.Content, logg))
				r.Put("/{id}", controllers.AdminUpdateServiceItem(svcs.Content, logg))
				r.Delete("/{id}", controllers.AdminDeleteServiceItem(svcs.Content, logg))
			})
			r.Route("/stores", func(r chi.Router) {
				r.Get("/", controllers.AdminListStores(svcs.Content, logg))
				r.Post("/", controllers.AdminCreateStoreLocation(svcs.Content, logg))
				r.Put("/{id}", controllers.AdminUpdateStoreLocation(svcs.Content, logg))
				r.Delete("/{id}", controllers.AdminDeleteStoreLocation(svcs.Content, logg))
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", controllers.AdminListReviews(svcs.Reviews, logg))
				r.Put("/{id}", controllers.AdminUpdateReview(svcs.Reviews, logg))
				r.Patch("/{id}/publish", controllers.AdminPublishReview(svcs.Reviews, logg))
				r.Delete("/{id}", controllers.AdminDeleteReview(svcs.Reviews, logg))
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", controllers.AdminListMessages(svcs.Messages, logg))
				r.Patch("/{id}/read", controllers.AdminMarkMessageRead(svcs.Messages, logg))
				r.Delete("/{id}", controllers.AdminDeleteMessage(svcs.Messages, logg))
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", controllers.AdminListSettings(svcs.Settings, logg))
				r.Get("/{key}", controllers.AdminGetSetting(svcs.Settings, logg))
				r.Put("/{key}", controllers.AdminPutSetting(svcs.Settings, logg, func(key string) {
					// the currency rate is the only setting anything caches
					if rates != nil {
						rates.Invalidate()
					}
				}))
			})
		})
	})

	return r
}
