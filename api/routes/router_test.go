package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/begzodnazarov/mebelhub-backend/internal/auth"
	cartsvc "github.com/begzodnazarov/mebelhub-backend/internal/cart"
	categorysvc "github.com/begzodnazarov/mebelhub-backend/internal/categories"
	checkoutsvc "github.com/begzodnazarov/mebelhub-backend/internal/checkout"
	contentsvc "github.com/begzodnazarov/mebelhub-backend/internal/content"
	messagesvc "github.com/begzodnazarov/mebelhub-backend/internal/messages"
	ordersvc "github.com/begzodnazarov/mebelhub-backend/internal/orders"
	productsvc "github.com/begzodnazarov/mebelhub-backend/internal/products"
	reviewsvc "github.com/begzodnazarov/mebelhub-backend/internal/reviews"
	settingsvc "github.com/begzodnazarov/mebelhub-backend/internal/settings"
	pkgAuth "github.com/begzodnazarov/mebelhub-backend/pkg/auth"
	"github.com/begzodnazarov/mebelhub-backend/pkg/auth/session"
	"github.com/begzodnazarov/mebelhub-backend/pkg/config"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
	"github.com/begzodnazarov/mebelhub-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionManager struct{}

func (stubSessionManager) HasSession(context.Context, string) (bool, error) { return true, nil }
func (stubSessionManager) Generate(context.Context, string) (string, error) { return "refresh", nil }
func (stubSessionManager) Rotate(context.Context, string, string) (string, string, error) {
	return "", "", nil
}
func (stubSessionManager) Revoke(context.Context, string) error { return nil }

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return &authsvc.LoginResponse{}, nil
}
func (stubAuthService) Refresh(context.Context, authsvc.RefreshRequest) (*authsvc.RefreshResponse, error) {
	return &authsvc.RefreshResponse{}, nil
}
func (stubAuthService) Logout(context.Context, string) error { return nil }
func (stubAuthService) Me(context.Context, uuid.UUID) (*authsvc.AdminDTO, error) {
	return &authsvc.AdminDTO{}, nil
}

type stubProductService struct{}

func (stubProductService) List(context.Context, string, productsvc.ListFilters, pagination.Params) (*productsvc.ProductListResult, error) {
	return &productsvc.ProductListResult{}, nil
}
func (stubProductService) GetBySlug(context.Context, string, string) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{}, nil
}
func (stubProductService) AdminList(context.Context, pagination.Params) (*productsvc.AdminProductListResult, error) {
	return &productsvc.AdminProductListResult{}, nil
}
func (stubProductService) AdminGet(context.Context, uuid.UUID) (*productsvc.AdminProductDTO, error) {
	return &productsvc.AdminProductDTO{}, nil
}
func (stubProductService) AdminCreate(context.Context, productsvc.CreateProductInput) (*productsvc.AdminProductDTO, error) {
	return &productsvc.AdminProductDTO{}, nil
}
func (stubProductService) AdminUpdate(context.Context, uuid.UUID, productsvc.UpdateProductInput) (*productsvc.AdminProductDTO, error) {
	return &productsvc.AdminProductDTO{}, nil
}
func (stubProductService) AdminDelete(context.Context, uuid.UUID) error { return nil }

type stubCategoryService struct{}

func (stubCategoryService) List(context.Context, string) ([]categorysvc.CategoryDTO, error) {
	return nil, nil
}
func (stubCategoryService) AdminList(context.Context) ([]categorysvc.AdminCategoryDTO, error) {
	return nil, nil
}
func (stubCategoryService) AdminCreate(context.Context, categorysvc.CategoryInput) (*categorysvc.AdminCategoryDTO, error) {
	return &categorysvc.AdminCategoryDTO{}, nil
}
func (stubCategoryService) AdminUpdate(context.Context, uuid.UUID, categorysvc.CategoryInput) (*categorysvc.AdminCategoryDTO, error) {
	return &categorysvc.AdminCategoryDTO{}, nil
}
func (stubCategoryService) AdminDelete(context.Context, uuid.UUID) error { return nil }

type stubCartService struct{}

func (stubCartService) Fetch(context.Context, string, string) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}
func (stubCartService) AddItem(context.Context, string, string, uuid.UUID, int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}
func (stubCartService) UpdateQuantity(context.Context, string, string, uuid.UUID, int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}
func (stubCartService) RemoveItem(context.Context, string, string, uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}
func (stubCartService) Clear(context.Context, string) error { return nil }
func (stubCartService) Snapshot(context.Context, string) (*cartsvc.Items, error) {
	return cartsvc.NewItems(nil), nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Checkout(context.Context, string, string, checkoutsvc.Input) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}

type stubOrderService struct{}

func (stubOrderService) Create(context.Context, ordersvc.CreateInput) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}
func (stubOrderService) Submit(context.Context, *models.Order) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}
func (stubOrderService) AdminList(context.Context, ordersvc.ListFilters, pagination.Params) (*ordersvc.OrderListResult, error) {
	return &ordersvc.OrderListResult{}, nil
}
func (stubOrderService) AdminGet(context.Context, uuid.UUID) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}
func (stubOrderService) AdminUpdateStatus(context.Context, uuid.UUID, enums.OrderStatus) (*ordersvc.OrderDTO, error) {
	return &ordersvc.OrderDTO{}, nil
}
func (stubOrderService) AdminDelete(context.Context, uuid.UUID) error { return nil }

type stubContentService struct{}

func (stubContentService) ListGallery(context.Context, string) ([]contentsvc.GalleryItemDTO, error) {
	return nil, nil
}
func (stubContentService) ListBanners(context.Context, string) ([]contentsvc.BannerDTO, error) {
	return nil, nil
}
func (stubContentService) ListServices(context.Context, string) ([]contentsvc.ServiceItemDTO, error) {
	return nil, nil
}
func (stubContentService) ListStores(context.Context, string) ([]contentsvc.StoreLocationDTO, error) {
	return nil, nil
}
func (stubContentService) AdminListGallery(context.Context) ([]contentsvc.AdminGalleryItemDTO, error) {
	return nil, nil
}
func (stubContentService) AdminCreateGalleryItem(context.Context, contentsvc.GalleryInput) (*contentsvc.AdminGalleryItemDTO, error) {
	return &contentsvc.AdminGalleryItemDTO{}, nil
}
func (stubContentService) AdminUpdateGalleryItem(context.Context, uuid.UUID, contentsvc.GalleryInput) (*contentsvc.AdminGalleryItemDTO, error) {
	return &contentsvc.AdminGalleryItemDTO{}, nil
}
func (stubContentService) AdminDeleteGalleryItem(context.Context, uuid.UUID) error { return nil }
func (stubContentService) AdminListBanners(context.Context) ([]contentsvc.AdminBannerDTO, error) {
	return nil, nil
}
func (stubContentService) AdminCreateBanner(context.Context, contentsvc.BannerInput) (*contentsvc.AdminBannerDTO, error) {
	return &contentsvc.AdminBannerDTO{}, nil
}
func (stubContentService) AdminUpdateBanner(context.Context, uuid.UUID, contentsvc.BannerInput) (*contentsvc.AdminBannerDTO, error) {
	return &contentsvc.AdminBannerDTO{}, nil
}
func (stubContentService) AdminDeleteBanner(context.Context, uuid.UUID) error { return nil }
func (stubContentService) AdminListServices(context.Context) ([]contentsvc.AdminServiceItemDTO, error) {
	return nil, nil
}
func (stubContentService) AdminCreateServiceItem(context.Context, contentsvc.ServiceItemInput) (*contentsvc.AdminServiceItemDTO, error) {
	return &contentsvc.AdminServiceItemDTO{}, nil
}
func (stubContentService) AdminUpdateServiceItem(context.Context, uuid.UUID, contentsvc.ServiceItemInput) (*contentsvc.AdminServiceItemDTO, error) {
	return &contentsvc.AdminServiceItemDTO{}, nil
}
func (stubContentService) AdminDeleteServiceItem(context.Context, uuid.UUID) error { return nil }
func (stubContentService) AdminListStores(context.Context) ([]contentsvc.AdminStoreLocationDTO, error) {
	return nil, nil
}
func (stubContentService) AdminCreateStoreLocation(context.Context, contentsvc.StoreLocationInput) (*contentsvc.AdminStoreLocationDTO, error) {
	return &contentsvc.AdminStoreLocationDTO{}, nil
}
func (stubContentService) AdminUpdateStoreLocation(context.Context, uuid.UUID, contentsvc.StoreLocationInput) (*contentsvc.AdminStoreLocationDTO, error) {
	return &contentsvc.AdminStoreLocationDTO{}, nil
}
func (stubContentService) AdminDeleteStoreLocation(context.Context, uuid.UUID) error { return nil }

type stubReviewService struct{}

func (stubReviewService) ListPublished(context.Context) ([]reviewsvc.ReviewDTO, error) {
	return nil, nil
}
func (stubReviewService) Submit(context.Context, reviewsvc.SubmitInput) (*reviewsvc.ReviewDTO, error) {
	return &reviewsvc.ReviewDTO{}, nil
}
func (stubReviewService) AdminList(context.Context) ([]reviewsvc.AdminReviewDTO, error) {
	return nil, nil
}
func (stubReviewService) AdminUpdate(context.Context, uuid.UUID, reviewsvc.AdminUpdateInput) (*reviewsvc.AdminReviewDTO, error) {
	return &reviewsvc.AdminReviewDTO{}, nil
}
func (stubReviewService) AdminSetPublished(context.Context, uuid.UUID, bool) (*reviewsvc.AdminReviewDTO, error) {
	return &reviewsvc.AdminReviewDTO{}, nil
}
func (stubReviewService) AdminDelete(context.Context, uuid.UUID) error { return nil }

type stubMessageService struct{}

func (stubMessageService) Submit(context.Context, messagesvc.SubmitInput) (*messagesvc.MessageDTO, error) {
	return &messagesvc.MessageDTO{}, nil
}
func (stubMessageService) AdminList(context.Context) ([]messagesvc.MessageDTO, error) {
	return nil, nil
}
func (stubMessageService) AdminMarkRead(context.Context, uuid.UUID, bool) (*messagesvc.MessageDTO, error) {
	return &messagesvc.MessageDTO{}, nil
}
func (stubMessageService) AdminDelete(context.Context, uuid.UUID) error { return nil }

type stubSettingsService struct{}

func (stubSettingsService) Get(context.Context, string) (*settingsvc.SettingDTO, error) {
	return &settingsvc.SettingDTO{}, nil
}
func (stubSettingsService) Put(context.Context, string, string) (*settingsvc.SettingDTO, error) {
	return &settingsvc.SettingDTO{}, nil
}
func (stubSettingsService) List(context.Context) ([]settingsvc.SettingDTO, error) { return nil, nil }
func (stubSettingsService) Value(context.Context, string) (string, error)         { return "", nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*redis.Client)(nil),
		stubSessionManager{},
		nil,
		nil,
		Services{
			Auth:       stubAuthService{},
			Products:   stubProductService{},
			Categories: stubCategoryService{},
			Cart:       stubCartService{},
			Checkout:   stubCheckoutService{},
			Orders:     stubOrderService{},
			Content:    stubContentService{},
			Reviews:    stubReviewService{},
			Messages:   stubMessageService{},
			Settings:   stubSettingsService{},
		},
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		AdminID: uuid.New(),
		Email:   "admin@mebelhub.uz",
		JTI:     session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	paths := []string{
		"/api/v1/products",
		"/api/v1/categories",
		"/api/v1/gallery",
		"/api/v1/banners",
		"/api/v1/services",
		"/api/v1/stores",
		"/api/v1/reviews",
		"/api/v1/cart",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestAdminGroupRejectsMissingToken(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestAdminLoginNeedsNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	body := strings.NewReader(`{"email":"admin@mebelhub.uz","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for login got %d", resp.Code)
	}
}

func TestAuthMeRequiresToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, "/api/admin/v1/auth/me", nil)
	authed.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
	if env := resp.Header().Get("X-MebelHub-Env"); env != "test" {
		t.Fatalf("expected env header, got %q", env)
	}
}

func TestCheckoutIssuesValidationForEmptyBody(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty checkout payload got %d", resp.Code)
	}
}
