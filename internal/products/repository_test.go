package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE categories (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name_uz TEXT NOT NULL,
  name_ru TEXT NOT NULL DEFAULT '',
  image_url TEXT,
  is_visible INTEGER NOT NULL DEFAULT 1,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	products := `
CREATE TABLE products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name_uz TEXT NOT NULL,
  name_ru TEXT NOT NULL DEFAULT '',
  description_uz TEXT,
  description_ru TEXT,
  category_id TEXT,
  price_cents INTEGER NOT NULL,
  image_urls TEXT NOT NULL DEFAULT '{}',
  is_visible INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(products).Error)
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()

	row := &models.Category{ID: uuid.New(), Slug: slug, NameUz: slug}
	require.NoError(t, db.Create(row).Error)
	return row
}

type productSeed struct {
	slug      string
	visible   bool
	featured  bool
	category  *uuid.UUID
	sortOrder int
	createdAt time.Time
}

func seedProduct(t *testing.T, db *gorm.DB, seed productSeed) *models.Product {
	t.Helper()

	row := &models.Product{
		ID:         uuid.New(),
		Slug:       seed.slug,
		NameUz:     seed.slug,
		CategoryID: seed.category,
		PriceCents: 100000,
		ImageURLs:  pq.StringArray{},
		IsVisible:  seed.visible,
		IsFeatured: seed.featured,
		SortOrder:  seed.sortOrder,
		CreatedAt:  seed.createdAt,
		UpdatedAt:  seed.createdAt,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestProductRepositoryListVisibleSkipsHidden(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	shown := seedProduct(t, db, productSeed{slug: "eman-stol", visible: true, createdAt: base})
	seedProduct(t, db, productSeed{slug: "yashirin-shkaf", visible: false, createdAt: base.Add(time.Minute)})

	rows, err := repo.ListVisible(ctx, ListFilters{}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, shown.ID, rows[0].ID)
}

func TestProductRepositoryListVisibleByCategorySlug(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	kitchen := seedCategory(t, db, "oshxona")
	bedroom := seedCategory(t, db, "yotoqxona")

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	inKitchen := seedProduct(t, db, productSeed{slug: "oshxona-stol", visible: true, category: &kitchen.ID, createdAt: base})
	seedProduct(t, db, productSeed{slug: "krovat", visible: true, category: &bedroom.ID, createdAt: base.Add(time.Minute)})

	rows, err := repo.ListVisible(ctx, ListFilters{CategorySlug: "oshxona"}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inKitchen.ID, rows[0].ID)
}

func TestProductRepositoryListVisibleFeaturedOnly(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	featured := seedProduct(t, db, productSeed{slug: "divan-premium", visible: true, featured: true, createdAt: base})
	seedProduct(t, db, productSeed{slug: "oddiy-stul", visible: true, createdAt: base.Add(time.Minute)})

	rows, err := repo.ListVisible(ctx, ListFilters{FeaturedOnly: true}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, featured.ID, rows[0].ID)
}

func TestProductRepositoryListVisibleOrdersBySortOrder(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	second := seedProduct(t, db, productSeed{slug: "ikkinchi", visible: true, sortOrder: 2, createdAt: base.Add(time.Minute)})
	first := seedProduct(t, db, productSeed{slug: "birinchi", visible: true, sortOrder: 1, createdAt: base})

	rows, err := repo.ListVisible(ctx, ListFilters{}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
}

func TestProductRepositoryListVisibleCursorCrossesSortOrders(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	stul := seedProduct(t, db, productSeed{slug: "stul", visible: true, sortOrder: 0, createdAt: base})
	stol := seedProduct(t, db, productSeed{slug: "stol", visible: true, sortOrder: 1, createdAt: base.Add(time.Minute)})
	shkaf := seedProduct(t, db, productSeed{slug: "shkaf", visible: true, sortOrder: 1, createdAt: base.Add(2 * time.Minute)})

	first, err := repo.ListVisible(ctx, ListFilters{}, 1, nil)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, stul.ID, first[0].ID)

	// The newer row in the next sort position must still be reachable.
	cursor := &pagination.SortCursor{SortOrder: first[0].SortOrder, CreatedAt: first[0].CreatedAt, ID: first[0].ID}
	second, err := repo.ListVisible(ctx, ListFilters{}, 1, cursor)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, shkaf.ID, second[0].ID)

	cursor = &pagination.SortCursor{SortOrder: second[0].SortOrder, CreatedAt: second[0].CreatedAt, ID: second[0].ID}
	third, err := repo.ListVisible(ctx, ListFilters{}, 1, cursor)
	require.NoError(t, err)
	require.Len(t, third, 1)
	assert.Equal(t, stol.ID, third[0].ID)

	cursor = &pagination.SortCursor{SortOrder: third[0].SortOrder, CreatedAt: third[0].CreatedAt, ID: third[0].ID}
	rest, err := repo.ListVisible(ctx, ListFilters{}, 1, cursor)
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestProductRepositoryListAllCursor(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	oldest := seedProduct(t, db, productSeed{slug: "eski", visible: false, createdAt: base})
	middle := seedProduct(t, db, productSeed{slug: "orta", visible: true, createdAt: base.Add(time.Minute)})
	newest := seedProduct(t, db, productSeed{slug: "yangi", visible: true, createdAt: base.Add(2 * time.Minute)})

	first, err := repo.ListAll(ctx, 2, nil)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, newest.ID, first[0].ID)
	assert.Equal(t, middle.ID, first[1].ID)

	next, err := repo.ListAll(ctx, 2, &pagination.Cursor{CreatedAt: first[1].CreatedAt, ID: first[1].ID})
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, oldest.ID, next[0].ID)
}

func TestProductRepositoryFindVisibleBySlug(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "mehmonxona")
	seedProduct(t, db, productSeed{slug: "divan", visible: true, category: &category.ID, createdAt: time.Now().UTC()})
	seedProduct(t, db, productSeed{slug: "yashirin", visible: false, createdAt: time.Now().UTC()})

	found, err := repo.FindVisibleBySlug(ctx, "divan")
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	assert.Equal(t, "mehmonxona", found.Category.Slug)

	_, err = repo.FindVisibleBySlug(ctx, "yashirin")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
