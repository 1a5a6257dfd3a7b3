package orders

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
	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE orders (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  product_name TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  design_files TEXT NOT NULL DEFAULT '{}',
  items TEXT,
  total_cents INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'new',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, status enums.OrderStatus, createdAt time.Time) *models.Order {
	t.Helper()

	row := &models.Order{
		ID:           uuid.New(),
		CustomerName: "Dilshod Karimov",
		Email:        "dilshod@example.uz",
		Phone:        "+998901234567",
		Status:       status,
		DesignFiles:  pq.StringArray{},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestOrderRepositoryCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Order{
		ID:           uuid.New(),
		CustomerName: "Gulnora Tosheva",
		Email:        "gulnora@example.uz",
		Phone:        "+998935550101",
		ProductName:  "Oshxona garnituri",
		DesignFiles:  pq.StringArray{"https://cdn.example.uz/sketch.pdf"},
		Items: []models.OrderItem{
			{ProductID: uuid.NewString(), Name: "Eman stol", PriceCents: 120000, Quantity: 1},
		},
		TotalCents: 120000,
		Status:     enums.OrderStatusNew,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gulnora Tosheva", found.CustomerName)
	assert.Equal(t, enums.OrderStatusNew, found.Status)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Eman stol", found.Items[0].Name)
	require.Len(t, found.DesignFiles, 1)
}

func TestOrderRepositoryListFiltersByStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, db, enums.OrderStatusNew, base)
	processing := seedOrder(t, db, enums.OrderStatusProcessing, base.Add(time.Minute))
	seedOrder(t, db, enums.OrderStatusCompleted, base.Add(2*time.Minute))

	status := enums.OrderStatusProcessing
	rows, err := repo.List(ctx, ListFilters{Status: &status}, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, processing.ID, rows[0].ID)
}

func TestOrderRepositoryListCursorWalksNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	oldest := seedOrder(t, db, enums.OrderStatusNew, base)
	middle := seedOrder(t, db, enums.OrderStatusNew, base.Add(time.Minute))
	newest := seedOrder(t, db, enums.OrderStatusNew, base.Add(2*time.Minute))

	first, err := repo.List(ctx, ListFilters{}, 2, nil)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, newest.ID, first[0].ID)
	assert.Equal(t, middle.ID, first[1].ID)

	next, err := repo.List(ctx, ListFilters{}, 2, &pagination.Cursor{
		CreatedAt: first[1].CreatedAt,
		ID:        first[1].ID,
	})
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, oldest.ID, next[0].ID)
}

func TestOrderRepositoryDelete(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	row := seedOrder(t, db, enums.OrderStatusNew, time.Now().UTC())
	require.NoError(t, repo.Delete(ctx, row.ID))

	_, err := repo.FindByID(ctx, row.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
