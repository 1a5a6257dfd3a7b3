package pagination_test

import (
	"testing"
	"time"

	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
	"github.com/google/uuid"
)

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, pagination.DefaultLimit},
		{-5, pagination.DefaultLimit},
		{10, 10},
		{500, pagination.MaxLimit},
	}
	for _, tc := range cases {
		if got := pagination.NormalizeLimit(tc.in); got != tc.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCursorRoundTrip(t *testing.T) {
	want := pagination.Cursor{
		CreatedAt: time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC),
		ID:        uuid.New(),
	}

	encoded := pagination.EncodeCursor(want)
	got, err := pagination.ParseCursor(encoded)
	if err != nil {
		t.Fatalf("ParseCursor: %v", err)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
		t.Fatalf("cursor mismatch: got %+v want %+v", got, want)
	}
}

func TestParseCursorEmptyAndInvalid(t *testing.T) {
	if cursor, err := pagination.ParseCursor("  "); err != nil || cursor != nil {
		t.Fatalf("expected nil cursor for blank input, got %v %v", cursor, err)
	}
	if _, err := pagination.ParseCursor("not-base64!!"); err == nil {
		t.Fatal("expected error for invalid cursor")
	}
}

func TestSortCursorRoundTrip(t *testing.T) {
	want := pagination.SortCursor{
		SortOrder: 3,
		CreatedAt: time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC),
		ID:        uuid.New(),
	}

	encoded := pagination.EncodeSortCursor(want)
	got, err := pagination.ParseSortCursor(encoded)
	if err != nil {
		t.Fatalf("ParseSortCursor: %v", err)
	}
	if got.SortOrder != want.SortOrder || !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
		t.Fatalf("cursor mismatch: got %+v want %+v", got, want)
	}
}

func TestParseSortCursorRejectsPlainCursor(t *testing.T) {
	plain := pagination.EncodeCursor(pagination.Cursor{CreatedAt: time.Now().UTC(), ID: uuid.New()})
	if _, err := pagination.ParseSortCursor(plain); err == nil {
		t.Fatal("expected error for a cursor without a sort position")
	}
}
