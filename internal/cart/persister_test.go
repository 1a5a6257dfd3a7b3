package cart

import (
	"context"
	"testing"
)

func TestMemoryPersisterRoundTrip(t *testing.T) {
	p := NewMemoryPersister()
	ctx := context.Background()

	items := NewItems(nil)
	items.Add(line("p1", 1500), 2)
	items.Add(line("p2", 900), 1)

	if err := p.Save(ctx, "tok", items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := p.Load(ctx, "tok")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 || loaded.TotalCents() != items.TotalCents() {
		t.Fatalf("round trip mismatch: %+v", loaded.Lines())
	}

	if err := p.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	emptied, err := p.Load(ctx, "tok")
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if emptied.Len() != 0 {
		t.Fatalf("expected empty cart after delete, got %d lines", emptied.Len())
	}
}

func TestMemoryPersisterUnknownTokenIsEmpty(t *testing.T) {
	p := NewMemoryPersister()
	loaded, err := p.Load(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 0 {
		t.Fatal("expected empty cart for unknown token")
	}
}
