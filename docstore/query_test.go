package docstore_test

import (
	"context"
	"testing"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
)

func seedProducts(t *testing.T, c *docstore.Collection, items []map[string]any) {
	t.Helper()
	if _, err := c.InsertMany(context.Background(), items); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
}

func TestFilterLiteralEquality(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)
	seedProducts(t, products, []map[string]any{
		{"name": "pens", "category": "stationery", "price": 20},
		{"name": "chips", "category": "grocery", "price": 30},
		{"name": "pencils", "category": "stationery", "price": 10},
	})

	got, err := products.Find(docstore.Filter{"category": "stationery"}).Find(ctx)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, e := range got {
		if e.String("category") != "stationery" {
			t.Errorf("unexpected category %q", e.String("category"))
		}
	}

	// Numeric literals match regardless of int/float representation.
	byPrice, err := products.Find(docstore.Filter{"price": 30}).Find(ctx)
	if err != nil {
		t.Fatalf("find by price failed: %v", err)
	}
	if len(byPrice) != 1 || byPrice[0].String("name") != "chips" {
		t.Errorf("expected exactly chips for price=30, got %d results", len(byPrice))
	}
}

func TestFilterRegexCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)
	seedProducts(t, products, []map[string]any{
		{"name": "USB Cable"},
		{"name": "usb hub"},
		{"name": "Desk Lamp"},
	})

	got, err := products.Find(docstore.Filter{"name": docstore.Regex("usb", "i")}).Find(ctx)
	if err != nil {
		t.Fatalf("regex find failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 case-insensitive matches, got %d", len(got))
	}

	caseSensitive, err := products.Find(docstore.Filter{"name": docstore.Regex("usb", "")}).Find(ctx)
	if err != nil {
		t.Fatalf("regex find failed: %v", err)
	}
	if len(caseSensitive) != 1 {
		t.Errorf("expected 1 case-sensitive match, got %d", len(caseSensitive))
	}
}

func TestFilterRegexInvalidPatternFails(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	_, err := products.Find(docstore.Filter{"name": docstore.Regex("(", "")}).Find(ctx)
	if err == nil {
		t.Fatal("expected error for invalid regex pattern")
	}
}

func TestFilterIn(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)
	seedProducts(t, products, []map[string]any{
		{"name": "a", "category": "grocery"},
		{"name": "b", "category": "rental"},
		{"name": "c", "category": "stationery"},
	})

	got, err := products.Find(docstore.Filter{
		"category": docstore.In("grocery", "rental"),
	}).Find(ctx)
	if err != nil {
		t.Fatalf("in find failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}
}

func TestUnknownOperatorIsIgnored(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)
	seedProducts(t, products, []map[string]any{
		{"name": "a", "price": 10},
		{"name": "b", "price": 99},
	})

	// $gt is not implemented: the field becomes unconstrained and every
	// document matches.
	got, err := products.Find(docstore.Filter{
		"price": docstore.Cond{"$gt": 50},
	}).Find(ctx)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected unsupported operator to be ignored, got %d matches", len(got))
	}
}

// Cursor ops apply in attachment order: limit-then-sort truncates the first
// two documents in store order and only then sorts them, which is a
// different answer than the global top two.
func TestLimitBeforeSortOrderSensitivity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)
	seedProducts(t, products, []map[string]any{
		{"name": "p10", "price": 10},
		{"name": "p30", "price": 30},
		{"name": "p20", "price": 20},
		{"name": "p5", "price": 5},
	})

	got, err := products.Find(docstore.Filter{}).
		Limit(2).
		Sort("price", docstore.Descending).
		Find(ctx)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Float64("price") != 30 || got[1].Float64("price") != 10 {
		t.Errorf("expected [30 10], got [%v %v]", got[0].Float64("price"), got[1].Float64("price"))
	}

	// The opposite attachment order yields the global top two.
	global, err := products.Find(docstore.Filter{}).
		Sort("price", docstore.Descending).
		Limit(2).
		Find(ctx)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if global[0].Float64("price") != 30 || global[1].Float64("price") != 20 {
		t.Errorf("expected [30 20], got [%v %v]", global[0].Float64("price"), global[1].Float64("price"))
	}
}

func TestSortStableOnEqualKeys(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)
	seedProducts(t, products, []map[string]any{
		{"name": "first", "price": 10},
		{"name": "second", "price": 10},
		{"name": "third", "price": 10},
	})

	got, err := products.Find(docstore.Filter{}).Sort("price", docstore.Ascending).Find(ctx)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, e := range got {
		if e.String("name") != want[i] {
			t.Errorf("position %d: expected %q, got %q (sort not stable)", i, want[i], e.String("name"))
		}
	}
}

// Building a plan is pure: the store is only read at resolution time, and
// resolving twice re-reads it.
func TestPlanIsLazyAndRereadsOnResolve(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	plan := products.Find(docstore.Filter{"category": "grocery"})

	// Created after the plan was built, still visible on resolution.
	if _, err := products.Create(ctx, map[string]any{"name": "chips", "category": "grocery"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := plan.Find(ctx)
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 result on first resolution, got %d", len(first))
	}

	if _, err := products.Create(ctx, map[string]any{"name": "soda", "category": "grocery"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second, err := plan.Find(ctx)
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("expected second resolution to re-read the store, got %d results", len(second))
	}
}

func TestOneReturnsNotFoundOnNoMatch(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	_, err := products.Find(docstore.Filter{"name": "missing"}).One(ctx)
	if err != docstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
