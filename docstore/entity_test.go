package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
)

func TestSaveWritesBackMutatedFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	created, err := products.Create(ctx, map[string]any{"name": "kettle", "stock": 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Set("stock", 3)
	saved, err := created.Save(ctx)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.Int("stock") != 3 {
		t.Errorf("expected saved stock 3, got %d", saved.Int("stock"))
	}
	if saved.ID() != created.ID() {
		t.Errorf("save must not reassign _id")
	}
	if saved.String(docstore.FieldCreatedAt) != created.String(docstore.FieldCreatedAt) {
		t.Errorf("save must not change createdAt")
	}

	// The write-back is visible to an independent read.
	fresh, err := products.FindByID(created.ID()).One(ctx)
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}
	if fresh.Int("stock") != 3 {
		t.Errorf("expected persisted stock 3, got %d", fresh.Int("stock"))
	}
}

func TestSaveAfterDeleteFailsWithNotFound(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	created, err := products.Create(ctx, map[string]any{"name": "kettle"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := products.DeleteMany(ctx, docstore.Filter{"_id": created.ID()}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	created.Set("name", "resurrected kettle")
	if _, err := created.Save(ctx); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The save must not have recreated the record either.
	count, err := products.Find(docstore.Filter{}).Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty collection after failed save, got %d documents", count)
	}
}

func TestMatchPassword(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	users := store.Collection(docstore.CollectionUsers, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	created, err := users.Create(ctx, map[string]any{
		"email":    "amy@campus.edu",
		"password": string(hash),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if !created.MatchPassword("s3cret") {
		t.Error("expected correct password to match")
	}
	if created.MatchPassword("wrong") {
		t.Error("expected incorrect password to not match")
	}

	// The stored credential is never the plaintext.
	if created.String("password") == "s3cret" {
		t.Error("credential stored as plaintext")
	}

	// A plaintext credential in the store never matches anything.
	legacy, err := users.Create(ctx, map[string]any{
		"email":    "bob@campus.edu",
		"password": "plaintext",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if legacy.MatchPassword("plaintext") {
		t.Error("plaintext comparison must not be supported")
	}
}

func TestEntityMarshalsAsDocument(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	created, err := products.Create(ctx, map[string]any{"name": "kettle", "price": 450})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	raw, err := json.Marshal(created)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["name"] != "kettle" {
		t.Errorf("expected document fields in JSON, got %s", raw)
	}
	if _, ok := decoded["coll"]; ok {
		t.Error("wrapper state leaked into serialized output")
	}
}

func TestEntityDecode(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	products := store.Collection(docstore.CollectionProducts, nil)

	created, err := products.Create(ctx, map[string]any{
		"name":  "kettle",
		"price": 450,
		"stock": 5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var view struct {
		ID    string  `json:"_id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Stock int     `json:"stock"`
	}
	if err := created.Decode(&view); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if view.ID != created.ID() || view.Name != "kettle" || view.Price != 450 || view.Stock != 5 {
		t.Errorf("decoded view differs: %+v", view)
	}
}
