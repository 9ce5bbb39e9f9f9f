package marketplace_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
)

func newTestMarketplace(t *testing.T) (*marketplace.Marketplace, *docstore.Store) {
	t.Helper()
	store, err := docstore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return marketplace.New(store), store
}

// seedProduct writes a product document directly, skipping the seller
// approval flow, and returns its identifier.
func seedProduct(t *testing.T, store *docstore.Store, fields map[string]any) string {
	t.Helper()
	coll := store.Collection(docstore.CollectionProducts, nil)
	if fields["status"] == nil {
		fields["status"] = "approved"
	}
	if fields["seller"] == nil {
		fields["seller"] = "admin"
	}
	entity, err := coll.Create(context.Background(), fields)
	require.NoError(t, err)
	return entity.String(docstore.FieldID)
}

func registerUser(t *testing.T, m *marketplace.Marketplace, email string) string {
	t.Helper()
	user, err := m.Users.Register(context.Background(), marketplace.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return user.ID
}
