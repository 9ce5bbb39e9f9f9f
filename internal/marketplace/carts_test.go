package marketplace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
)

func TestCartCreatedOnFirstAccess(t *testing.T) {
	m, _ := newTestMarketplace(t)
	ctx := context.Background()

	cart, err := m.Carts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Equal(t, "user-1", cart.User)
	assert.Empty(t, cart.Items)

	again, err := m.Carts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID, "second read must reuse the same cart")
}

func TestCartAddMergesSameLine(t *testing.T) {
	m, store := newTestMarketplace(t)
	ctx := context.Background()
	pid := seedProduct(t, store, map[string]any{"name": "Apples", "price": 120.0, "category": "grocery", "stock": 40})

	cart, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	itemID := cart.Items[0].ID
	assert.NotEmpty(t, itemID)

	cart, err = m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "same product and terms merge into one line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, itemID, cart.Items[0].ID)
}

func TestCartRentalTermsKeepSeparateLines(t *testing.T) {
	m, store := newTestMarketplace(t)
	ctx := context.Background()
	pid := seedProduct(t, store, map[string]any{"name": "Tent", "price": 5200.0, "category": "rental", "stock": 4, "isRental": true, "rentalPricePerDay": 200.0})

	_, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid, Quantity: 1, IsRental: true, RentalDays: 2})
	require.NoError(t, err)
	cart, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid, Quantity: 1, IsRental: true, RentalDays: 5})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2, "different rental durations are different lines")
}

func TestCartAddUnknownProduct(t *testing.T) {
	m, _ := newTestMarketplace(t)

	_, err := m.Carts.AddItem(context.Background(), "user-1", marketplace.AddItemInput{ProductID: "ghost", Quantity: 1})
	assert.ErrorIs(t, err, marketplace.ErrProductNotFound)
}

func TestCartUpdateItemByIdentifier(t *testing.T) {
	m, store := newTestMarketplace(t)
	ctx := context.Background()
	pid := seedProduct(t, store, map[string]any{"name": "Bread", "price": 45.0, "category": "grocery", "stock": 25})

	cart, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid, Quantity: 1})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = m.Carts.UpdateItem(ctx, "user-1", itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	cart, err = m.Carts.UpdateItem(ctx, "user-1", itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "zero quantity removes the line")

	_, err = m.Carts.UpdateItem(ctx, "user-1", itemID, 3)
	assert.ErrorIs(t, err, marketplace.ErrItemNotFound)
}

func TestCartRemoveItem(t *testing.T) {
	m, store := newTestMarketplace(t)
	ctx := context.Background()
	pid1 := seedProduct(t, store, map[string]any{"name": "Pen", "price": 20.0, "category": "stationery", "stock": 10})
	pid2 := seedProduct(t, store, map[string]any{"name": "Paper", "price": 220.0, "category": "stationery", "stock": 10})

	_, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid1, Quantity: 1})
	require.NoError(t, err)
	cart, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid2, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	cart, err = m.Carts.RemoveItem(ctx, "user-1", cart.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// Unknown identifiers are a no-op.
	cart, err = m.Carts.RemoveItem(ctx, "user-1", "not-there")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartPopulateDropsMissingProducts(t *testing.T) {
	m, store := newTestMarketplace(t)
	ctx := context.Background()
	pid1 := seedProduct(t, store, map[string]any{"name": "Keeps", "price": 10.0, "category": "grocery", "stock": 5})
	pid2 := seedProduct(t, store, map[string]any{"name": "Goes", "price": 10.0, "category": "grocery", "stock": 5})

	_, err := m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid1, Quantity: 1})
	require.NoError(t, err)
	_, err = m.Carts.AddItem(ctx, "user-1", marketplace.AddItemInput{ProductID: pid2, Quantity: 1})
	require.NoError(t, err)

	products := store.Collection(docstore.CollectionProducts, nil)
	require.NoError(t, products.DeleteByID(ctx, pid2))

	cart, err := m.Carts.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "lines for deleted products disappear from the view")
	assert.Equal(t, "Keeps", cart.Items[0].Product.Name)
}

func TestCartClearWithoutCart(t *testing.T) {
	m, _ := newTestMarketplace(t)
	assert.NoError(t, m.Carts.Clear(context.Background(), "never-shopped"))
}
