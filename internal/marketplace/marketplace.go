// Package marketplace is the composition layer between the route handlers
// and the document store. It owns the per-entity collection accessors, the
// business rules (stock, ownership, cart identity) and the manual joins that
// stand in for a native populate.
package marketplace

import (
	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
)

// Marketplace bundles the per-entity services over one store handle.
type Marketplace struct {
	Users    *UserService
	Products *ProductService
	Carts    *CartService
	Orders   *OrderService
	Messages *MessageService
}

// New wires the services. Defaults tables are advisory: they fill omitted
// fields at create time and enforce nothing.
func New(store *docstore.Store) *Marketplace {
	users := store.Collection(docstore.CollectionUsers, map[string]any{
		"role": "student",
	})
	products := store.Collection(docstore.CollectionProducts, map[string]any{
		"status":   "approved",
		"seller":   "admin",
		"stock":    0,
		"featured": false,
		"isRental": false,
	})
	carts := store.Collection(docstore.CollectionCarts, nil)
	orders := store.Collection(docstore.CollectionOrders, map[string]any{
		"paymentStatus": "pending",
		"orderStatus":   "placed",
	})
	messages := store.Collection(docstore.CollectionMessages, nil)

	productSvc := &ProductService{products: products}
	cartSvc := &CartService{carts: carts, products: products}
	return &Marketplace{
		Users:    &UserService{users: users},
		Products: productSvc,
		Carts:    cartSvc,
		Orders:   &OrderService{orders: orders, users: users, carts: cartSvc, products: products},
		Messages: &MessageService{messages: messages},
	}
}
