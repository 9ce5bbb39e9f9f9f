package marketplace

import (
	"context"
	"errors"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/models"
)

// CartService keeps one cart per user, created on first access. Items are
// addressed by their own identifier, never by position.
type CartService struct {
	carts    *docstore.Collection
	products *docstore.Collection
}

// AddItemInput describes a line to merge into the cart.
type AddItemInput struct {
	ProductID  string
	Quantity   int
	IsRental   bool
	RentalDays int
}

// getOrCreate finds the user's cart or creates an empty one. Two racing
// first reads are serialized by the store's writer lock on create, but the
// find-or-create itself is not unique-constrained; the earliest cart wins on
// subsequent reads because One takes the first match in store order.
func (s *CartService) getOrCreate(ctx context.Context, userID string) (*docstore.Entity, error) {
	entity, err := s.carts.FindOne(ctx, docstore.Filter{"user": userID})
	if errors.Is(err, docstore.ErrNotFound) {
		return s.carts.Create(ctx, map[string]any{"user": userID, "items": []models.CartItem{}})
	}
	return entity, err
}

// Get returns the user's cart with product references expanded. Items whose
// product no longer exists are dropped from the view, not reported.
func (s *CartService) Get(ctx context.Context, userID string) (models.PopulatedCart, error) {
	entity, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return models.PopulatedCart{}, err
	}
	return s.populate(ctx, entity)
}

// AddItem merges a line into the cart: an existing line with the same
// product and rental terms gets its quantity bumped, anything else is
// appended as a new line with a fresh item identifier.
func (s *CartService) AddItem(ctx context.Context, userID string, in AddItemInput) (models.PopulatedCart, error) {
	if _, err := s.products.FindByID(in.ProductID).One(ctx); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return models.PopulatedCart{}, ErrProductNotFound
		}
		return models.PopulatedCart{}, err
	}

	entity, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return models.PopulatedCart{}, err
	}
	var cart models.Cart
	if err := entity.Decode(&cart); err != nil {
		return models.PopulatedCart{}, err
	}

	merged := false
	for i, item := range cart.Items {
		if item.Product != in.ProductID || item.IsRental != in.IsRental {
			continue
		}
		if item.IsRental && item.RentalDays != in.RentalDays {
			continue
		}
		cart.Items[i].Quantity += in.Quantity
		merged = true
		break
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ID:         docstore.NewDocumentID(),
			Product:    in.ProductID,
			Quantity:   in.Quantity,
			IsRental:   in.IsRental,
			RentalDays: in.RentalDays,
		})
	}

	return s.saveAndPopulate(ctx, entity, cart.Items)
}

// UpdateItem sets a line's quantity by item identifier. A quantity of zero
// or less removes the line.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (models.PopulatedCart, error) {
	entity, err := s.carts.FindOne(ctx, docstore.Filter{"user": userID})
	if err != nil {
		return models.PopulatedCart{}, err
	}
	var cart models.Cart
	if err := entity.Decode(&cart); err != nil {
		return models.PopulatedCart{}, err
	}

	idx := -1
	for i, item := range cart.Items {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.PopulatedCart{}, ErrItemNotFound
	}

	if quantity > 0 {
		cart.Items[idx].Quantity = quantity
	} else {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}

	return s.saveAndPopulate(ctx, entity, cart.Items)
}

// RemoveItem drops a line by item identifier. Removing an identifier that
// is not present leaves the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (models.PopulatedCart, error) {
	entity, err := s.carts.FindOne(ctx, docstore.Filter{"user": userID})
	if err != nil {
		return models.PopulatedCart{}, err
	}
	var cart models.Cart
	if err := entity.Decode(&cart); err != nil {
		return models.PopulatedCart{}, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	return s.saveAndPopulate(ctx, entity, cart.Items)
}

// Clear empties the cart. A user without a cart has nothing to clear.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	entity, err := s.carts.FindOne(ctx, docstore.Filter{"user": userID})
	if errors.Is(err, docstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	entity.Set("items", []models.CartItem{})
	_, err = entity.Save(ctx)
	return err
}

func (s *CartService) saveAndPopulate(ctx context.Context, entity *docstore.Entity, items []models.CartItem) (models.PopulatedCart, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	entity.Set("items", items)
	saved, err := entity.Save(ctx)
	if err != nil {
		return models.PopulatedCart{}, err
	}
	return s.populate(ctx, saved)
}

// populate is the manual join: each line's product identifier is resolved
// into the full product document, sequentially, and lines with a missing
// product are silently dropped.
func (s *CartService) populate(ctx context.Context, entity *docstore.Entity) (models.PopulatedCart, error) {
	var cart models.Cart
	if err := entity.Decode(&cart); err != nil {
		return models.PopulatedCart{}, err
	}

	detailed := make([]models.PopulatedCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		productEntity, err := s.products.FindByID(item.Product).One(ctx)
		if errors.Is(err, docstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return models.PopulatedCart{}, err
		}
		var product models.Product
		if err := productEntity.Decode(&product); err != nil {
			return models.PopulatedCart{}, err
		}
		detailed = append(detailed, models.PopulatedCartItem{
			ID:         item.ID,
			Product:    product,
			Quantity:   item.Quantity,
			IsRental:   item.IsRental,
			RentalDays: item.RentalDays,
		})
	}

	return models.PopulatedCart{
		ID:        cart.ID,
		User:      cart.User,
		Items:     detailed,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}, nil
}
