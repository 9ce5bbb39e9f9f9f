package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/models"
)

// OrderService turns carts into orders. Line items are denormalized
// snapshots: name, price and image are copied at order time and never track
// the product afterwards.
type OrderService struct {
	orders   *docstore.Collection
	users    *docstore.Collection
	carts    *CartService
	products *docstore.Collection
}

// CheckoutInput carries the payment details for a new order.
type CheckoutInput struct {
	PaymentMethod   string
	ShippingAddress string
	DeliveryNotes   string
}

// checkoutProduct tracks one distinct product across all cart lines that
// reference it, with the combined quantity they consume.
type checkoutProduct struct {
	entity  *docstore.Entity
	product models.Product
	needed  int
}

// Checkout creates an order from the user's cart. Every line is validated
// before any stock is touched: if a product is missing or short on stock the
// checkout aborts with nothing mutated. Several lines may reference the same
// product (rental terms differ per line), so each product is read once and
// validated against the combined quantity, then written once with the
// combined decrement. Only after all lines pass are stocks decremented, the
// order persisted and the cart cleared. The tail of the pipeline is still
// not transactional across documents; pre-validation just keeps the common
// failure (a bad line) from leaving stock half-decremented.
func (s *OrderService) Checkout(ctx context.Context, userID string, in CheckoutInput) (models.Order, error) {
	cartEntity, err := s.carts.carts.FindOne(ctx, docstore.Filter{"user": userID})
	if errors.Is(err, docstore.ErrNotFound) {
		return models.Order{}, ErrEmptyCart
	}
	if err != nil {
		return models.Order{}, err
	}
	var cart models.Cart
	if err := cartEntity.Decode(&cart); err != nil {
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	// Phase one: validate all lines and price them. No writes here. Lines
	// sharing a product accumulate into one checkoutProduct so the stock
	// check sees the combined demand.
	seen := make(map[string]*checkoutProduct, len(cart.Items))
	productOrder := make([]string, 0, len(cart.Items))
	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	total := 0.0
	for _, item := range cart.Items {
		state, ok := seen[item.Product]
		if !ok {
			productEntity, err := s.products.FindByID(item.Product).One(ctx)
			if errors.Is(err, docstore.ErrNotFound) {
				return models.Order{}, fmt.Errorf("%w: %s", ErrProductNotFound, item.Product)
			}
			if err != nil {
				return models.Order{}, err
			}
			var product models.Product
			if err := productEntity.Decode(&product); err != nil {
				return models.Order{}, err
			}
			state = &checkoutProduct{entity: productEntity, product: product}
			seen[item.Product] = state
			productOrder = append(productOrder, item.Product)
		}

		state.needed += item.Quantity
		if state.needed > state.product.Stock {
			return models.Order{}, fmt.Errorf("%w: %s", ErrInsufficientStock, state.product.Name)
		}

		price := state.product.Price
		if item.IsRental && item.RentalDays > 0 {
			price = state.product.RentalPricePerDay * float64(item.RentalDays)
		}
		total += price * float64(item.Quantity)

		orderItems = append(orderItems, models.OrderItem{
			Product:    state.product.ID,
			Name:       state.product.Name,
			Price:      price,
			Quantity:   item.Quantity,
			Image:      state.product.Image,
			IsRental:   item.IsRental,
			RentalDays: item.RentalDays,
		})
	}

	// Phase two: consume stock, one write per distinct product.
	for _, id := range productOrder {
		state := seen[id]
		state.entity.Set("stock", state.product.Stock-state.needed)
		if _, err := state.entity.Save(ctx); err != nil {
			return models.Order{}, fmt.Errorf("failed to update stock for %s: %w", state.product.Name, err)
		}
	}

	// Phase three: persist the order.
	created, err := s.orders.Create(ctx, map[string]any{
		"user":            userID,
		"items":           orderItems,
		"totalAmount":     total,
		"paymentMethod":   in.PaymentMethod,
		"shippingAddress": in.ShippingAddress,
		"deliveryNotes":   in.DeliveryNotes,
	})
	if err != nil {
		return models.Order{}, err
	}

	// Phase four: clear the cart.
	if err := s.carts.Clear(ctx, userID); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err := created.Decode(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ListMine returns the user's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]models.Order, error) {
	entities, err := s.orders.Find(docstore.Filter{"user": userID}).
		Sort(docstore.FieldCreatedAt, docstore.Descending).
		Find(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, len(entities))
	for i, e := range entities {
		if err := e.Decode(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Get returns one order with its owning user expanded, refusing callers who
// do not own it. Line items are snapshots and need no expansion.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (models.PopulatedOrder, error) {
	entity, err := s.orders.FindByID(orderID).One(ctx)
	if err != nil {
		return models.PopulatedOrder{}, err
	}
	var order models.Order
	if err := entity.Decode(&order); err != nil {
		return models.PopulatedOrder{}, err
	}
	if order.User != userID {
		return models.PopulatedOrder{}, ErrNotOwner
	}

	populated := models.PopulatedOrder{Order: order}
	userEntity, err := s.users.FindByID(order.User).One(ctx)
	if err == nil {
		var ref models.UserRef
		if err := userEntity.Decode(&ref); err != nil {
			return models.PopulatedOrder{}, err
		}
		populated.UserInfo = ref
	} else if !errors.Is(err, docstore.ErrNotFound) {
		return models.PopulatedOrder{}, err
	}
	return populated, nil
}

// MarkPaid confirms payment on the caller's own order.
func (s *OrderService) MarkPaid(ctx context.Context, userID, orderID string) (models.Order, error) {
	entity, err := s.orders.FindByID(orderID).One(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if entity.String("user") != userID {
		return models.Order{}, ErrNotOwner
	}

	entity.Set("paymentStatus", "completed")
	entity.Set("orderStatus", "confirmed")
	saved, err := entity.Save(ctx)
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err := saved.Decode(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
