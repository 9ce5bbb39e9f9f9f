// Package models holds the typed views of the schemaless marketplace
// documents. The store boundary stays map-based; these structs are what the
// services and handlers work with after decoding.
package models

// User is an account document. Password carries the bcrypt hash and is
// stripped before a user is returned to a client.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Public returns a copy safe to serialize to clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

// Product is a catalog listing.
type Product struct {
	ID                string  `json:"_id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"`
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory,omitempty"`
	Seller            string  `json:"seller"`
	Status            string  `json:"status"`
	Stock             int     `json:"stock"`
	Featured          bool    `json:"featured"`
	IsRental          bool    `json:"isRental"`
	RentalPricePerDay float64 `json:"rentalPricePerDay,omitempty"`
	Image             string  `json:"image,omitempty"`
	AdminComments     string  `json:"adminComments,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

// CartItem is a line in a cart. Product is a foreign-key style reference to
// a product _id; the item carries its own _id so updates and removals are
// identifier-based, never positional.
type CartItem struct {
	ID         string `json:"_id"`
	Product    string `json:"product"`
	Quantity   int    `json:"quantity"`
	IsRental   bool   `json:"isRental"`
	RentalDays int    `json:"rentalDays,omitempty"`
}

// Cart is the single per-user cart document.
type Cart struct {
	ID        string     `json:"_id"`
	User      string     `json:"user"`
	Items     []CartItem `json:"items"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// PopulatedCartItem is a cart line with its product reference expanded into
// the full document.
type PopulatedCartItem struct {
	ID         string  `json:"_id"`
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	IsRental   bool    `json:"isRental"`
	RentalDays int     `json:"rentalDays,omitempty"`
}

// PopulatedCart is the response shape of a cart read: items whose product no
// longer exists are dropped from the expanded view.
type PopulatedCart struct {
	ID        string              `json:"_id"`
	User      string              `json:"user"`
	Items     []PopulatedCartItem `json:"items"`
	CreatedAt string              `json:"createdAt,omitempty"`
	UpdatedAt string              `json:"updatedAt,omitempty"`
}

// OrderItem is an immutable snapshot taken at order time. Name, price and
// image are copied from the product and stay fixed no matter how the
// product changes afterwards.
type OrderItem struct {
	Product    string  `json:"product"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image,omitempty"`
	IsRental   bool    `json:"isRental"`
	RentalDays int     `json:"rentalDays,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID              string      `json:"_id"`
	User            string      `json:"user"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress"`
	DeliveryNotes   string      `json:"deliveryNotes,omitempty"`
	PaymentStatus   string      `json:"paymentStatus"`
	OrderStatus     string      `json:"orderStatus"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// UserRef is the trimmed user shape embedded when an order expands its
// owning user.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PopulatedOrder is a single-order fetch with the user reference expanded.
// Line items need no expansion: they are snapshots.
type PopulatedOrder struct {
	Order
	UserInfo UserRef `json:"userInfo"`
}

// Message is a buyer/seller note. Sender and receiver stay as unresolved
// user identifiers.
type Message struct {
	ID        string `json:"_id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	ProductID string `json:"productId,omitempty"`
	Content   string `json:"content"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
