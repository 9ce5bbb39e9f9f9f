package docstore

// Store owns the storage handle and hands out collection accessors. It is
// the injection point for everything above the persistence layer: services
// receive collections from here instead of reaching for ambient globals.
type Store struct {
	storage Storage
}

// Collection names the marketplace persists.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionCarts    = "carts"
	CollectionOrders   = "orders"
	CollectionMessages = "messages"
)

var defaultCollections = []string{
	CollectionUsers,
	CollectionProducts,
	CollectionCarts,
	CollectionOrders,
	CollectionMessages,
}

// Open opens the single-file store at path, creating it with the default
// collections when absent. Open fails when the file is unreadable or
// corrupt.
func Open(path string) (*Store, error) {
	storage, err := OpenJSONStorage(path, defaultCollections...)
	if err != nil {
		return nil, err
	}
	return &Store{storage: storage}, nil
}

// NewStore wraps an existing Storage, mainly for tests.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Collection returns an accessor bound to name with an optional advisory
// defaults table.
func (s *Store) Collection(name string, defaults map[string]any) *Collection {
	return NewCollection(s.storage, name, defaults)
}

// Close releases the storage handle.
func (s *Store) Close() error {
	return s.storage.Close()
}
