package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/models"
)

// ProductService covers the public catalog reads and the seller/admin
// listing lifecycle (pending -> approved/rejected).
type ProductService struct {
	products *docstore.Collection
}

// ListQuery narrows the public catalog listing. Zero values mean
// unconstrained; Limit defaults to 20.
type ListQuery struct {
	Category string
	Search   string
	Featured bool
	Limit    int
}

// List returns approved products, newest first. Search matches the name
// case-insensitively.
func (s *ProductService) List(ctx context.Context, q ListQuery) ([]models.Product, error) {
	filter := docstore.Filter{"status": "approved"}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		filter["name"] = docstore.Regex(q.Search, "i")
	}
	if q.Featured {
		filter["featured"] = true
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	entities, err := s.products.Find(filter).
		Limit(limit).
		Sort(docstore.FieldCreatedAt, docstore.Descending).
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProducts(entities)
}

// Featured returns up to eight featured products in store order.
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	entities, err := s.products.Find(docstore.Filter{"featured": true}).Limit(8).Find(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProducts(entities)
}

// ByCategory returns every product in a category, newest first.
func (s *ProductService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	entities, err := s.products.Find(docstore.Filter{"category": category}).
		Sort(docstore.FieldCreatedAt, docstore.Descending).
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProducts(entities)
}

// Rentals returns every rental listing, newest first.
func (s *ProductService) Rentals(ctx context.Context) ([]models.Product, error) {
	entities, err := s.products.Find(docstore.Filter{"isRental": true}).
		Sort(docstore.FieldCreatedAt, docstore.Descending).
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProducts(entities)
}

// Get returns a single product by identifier.
func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	entity, err := s.products.FindByID(id).One(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	var p models.Product
	if err := entity.Decode(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Create lists a product for the given seller. Student uploads start out
// pending until an admin approves them.
func (s *ProductService) Create(ctx context.Context, sellerID string, fields map[string]any) (models.Product, error) {
	if fields["name"] == nil || fields["price"] == nil || fields["category"] == nil {
		return models.Product{}, fmt.Errorf("%w: name, price and category are required", ErrValidation)
	}

	doc := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	doc["seller"] = sellerID
	doc["status"] = "pending"

	created, err := s.products.Create(ctx, doc)
	if err != nil {
		return models.Product{}, err
	}
	var p models.Product
	if err := created.Decode(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// SetStatus moves a listing through the approval lifecycle, optionally
// attaching admin comments.
func (s *ProductService) SetStatus(ctx context.Context, id, status, adminComments string) (models.Product, error) {
	entity, err := s.products.FindByID(id).One(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	entity.Set("status", status)
	if adminComments != "" {
		entity.Set("adminComments", adminComments)
	}
	saved, err := entity.Save(ctx)
	if err != nil {
		return models.Product{}, err
	}
	var p models.Product
	if err := saved.Decode(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// MyUploads returns every listing owned by a seller, regardless of status.
func (s *ProductService) MyUploads(ctx context.Context, sellerID string) ([]models.Product, error) {
	entities, err := s.products.Find(docstore.Filter{"seller": sellerID}).Find(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProducts(entities)
}

// Pending returns the listings awaiting review.
func (s *ProductService) Pending(ctx context.Context) ([]models.Product, error) {
	entities, err := s.products.Find(docstore.Filter{"status": "pending"}).Find(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProducts(entities)
}

// Insert loads catalog entries in one batch, keeping whatever status and
// seller each entry carries. Seeding uses this to bypass the pending
// lifecycle.
func (s *ProductService) Insert(ctx context.Context, items []map[string]any) (int, error) {
	createdEntities, err := s.products.InsertMany(ctx, items)
	if err != nil {
		return 0, err
	}
	return len(createdEntities), nil
}

func decodeProducts(entities []*docstore.Entity) ([]models.Product, error) {
	out := make([]models.Product, len(entities))
	for i, e := range entities {
		if err := e.Decode(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
