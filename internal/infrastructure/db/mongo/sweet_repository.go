package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const collectionSweets = "sweets"

type SweetRepository struct {
	col *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{col: db.Collection(collectionSweets)}
}

type mongoSweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Price     float64            `bson:"price"`
	Quantity  int64              `bson:"quantity"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (s mongoSweet) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:        s.ID.Hex(),
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Create inserts a new sweet, assigning the generated id and timestamps
// back onto the passed value.
func (r *SweetRepository) Create(ctx context.Context, s *domain.Sweet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoSweet{
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert sweet: %w", err)
	}

	s.ID = res.InsertedID.(primitive.ObjectID).Hex()
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

// FindAll returns every sweet ordered by creation time descending.
func (r *SweetRepository) FindAll(ctx context.Context) ([]*domain.Sweet, error) {
	return r.find(ctx, bson.M{})
}

func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	var s mongoSweet
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("find sweet: %w", err)
	}
	return s.toDomain(), nil
}

// Update applies the field mask in a single $set and returns the document
// after the update.
func (r *SweetRepository) Update(ctx context.Context, id string, fields ports.UpdateSweetFields) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	if fields.Empty() {
		return r.FindByID(ctx, id)
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Category != nil {
		set["category"] = *fields.Category
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}
	if fields.Quantity != nil {
		set["quantity"] = *fields.Quantity
	}

	after := options.After
	var s mongoSweet
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("update sweet: %w", err)
	}
	return s.toDomain(), nil
}

// Delete hard-deletes a sweet.
func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSweetNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// Search AND-combines the provided predicates: case-insensitive substring on
// name, case-sensitive exact match on category (Mongo's byte-wise string
// equality), inclusive price bounds. An empty filter matches everything.
func (r *SweetRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return r.find(ctx, query)
}

// IncrementQuantity applies a single unconditional $inc and returns the
// updated document — atomic at the storage engine, so concurrent mutations
// on the same id never lose updates.
func (r *SweetRepository) IncrementQuantity(ctx context.Context, id string, delta int64) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	after := options.After
	var s mongoSweet
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{
			"$inc": bson.M{"quantity": delta},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("increment quantity: %w", err)
	}
	return s.toDomain(), nil
}

// DecrementIfAvailable decrements quantity by one only when it is currently
// positive; the guard lives in the update filter, so the check and the
// mutation are one atomic operation and quantity can never cross zero. A
// miss is classified by a follow-up existence read: the sweet either never
// existed (not found) or has no stock (out of stock).
func (r *SweetRepository) DecrementIfAvailable(ctx context.Context, id string) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	after := options.After
	var s mongoSweet
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "quantity": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"quantity": -1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&s)
	if err == nil {
		return s.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("decrement quantity: %w", err)
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrOutOfStock
}

// EnsureIndexes creates the non-unique search indexes on the sweets collection.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SweetRepository) find(ctx context.Context, query bson.M) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find sweets: %w", err)
	}
	defer cur.Close(ctx)

	sweets := make([]*domain.Sweet, 0)
	for cur.Next(ctx) {
		var s mongoSweet
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode sweet: %w", err)
		}
		sweets = append(sweets, s.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find sweets: %w", err)
	}
	return sweets, nil
}
