package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductRepository defines persistence access for catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// productDoc is the stored shape. Prices are kept as fixed-point strings so
// the document never carries a binary float.
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"nombre"`
	Price       string             `bson:"precio"`
	Image       string             `bson:"imagen"`
	Description string             `bson:"descripcion"`
	Category    string             `bson:"categoria"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type productRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewProductRepository returns a MongoDB-backed implementation.
func NewProductRepository(db *mongo.Database, logger *zap.Logger) ProductRepository {
	return &productRepository{collection: db.Collection("productos"), logger: logger}
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"categoria": category})
}

func (r *productRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"nombre": pattern},
		bson.M{"descripcion": pattern},
	}}
	return r.find(ctx, filter)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var doc productDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}

	product, err := r.toDomain(doc)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs fetches the catalog slice a cart references. Ids that are not
// valid object ids or no longer exist are simply absent from the result.
func (r *productRepository) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	products, err := r.find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]domain.Product, len(products))
	for _, product := range products {
		catalog[product.ID] = product
	}
	return catalog, nil
}

func (r *productRepository) Insert(ctx context.Context, product *domain.Product) error {
	now := time.Now()
	doc := productDoc{
		ID:          primitive.NewObjectID(),
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		Image:       product.Image,
		Description: product.Description,
		Category:    product.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	product.ID = doc.ID.Hex()
	product.CreatedAt = doc.CreatedAt
	product.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	objectID, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"nombre":      product.Name,
		"precio":      product.Price.StringFixed(2),
		"imagen":      product.Image,
		"descripcion": product.Description,
		"categoria":   product.Category,
		"updated_at":  now,
	}}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return result.Err()
	}

	var updated productDoc
	if err := result.Decode(&updated); err != nil {
		return err
	}
	product.CreatedAt = updated.CreatedAt
	product.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *productRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := r.toDomain(doc)
		if err != nil {
			r.logger.Warn("skipping product with unreadable price",
				zap.String("id", doc.ID.Hex()), zap.Error(err))
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *productRepository) toDomain(doc productDoc) (domain.Product, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Price:       price,
		Image:       doc.Image,
		Description: doc.Description,
		Category:    doc.Category,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}
