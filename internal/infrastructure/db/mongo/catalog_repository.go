package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

const catalogCollection = "catalogs"

// CatalogRepository stores catalogs with their member product ids embedded.
type CatalogRepository struct {
	coll *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{coll: db.Collection(catalogCollection)}
}

type catalogDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	TargetAudience string             `bson:"target_audience,omitempty"`
	ProductIDs     []string           `bson:"product_ids"`
}

func (d catalogDoc) toDomain() domain.Catalog {
	ids := d.ProductIDs
	if ids == nil {
		ids = []string{}
	}
	return domain.Catalog{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		TargetAudience: d.TargetAudience,
		ProductIDs:     ids,
	}
}

func (r *CatalogRepository) Create(ctx context.Context, catalog *domain.Catalog) (*domain.Catalog, error) {
	doc := catalogDoc{
		Name:           catalog.Name,
		TargetAudience: catalog.TargetAudience,
		ProductIDs:     catalog.ProductIDs,
	}
	if doc.ProductIDs == nil {
		doc.ProductIDs = []string{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert catalog: %w", err)
	}
	created := *catalog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Catalog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatalogNotFound
	}

	var doc catalogDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("find catalog: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Catalog, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer cursor.Close(ctx)

	catalogs := []domain.Catalog{}
	for cursor.Next(ctx) {
		var doc catalogDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		catalogs = append(catalogs, doc.toDomain())
	}
	return catalogs, cursor.Err()
}

// AddProduct uses $addToSet so repeated additions stay idempotent.
func (r *CatalogRepository) AddProduct(ctx context.Context, catalogID, productID string) error {
	oid, err := primitive.ObjectIDFromHex(catalogID)
	if err != nil {
		return domain.ErrCatalogNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"product_ids": productID}},
	)
	if err != nil {
		return fmt.Errorf("add product to catalog: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCatalogNotFound
	}
	return nil
}
