package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

// Product-owned rows (localizations, variants, images) each hold a product_id
// foreign key and are fetched with explicit $in queries; there are no live
// object references between collections.

const (
	localizationCollection = "product_localizations"
	variantCollection      = "product_variants"
	imageCollection        = "product_images"
)

// --- Localizations ---

type LocalizationRepository struct {
	coll *mongo.Collection
}

func NewLocalizationRepository(db *mongo.Database) *LocalizationRepository {
	return &LocalizationRepository{coll: db.Collection(localizationCollection)}
}

type localizationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ProductID     string             `bson:"product_id"`
	CountryID     string             `bson:"country_id"`
	LocalizedName string             `bson:"localized_name"`
}

func (r *LocalizationRepository) FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.Localization, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"product_id": bson.M{"$in": productIDs}})
	if err != nil {
		return nil, fmt.Errorf("list localizations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Localization
	for cursor.Next(ctx) {
		var doc localizationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode localization: %w", err)
		}
		out = append(out, domain.Localization{
			ID:            doc.ID.Hex(),
			ProductID:     doc.ProductID,
			CountryID:     doc.CountryID,
			LocalizedName: doc.LocalizedName,
		})
	}
	return out, cursor.Err()
}

// --- Variants ---

type VariantRepository struct {
	coll *mongo.Collection
}

func NewVariantRepository(db *mongo.Database) *VariantRepository {
	return &VariantRepository{coll: db.Collection(variantCollection)}
}

type variantDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ProductID     string             `bson:"product_id"`
	Color         string             `bson:"color"`
	StockQuantity int                `bson:"stock_quantity"`
	Price         float64            `bson:"price"`
}

func (r *VariantRepository) FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.Variant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"product_id": bson.M{"$in": productIDs}})
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Variant
	for cursor.Next(ctx) {
		var doc variantDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode variant: %w", err)
		}
		out = append(out, domain.Variant{
			ID:            doc.ID.Hex(),
			ProductID:     doc.ProductID,
			Color:         doc.Color,
			StockQuantity: doc.StockQuantity,
			Price:         doc.Price,
		})
	}
	return out, cursor.Err()
}

// --- Images ---

type ImageRepository struct {
	coll *mongo.Collection
}

func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{coll: db.Collection(imageCollection)}
}

type imageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product_id"`
	URL       string             `bson:"image_url"`
	Primary   bool               `bson:"is_primary"`
}

func (r *ImageRepository) Create(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	res, err := r.coll.InsertOne(ctx, imageDoc{
		ProductID: img.ProductID,
		URL:       img.URL,
		Primary:   img.Primary,
	})
	if err != nil {
		return nil, fmt.Errorf("insert image: %w", err)
	}
	created := *img
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}
