package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

const (
	countryCollection  = "countries"
	categoryCollection = "categories"
)

// --- Countries ---

type CountryRepository struct {
	coll *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{coll: db.Collection(countryCollection)}
}

type countryDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Code string             `bson:"code"`
	Name string             `bson:"name"`
}

func (r *CountryRepository) Create(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	res, err := r.coll.InsertOne(ctx, countryDoc{Code: country.Code, Name: country.Name})
	if err != nil {
		return nil, fmt.Errorf("insert country: %w", err)
	}
	created := *country
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CountryRepository) FindByCode(ctx context.Context, code string) (*domain.Country, error) {
	var doc countryDoc
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return &domain.Country{ID: doc.ID.Hex(), Code: doc.Code, Name: doc.Name}, nil
}

// --- Categories ---

type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoryCollection)}
}

type categoryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	res, err := r.coll.InsertOne(ctx, categoryDoc{Name: category.Name, Description: category.Description})
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	created := *category
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	var doc categoryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &domain.Category{ID: doc.ID.Hex(), Name: doc.Name, Description: doc.Description}, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var doc categoryDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &domain.Category{ID: doc.ID.Hex(), Name: doc.Name, Description: doc.Description}, nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Category
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		out = append(out, domain.Category{ID: doc.ID.Hex(), Name: doc.Name, Description: doc.Description})
	}
	return out, cursor.Err()
}
