package catalog

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autoparts/storefront/models"
)

const (
	productsCollection   = "products"
	brandsCollection     = "brands"
	categoriesCollection = "categories"
)

// brandDoc keeps the display order of the brand list.
type brandDoc struct {
	Name     string `bson:"_id"`
	Position int    `bson:"position"`
}

type categoryDoc struct {
	models.Category `bson:",inline"`
	Position        int `bson:"position"`
}

// MongoProvider reads the catalog from a MongoDB database.
type MongoProvider struct {
	db *mongo.Database
}

func NewMongoProvider(db *mongo.Database) *MongoProvider {
	return &MongoProvider{db: db}
}

func (m *MongoProvider) Products(ctx context.Context) ([]models.Product, error) {
	cur, err := m.db.Collection(productsCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	products := make([]models.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func (m *MongoProvider) Brands(ctx context.Context) ([]string, error) {
	cur, err := m.db.Collection(brandsCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find brands")
	}
	var docs []brandDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode brands")
	}
	brands := make([]string, 0, len(docs))
	for _, d := range docs {
		brands = append(brands, d.Name)
	}
	return brands, nil
}

func (m *MongoProvider) Categories(ctx context.Context) ([]models.Category, error) {
	cur, err := m.db.Collection(categoriesCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find categories")
	}
	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode categories")
	}
	categories := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, d.Category)
	}
	return categories, nil
}

// Seed replaces the catalog collections with the given data.
func Seed(ctx context.Context, db *mongo.Database, products []models.Product, brands []string, categories []models.Category) error {
	for _, name := range []string{productsCollection, brandsCollection, categoriesCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return errors.Wrapf(err, "clear %s", name)
		}
	}

	if len(products) > 0 {
		docs := make([]interface{}, 0, len(products))
		for _, p := range products {
			docs = append(docs, p)
		}
		if _, err := db.Collection(productsCollection).InsertMany(ctx, docs); err != nil {
			return errors.Wrap(err, "insert products")
		}
	}

	if len(brands) > 0 {
		docs := make([]interface{}, 0, len(brands))
		for i, b := range brands {
			docs = append(docs, brandDoc{Name: b, Position: i})
		}
		if _, err := db.Collection(brandsCollection).InsertMany(ctx, docs); err != nil {
			return errors.Wrap(err, "insert brands")
		}
	}

	if len(categories) > 0 {
		docs := make([]interface{}, 0, len(categories))
		for i, c := range categories {
			docs = append(docs, categoryDoc{Category: c, Position: i})
		}
		if _, err := db.Collection(categoriesCollection).InsertMany(ctx, docs); err != nil {
			return errors.Wrap(err, "insert categories")
		}
	}
	return nil
}
