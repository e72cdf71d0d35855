package menu

import (
	"context"
	"time"

	"go-canteen-api/src/config"
	"go-canteen-api/src/services/faults"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type menuItemDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d menuItemDocument) toModel() MenuItem {
	return MenuItem{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type mongoMenuRepository struct {
	collection *mongo.Collection
}

func NewMongoMenuRepository(cfg *config.Config, client *mongo.Client) MenuRepository {
	return &mongoMenuRepository{
		collection: client.Database(cfg.MongoDatabaseName).Collection("menuitems"),
	}
}

func (r *mongoMenuRepository) GetAll(ctx context.Context) ([]MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, faults.NewPersistence("find menu items", err)
	}
	defer cursor.Close(ctx)

	items := make([]MenuItem, 0)
	for cursor.Next(ctx) {
		var doc menuItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, faults.NewPersistence("decode menu item", err)
		}
		items = append(items, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, faults.NewPersistence("iterate menu items", err)
	}
	return items, nil
}

func (r *mongoMenuRepository) Add(ctx context.Context, item MenuItem) (MenuItem, error) {
	now := time.Now().UTC()
	doc := menuItemDocument{
		ID:          primitive.NewObjectID(),
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return MenuItem{}, faults.NewPersistence("insert menu item", err)
	}
	return doc.toModel(), nil
}

func (r *mongoMenuRepository) Seed(ctx context.Context, item MenuItem) error {
	now := time.Now().UTC()
	doc := menuItemDocument{
		ID:          primitive.NewObjectID(),
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	filter := bson.M{"name": item.Name}
	update := bson.M{"$setOnInsert": doc}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return faults.NewPersistence("seed menu item", err)
	}
	return nil
}
