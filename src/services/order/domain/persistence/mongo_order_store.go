package persistence

import (
	"context"
	"time"

	"go-canteen-api/src/config"
	"go-canteen-api/src/services/faults"
	"go-canteen-api/src/services/order/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderDocument is the storage model for MongoDB.
type orderDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Items       []lineItemDocument `bson:"items"`
	TotalAmount float64            `bson:"total_amount"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type lineItemDocument struct {
	MenuItemID string  `bson:"menu_item_id"`
	Name       string  `bson:"name"`
	Price      float64 `bson:"price"`
	Quantity   int     `bson:"quantity"`
}

func (d orderDocument) toDomain() domain.Order {
	items := make([]domain.OrderLineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.OrderLineItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}
	return domain.Order{
		ID:          d.ID.Hex(),
		Items:       items,
		TotalAmount: d.TotalAmount,
		Status:      domain.Status(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// listSort orders newest first. ObjectIDs are monotonic within a process, so
// the secondary _id key gives reverse insertion order on equal timestamps.
func listSort() bson.D {
	return bson.D{
		bson.E{Key: "created_at", Value: -1},
		bson.E{Key: "_id", Value: -1},
	}
}

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(cfg *config.Config, client *mongo.Client) *MongoOrderStore {
	return &MongoOrderStore{
		collection: client.Database(cfg.MongoDatabaseName).Collection("orders"),
	}
}

func (s *MongoOrderStore) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := checkRecord(order); err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	doc := orderDocument{
		ID:          primitive.NewObjectID(),
		Items:       make([]lineItemDocument, 0, len(order.Items)),
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, it := range order.Items {
		doc.Items = append(doc.Items, lineItemDocument{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return domain.Order{}, faults.NewPersistence("insert order", err)
	}
	return doc.toDomain(), nil
}

func (s *MongoOrderStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	opts := options.Find().SetSort(listSort())
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.NewPersistence("find orders", err)
	}
	defer cursor.Close(ctx)

	orders := make([]domain.Order, 0)
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, faults.NewPersistence("decode order", err)
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, faults.NewPersistence("iterate orders", err)
	}
	return orders, nil
}

func (s *MongoOrderStore) GetByID(ctx context.Context, orderID string) (domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	var doc orderDocument
	if err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, faults.NewPersistence("find order", err)
	}
	return doc.toDomain(), nil
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDocument
	if err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, faults.NewPersistence("update order status", err)
	}
	return doc.toDomain(), nil
}

// checkRecord is the store's defence in depth: the service validates first,
// but a record that would violate the schema never reaches storage.
func checkRecord(order domain.Order) error {
	if len(order.Items) == 0 {
		return faults.NewPersistence("order document rejected: items must not be empty", nil)
	}
	for _, it := range order.Items {
		if it.MenuItemID == "" || it.Name == "" || it.Quantity < 1 {
			return faults.NewPersistence("order document rejected: invalid line item", nil)
		}
	}
	if !order.Status.Valid() {
		return faults.NewPersistence("order document rejected: unknown status", nil)
	}
	return nil
}
