package mongo

import (
	"context"
	"sync"
	"time"

	"go-canteen-api/src/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	clientInstance *mongo.Client
	clientOnce     sync.Once
)

// GetMongoClient connects once per process and hands out the shared client.
func GetMongoClient(cfg *config.Config) (*mongo.Client, error) {
	var err error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, e := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoConnectionString))
		if e != nil {
			err = e
			return
		}
		clientInstance = client
	})
	return clientInstance, err
}
