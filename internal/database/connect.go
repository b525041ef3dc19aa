package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-api/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoClient connects to the document store and verifies it with a ping.
func NewMongoClient(ctx context.Context, cfg config.MongoConfig, log logrus.FieldLogger) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is not set")
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout).
		SetMaxPoolSize(20).
		SetMinPoolSize(1)

	log.WithField("database", cfg.Database).Info("Attempting to connect to MongoDB...")
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info("MongoDB connection established successfully")
	return client, nil
}
