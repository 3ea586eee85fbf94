package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultConnectTimeout = 10 * time.Second

// Config holds the connection settings for the document store.
type Config struct {
	URI      string
	Database string
	// ConnectTimeout bounds the initial dial and ping. Zero means
	// defaultConnectTimeout.
	ConnectTimeout time.Duration
	// MaxPoolSize caps the driver connection pool. Zero keeps the driver
	// default.
	MaxPoolSize uint64
}

// Connect dials MongoDB and verifies the server is reachable before
// returning. Callers own the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	// A constructed client is not proof of a reachable server.
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
