package app

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"userhub/internal/config"
)

// NewMongoClient creates a new MongoDB client. The client owns the
// connection pool; it is opened once at process start and disconnected
// at shutdown, never per request.
// If nrApp is provided, commands are traced through the New Relic
// command monitor.
func NewMongoClient(ctx context.Context, cfg config.MongoConfig, nrApp *newrelic.Application) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50).
		SetMinPoolSize(5)

	if nrApp != nil {
		opts.SetMonitor(nrmongo.NewCommandMonitor(nil))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
