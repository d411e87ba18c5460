package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/errgroup"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI and verifies it with a ping.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}

	// The initial connect can succeed against an unresponsive server.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, errors.Wrap(err, "mongo ping")
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes for every collection the service uses.
// Failures are logged, not fatal: queries still work without them, only slower.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log logrus.FieldLogger) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return EnsureUserIndexes(ctx, db.Collection(userCollectionName))
	})
	g.Go(func() error {
		return EnsureExerciseIndexes(ctx, db.Collection(exerciseCollectionName))
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("failed to create indexes")
		return
	}
	log.Info("index creation process completed")
}
