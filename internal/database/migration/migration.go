package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureCollection checks that the named collection exists and creates it if it doesn't.
// The store would create it lazily on first insert; doing it at startup surfaces
// permission problems before the first request.
func EnsureCollection(ctx context.Context, db *mongo.Database, name string, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().
		Str("component", "database").
		Str("database", db.Name()).
		Str("collection", name).
		Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to list collections")
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(names) > 0 {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("collection already exists, skipping migration")
		return nil
	}

	if err := db.CreateCollection(ctx, name); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Str("migration_step", "create_collection").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to create collection")
		return fmt.Errorf("migration step create_collection failed: %w", err)
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
