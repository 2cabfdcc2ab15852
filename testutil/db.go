// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so unit tests can run without a running database.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewDatabase connects to the MongoDB instance specified by the
// TEST_MONGO_URL environment variable and returns a uniquely-named scratch
// database for the test.
//
// The test is skipped automatically if TEST_MONGO_URL is not set, so
// integration tests are opt-in and never break CI environments that lack a
// database. The database is dropped and the client disconnected automatically
// when the test (and all its subtests) finish.
func NewDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URL")
	if uri == "" {
		t.Skip("TEST_MONGO_URL not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("testutil.NewDatabase: connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Fatalf("testutil.NewDatabase: ping: %v", err)
	}

	// A fresh database per test gives free isolation without any manual
	// cleanup between test cases.
	name := fmt.Sprintf("tripflow_test_%s", uuid.NewString()[:8])
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("testutil.NewDatabase: drop %s: %v", name, err)
		}
		_ = client.Disconnect(ctx)
	})

	return db
}
