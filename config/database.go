package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   = "bizdash"
	connectTimeout = 15 * time.Second
)

// Provider hands out a live database handle. Controllers depend on
// this interface rather than a package-level client so a failing store
// can be substituted in tests.
type Provider interface {
	Get(ctx context.Context) (*mongo.Database, error)
}

// Mongo is the production Provider: a single mutable client slot,
// built lazily, pinged before reuse and rebuilt when the ping fails.
// Not a pool; the service runs at low per-process concurrency.
type Mongo struct {
	uri string

	mu     sync.Mutex
	client *mongo.Client
}

// NewMongo reads MONGO_URI. A missing URI is a configuration error and
// fatal at startup, never a per-request failure.
func NewMongo() *Mongo {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI is not set")
	}
	return &Mongo{uri: uri}
}

func (m *Mongo) Get(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := m.client.Ping(pingCtx, nil)
		cancel()
		if err == nil {
			return m.client.Database(databaseName), nil
		}
		// Stale connection: drop it and reconnect below.
		_ = m.client.Disconnect(context.Background())
		m.client = nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(m.uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	m.client = client
	log.Println("Connected to MongoDB")
	return m.client.Database(databaseName), nil
}

// Collection names used across the gateway.
const (
	ProductCollection  = "products"
	OrderCollection    = "customerorders"
	PurchaseCollection = "purchases"
	ExpenseCollection  = "expenses"
)
