package service

import (
	"context"
	"time"

	"github.com/makoye224/cwru-courses-backend/internal/config"
	"github.com/makoye224/cwru-courses-backend/internal/database"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
)

// Backend is an opened service plus the hooks the binaries need around it.
type Backend struct {
	Service *Service
	// Ping reports whether the underlying store is reachable.
	Ping func(ctx context.Context) error
	// Close releases the store connection.
	Close func(ctx context.Context) error
}

// Open builds the catalog service for the configured store.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	if cfg.Catalog.Store == config.StoreMemory {
		logger.Warn("catalog: using in-memory store, data is lost on restart")
		return &Backend{
			Service: NewMemoryService(),
			Ping:    func(context.Context) error { return nil },
			Close:   func(context.Context) error { return nil },
		}, nil
	}

	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second)
	if err != nil {
		return nil, err
	}
	col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
	logger.Infof("catalog: using MongoDB collection %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	return &Backend{
		Service: NewMongoService(col),
		Ping:    func(ctx context.Context) error { return client.Ping(ctx, nil) },
		Close:   client.Disconnect,
	}, nil
}
