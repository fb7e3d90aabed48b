package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/makoye224/cwru-courses-backend/internal/catalog/service"
	"github.com/makoye224/cwru-courses-backend/internal/config"
	"github.com/makoye224/cwru-courses-backend/internal/export"
	"github.com/makoye224/cwru-courses-backend/internal/storage"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
)

func main() {
	var (
		timeout = flag.Duration("timeout", 5*time.Minute, "overall deadline")
		presign = flag.Duration("presign", 0, "also print a presigned GET URL valid this long")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetOutput(os.Stderr, cfg.Log.Pretty)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		logger.Fatalf("failed to open object storage: %v", err)
	}

	backend, err := service.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open catalog store: %v", err)
	}
	defer func() { _ = backend.Close(context.Background()) }()

	key, err := export.Run(ctx, backend.Service, store, time.Now())
	if err != nil {
		logger.Errorf("export failed: %v", err)
		os.Exit(1)
	}
	fmt.Printf("s3://%s/%s\n", store.Bucket(), key)

	if *presign > 0 {
		u, err := store.GetPresignedURL(ctx, key, *presign)
		if err != nil {
			logger.Errorf("presign failed: %v", err)
			os.Exit(1)
		}
		fmt.Println(u)
	}
}
