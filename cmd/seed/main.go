package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/makoye224/cwru-courses-backend/internal/catalog/service"
	"github.com/makoye224/cwru-courses-backend/internal/config"
	"github.com/makoye224/cwru-courses-backend/internal/seed"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
)

func main() {
	var (
		file    = flag.String("file", "fixtures/courses.yaml", "YAML fixture to load")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetOutput(os.Stderr, cfg.Log.Pretty)

	fx, err := seed.LoadFile(*file)
	if err != nil {
		logger.Fatalf("failed to read fixture: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	backend, err := service.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open catalog store: %v", err)
	}
	defer func() { _ = backend.Close(context.Background()) }()

	created, err := seed.Apply(ctx, backend.Service, fx)
	for _, c := range created {
		fmt.Printf("%s\t%s\t%d reviews\n", c.CourseID, c.Title, len(c.ReviewIDs))
	}
	if err != nil {
		logger.Errorf("seeding stopped: %v", err)
		os.Exit(1)
	}
	logger.Infof("seeded %d courses from %s", len(created), *file)
}
