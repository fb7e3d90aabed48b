package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/makoye224/cwru-courses-backend/internal/catalog"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
)

// KeyPrefix is where snapshots are written inside the bucket.
const KeyPrefix = "catalog/"

// Lister is the part of the catalog service an export needs.
type Lister interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
}

// Uploader stores an object. storage.MinIOStorage satisfies it.
type Uploader interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

// Snapshot is the exported document.
type Snapshot struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Count      int              `json:"count"`
	Courses    []catalog.Course `json:"courses"`
}

// Key names the object for a snapshot taken at t.
func Key(t time.Time) string {
	return KeyPrefix + t.UTC().Format("20060102T150405Z") + ".json"
}

// Build lists every course and encodes the snapshot.
func Build(ctx context.Context, src Lister, at time.Time) ([]byte, error) {
	courses, err := src.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: list courses: %w", err)
	}
	if courses == nil {
		courses = []catalog.Course{}
	}
	return json.MarshalIndent(Snapshot{ExportedAt: at.UTC(), Count: len(courses), Courses: courses}, "", "  ")
}

// Run builds a snapshot and uploads it, returning the object key.
func Run(ctx context.Context, src Lister, dst Uploader, at time.Time) (string, error) {
	body, err := Build(ctx, src, at)
	if err != nil {
		return "", err
	}
	key := Key(at)
	if err := dst.UploadFile(ctx, key, bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		return "", fmt.Errorf("export: upload: %w", err)
	}
	logger.Infof("export: wrote %s (%d bytes)", key, len(body))
	return key, nil
}
