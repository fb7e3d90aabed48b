package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/makoye224/cwru-courses-backend/internal/catalog"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Fixture is a YAML document of courses to create, each with its reviews.
//
//	courses:
//	  - title: Intro to Programming
//	    createdBy: admin
//	    aliases: [CSDS 132]
//	    reviews:
//	      - createdBy: student1
//	        overall: 8
//	        difficulty: 5
//	        usefulness: 9
//	        major: Computer Science
type Fixture struct {
	Courses []CourseFixture `yaml:"courses"`
}

type CourseFixture struct {
	catalog.CourseInput `yaml:",inline"`
	Reviews             []catalog.ReviewInput `yaml:"reviews"`
}

// Creator is the part of the catalog service seeding writes through.
type Creator interface {
	CreateCourse(ctx context.Context, in catalog.CourseInput) (string, error)
	CreateReview(ctx context.Context, courseID string, in catalog.ReviewInput) (string, error)
}

// Created records the ids assigned to one seeded course.
type Created struct {
	Title     string
	CourseID  string
	ReviewIDs []string
}

// Load decodes a fixture. Unknown keys are rejected so typos surface early.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("seed: decode fixture: %w", err)
	}
	return &f, nil
}

// LoadFile is Load for a path on disk.
func LoadFile(path string) (*Fixture, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}

// Apply creates every course and review in order and stops at the first
// failure. Courses created before the failure are returned alongside the error.
func Apply(ctx context.Context, svc Creator, f *Fixture) ([]Created, error) {
	out := make([]Created, 0, len(f.Courses))
	for i, cf := range f.Courses {
		id, err := svc.CreateCourse(ctx, cf.CourseInput)
		if err != nil {
			return out, fmt.Errorf("seed: course %d (%q): %w", i, cf.Title, err)
		}
		created := Created{Title: cf.Title, CourseID: id}
		for j, rv := range cf.Reviews {
			rid, err := svc.CreateReview(ctx, id, rv)
			if err != nil {
				out = append(out, created)
				return out, fmt.Errorf("seed: course %d (%q) review %d: %w", i, cf.Title, j, err)
			}
			created.ReviewIDs = append(created.ReviewIDs, rid)
		}
		logger.Debugf("seed: created course %s with %d reviews", id, len(created.ReviewIDs))
		out = append(out, created)
	}
	return out, nil
}
